// Copyright 2025 pathfix LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclConfig struct {
		Extensions []string `hcl:"extensions,optional"`
		Include    []string `hcl:"include,optional"`
		Exclude    []string `hcl:"exclude,optional"`
		Aggressive bool     `hcl:"aggressive,optional"`
		DryRun     bool     `hcl:"dry_run,optional"`
		Parallel   int      `hcl:"parallel,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := Default()
	if hclCfg.Extensions != nil {
		cfg.Extensions = hclCfg.Extensions
	}
	if hclCfg.Include != nil {
		cfg.Include = hclCfg.Include
	}
	if hclCfg.Exclude != nil {
		cfg.Exclude = hclCfg.Exclude
	}
	cfg.Aggressive = hclCfg.Aggressive
	cfg.DryRun = hclCfg.DryRun
	cfg.Parallel = hclCfg.Parallel

	return cfg, nil
}
