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

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	type yamlConfig struct {
		Extensions []string `yaml:"extensions,omitempty"`
		Include    []string `yaml:"include,omitempty"`
		Exclude    []string `yaml:"exclude,omitempty"`
		Aggressive bool     `yaml:"aggressive,omitempty"`
		DryRun     bool     `yaml:"dry_run,omitempty"`
		Parallel   int      `yaml:"parallel,omitempty"`
	}

	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	cfg := Default()
	if yamlCfg.Extensions != nil {
		cfg.Extensions = yamlCfg.Extensions
	}
	if yamlCfg.Include != nil {
		cfg.Include = yamlCfg.Include
	}
	if yamlCfg.Exclude != nil {
		cfg.Exclude = yamlCfg.Exclude
	}
	cfg.Aggressive = yamlCfg.Aggressive
	cfg.DryRun = yamlCfg.DryRun
	cfg.Parallel = yamlCfg.Parallel

	return cfg, nil
}
