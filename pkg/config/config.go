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

// Package config holds the scan configuration and its optional file loading.
// Config files are parsed through a small registry so YAML and HCL are
// handled uniformly; CLI flags override whatever the file provides.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Default selection used when neither flags nor a config file narrow it.
var (
	DefaultExtensions = []string{
		".uplugin", ".uproject",
		".Build.cs", ".Target.cs", ".cs",
		".ini", ".txt", ".json", ".props", ".xml", ".bat", ".cmd",
		".cpp", ".h", ".hpp",
	}
	DefaultInclude = []string{"**/*"}
	DefaultExclude = []string{"**/Binaries/**", "**/Intermediate/**", "**/.git/**"}
)

// 📚 Config represents the complete scan configuration.
type Config struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
	Include    []string `json:"include" yaml:"include"`
	Exclude    []string `json:"exclude" yaml:"exclude"`
	Aggressive bool     `json:"aggressive,omitempty" yaml:"aggressive,omitempty"`
	DryRun     bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Parallel   int      `json:"parallel,omitempty" yaml:"parallel,omitempty"`
}

// 🏭 Default returns a Config carrying the default selection.
func Default() *Config {
	return &Config{
		Extensions: DefaultExtensions,
		Include:    DefaultInclude,
		Exclude:    DefaultExclude,
	}
}

// 🔌 Parser is the interface for config parsers.
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser.
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file.
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load loads the configuration from a file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ✅ Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if strings.TrimSpace(pattern) == "" {
			return errors.Errorf("glob pattern must not be empty")
		}
	}
	if c.Parallel < 0 {
		return errors.Errorf("parallel must not be negative: %d", c.Parallel)
	}
	return nil
}
