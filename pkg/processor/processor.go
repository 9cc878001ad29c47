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

// Package processor runs the read → decode → transform → write pipeline over
// a set of files. Each file is independent: failures are reported and
// skipped, never aborting the run.
package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pathfix/win2nix/pkg/encoding"
	"github.com/pathfix/win2nix/pkg/status"
	"github.com/pathfix/win2nix/pkg/transform"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the processor.
type Options struct {
	// Aggressive selects the quoted+unquoted transform instead of quoted-only.
	Aggressive bool
	// DryRun reports what would change without writing anything.
	DryRun bool
	// Parallel is the maximum number of files processed concurrently.
	// Values below 1 mean sequential processing.
	Parallel int
	// Formatter renders per-file console lines.
	Formatter status.FileFormatter
	// Console receives per-file and summary output. Defaults to os.Stdout.
	Console io.Writer
}

// 📄 FileResult describes the outcome for a single file.
type FileResult struct {
	Path         string
	Replacements int
	Changed      bool
	Skipped      bool
}

// 🧮 Totals accumulates results across one run.
type Totals struct {
	FilesProcessed int
	FilesChanged   int
	Replacements   int
	FilesSkipped   int
}

// 🎮 Processor applies the path transform to files on disk.
type Processor struct {
	aggressive bool
	dryRun     bool
	parallel   int
	formatter  status.FileFormatter
	console    io.Writer
}

// 🏭 New creates a processor, validating required collaborators.
func New(opts Options) (*Processor, error) {
	if opts.Formatter == nil {
		return nil, errors.Errorf("formatter is required")
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	return &Processor{
		aggressive: opts.Aggressive,
		dryRun:     opts.DryRun,
		parallel:   opts.Parallel,
		formatter:  opts.Formatter,
		console:    opts.Console,
	}, nil
}

func (p *Processor) transformText(text string) (string, int) {
	if p.aggressive {
		return transform.Aggressive(text)
	}
	return transform.Quoted(text)
}

// 📝 ProcessFile reads, transforms, and (outside dry-run) rewrites one file.
// Files with zero replacements are never written. The original file mode is
// preserved on write-back.
func (p *Processor) ProcessFile(ctx context.Context, path string) (FileResult, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return FileResult{Path: path, Skipped: true}, errors.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Skipped: true}, errors.Errorf("reading %s: %w", path, err)
	}

	text, err := encoding.Decode(data)
	if err != nil {
		return FileResult{Path: path, Skipped: true}, errors.Errorf("decoding %s: %w", path, err)
	}

	newText, count := p.transformText(text)
	result := FileResult{Path: path, Replacements: count, Changed: count > 0}
	if count == 0 {
		logger.Debug().Str("path", path).Msg("no replacements, leaving file untouched")
		return result, nil
	}
	if p.dryRun {
		return result, nil
	}

	if err := os.WriteFile(path, encoding.Encode(newText), info.Mode().Perm()); err != nil {
		return FileResult{Path: path, Skipped: true}, errors.Errorf("writing %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("replacements", count).Msg("file rewritten")
	return result, nil
}

// 🏃 Run processes every path, sequentially or in parallel per Options, and
// returns the accumulated totals. Per-file failures are rendered through the
// formatter and counted as skips; only context cancellation is returned as an
// error.
func (p *Processor) Run(ctx context.Context, paths []string) (Totals, error) {
	if p.parallel > 1 {
		return p.runParallel(ctx, paths)
	}
	return p.runSequential(ctx, paths)
}

func (p *Processor) runSequential(ctx context.Context, paths []string) (Totals, error) {
	var totals Totals
	reporter := status.NewUserLogger(ctx)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return totals, errors.Errorf("run cancelled: %w", err)
		}
		p.accumulate(ctx, reporter, &totals, path)
	}
	return totals, nil
}

func (p *Processor) accumulate(ctx context.Context, reporter *status.UserLogger, totals *Totals, path string) {
	totals.FilesProcessed++
	result, err := p.ProcessFile(ctx, path)
	if err != nil {
		reporter.LogFileError(path, err)
		fmt.Fprintln(p.console, p.formatter.FormatSkip(path, err))
		totals.FilesSkipped++
		return
	}
	if result.Replacements > 0 {
		fmt.Fprintln(p.console, p.formatter.FormatFile(path, result.Replacements, p.dryRun))
		totals.FilesChanged++
		totals.Replacements += result.Replacements
	}
}
