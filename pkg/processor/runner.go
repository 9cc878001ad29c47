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

package processor

import (
	"context"
	"fmt"
	"sync"

	"github.com/pathfix/win2nix/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ⚡ runParallel processes files concurrently, bounded by the Parallel
// option. The transform itself is pure and each file is touched by exactly
// one goroutine, so only the totals and console need locking.
func (p *Processor) runParallel(ctx context.Context, paths []string) (Totals, error) {
	var (
		mu     sync.Mutex
		totals Totals
	)
	reporter := status.NewUserLogger(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallel)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Errorf("run cancelled: %w", err)
			}
			result, err := p.ProcessFile(gctx, path)

			mu.Lock()
			defer mu.Unlock()
			totals.FilesProcessed++
			if err != nil {
				reporter.LogFileError(path, err)
				fmt.Fprintln(p.console, p.formatter.FormatSkip(path, err))
				totals.FilesSkipped++
				return nil
			}
			if result.Replacements > 0 {
				fmt.Fprintln(p.console, p.formatter.FormatFile(path, result.Replacements, p.dryRun))
				totals.FilesChanged++
				totals.Replacements += result.Replacements
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return totals, err
	}
	return totals, nil
}
