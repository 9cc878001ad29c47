// Package walker collects the files under a scan root that the processor
// should visit, filtering by extension suffix and include/exclude globs.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options controls which files Walk selects.
type Options struct {
	// Extensions is a suffix allow-list (e.g. ".ini", ".Build.cs"). Empty
	// means every regular file is eligible.
	Extensions []string
	// Include is a list of glob patterns matched against the slash-separated
	// path relative to the root. A file must match at least one.
	Include []string
	// Exclude is a list of glob patterns; a match here wins over Include.
	Exclude []string
}

// 🚶 Walk returns the files under root selected by opts, in traversal order.
// A missing or non-directory root is an error; unreadable entries below the
// root are logged and skipped.
func Walk(ctx context.Context, root string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("root not found: %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root is not a directory: %s", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn().Str("path", path).Err(walkErr).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !hasAllowedExtension(path, opts.Extensions) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if len(opts.Include) > 0 && !matchAny(logger, rel, opts.Include) {
			return nil
		}
		if matchAny(logger, rel, opts.Exclude) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Int("files", len(files)).Str("root", root).Msg("collected candidate files")
	return files, nil
}

func hasAllowedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, ext := range extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

func matchAny(logger *zerolog.Logger, path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
