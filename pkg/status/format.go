package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how per-file results and errors are rendered for the
// console.
type FileFormatter interface {
	// FormatFile formats the result line for a file with at least one
	// replacement.
	FormatFile(path string, replacements int, dryRun bool) string

	// FormatSkip formats the line for a file that was skipped with an error.
	FormatSkip(path string, err error) string

	// FormatSummary formats the end-of-run summary line.
	FormatSummary(filesChanged, replacements int) string
}

// DefaultFileFormatter provides the standard tagged output format.
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter.
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

var (
	fixTag  = color.New(color.FgGreen).Sprint("[FIX]")
	dryTag  = color.New(color.FgBlue).Sprint("[DRY]")
	skipTag = color.New(color.FgYellow).Sprint("[SKIP]")
)

// FormatFile renders the per-file result, with a [DRY] tag when no write
// happened.
func (f *DefaultFileFormatter) FormatFile(path string, replacements int, dryRun bool) string {
	tag := fixTag
	if dryRun {
		tag = dryTag
	}
	return fmt.Sprintf("%s %s: %d path string(s) updated", tag, path, replacements)
}

// FormatSkip renders the skip line for an unreadable or undecodable file.
func (f *DefaultFileFormatter) FormatSkip(path string, err error) string {
	return fmt.Sprintf("%s %s: %v", skipTag, path, err)
}

// FormatSummary renders the final totals line.
func (f *DefaultFileFormatter) FormatSummary(filesChanged, replacements int) string {
	return fmt.Sprintf("[SUMMARY] Files changed: %d, path strings updated: %d", filesChanged, replacements)
}
