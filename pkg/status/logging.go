// Package status renders per-file results and end-of-run summaries for the
// console.
package status

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about a scan run.
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger from the context's logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogSummary closes the run with a user-facing note, after the formatter's
// summary line has been printed.
func (u *UserLogger) LogSummary(filesChanged, replacements, filesSkipped int) {
	u.log.Debug().
		Int("files_changed", filesChanged).
		Int("replacements", replacements).
		Int("files_skipped", filesSkipped).
		Msg("run complete")

	switch {
	case filesSkipped > 0:
		pterm.Warning.Printfln("%d file(s) skipped, see errors above", filesSkipped)
	case filesChanged > 0:
		pterm.Success.Printfln("All files processed, %d file(s) updated", filesChanged)
	default:
		pterm.Info.Println("No Windows-style paths found, nothing to do")
	}
}

// ❌ LogFileError reports a per-file failure that did not stop the run.
func (u *UserLogger) LogFileError(path string, err error) {
	u.log.Error().Str("path", path).Err(err).Msg("file skipped")
	pterm.Error.Printfln("%s: %v", path, err)
}
