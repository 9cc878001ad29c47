package transform

import (
	"regexp"
	"strings"
)

// pathySeg is a character class for a single path-segment character.
// Segments built from it are the unit of all path-likeness heuristics.
const pathySeg = `[A-Za-z0-9_\- .]`

var (
	// driveRe matches a Windows drive prefix like `C:\` or `c:/`.
	driveRe = regexp.MustCompile(`(?i)^[a-z]:[\\/]`)

	// backslashSegRe matches two path segments joined by a single backslash.
	backslashSegRe = regexp.MustCompile(pathySeg + `+\\` + pathySeg + `+`)

	// typicalFileRe matches a trailing segment\segment.ext filename shape.
	typicalFileRe = regexp.MustCompile(pathySeg + `+\\` + pathySeg + `+\.[A-Za-z0-9]{1,6}$`)
)

// LooksLikePath reports whether s plausibly represents a Windows path worth
// converting. It is a heuristic, not a parser: strings containing characters
// outside the segment class (such as `@` or `+`) may be rejected even when
// they are real paths, and some non-paths are accepted. Callers should treat
// both as accepted imprecision.
func LooksLikePath(s string) bool {
	if !strings.Contains(s, `\`) || len(s) < 3 {
		return false
	}
	if driveRe.MatchString(s) {
		return true
	}
	if backslashSegRe.MatchString(s) {
		return true
	}
	if typicalFileRe.MatchString(s) {
		return true
	}
	return false
}
