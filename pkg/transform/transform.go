// Package transform converts Windows-style backslash path separators to POSIX
// forward slashes inside text, without corrupting escape sequences or other
// legitimate backslash usage. The pipeline is: a scanner locates candidate
// spans (quoted-string contents, plus unquoted tokens in aggressive mode),
// LooksLikePath accepts or rejects each span, and Slashify rewrites accepted
// spans. All functions are pure and safe for concurrent use.
package transform

import (
	"regexp"
	"strings"
)

var (
	// quotedRe matches a single- or double-quoted string literal whose
	// content is any mix of escape pairs and characters that are neither a
	// backslash nor a quote, terminated by the same quote that opened it.
	quotedRe = regexp.MustCompile(`"(?:\\.|[^\\'"])*"|'(?:\\.|[^\\'"])*'`)

	// unquotedRe matches bare path-like tokens: a drive prefix followed by a
	// run of non-space, non-quote characters, or two or more word/dot/hyphen
	// segments joined by backslashes.
	unquotedRe = regexp.MustCompile(`[A-Za-z]:\\[^\s'"]+|(?:[A-Za-z0-9_.-]+\\)+[A-Za-z0-9_.-]+`)
)

func isQuoteByte(c byte) bool {
	return c == '"' || c == '\''
}

// Quoted rewrites path-like contents of quoted string literals in text,
// returning the new text and the number of literals whose content actually
// changed. Spans that are inspected but come back identical do not count.
// Text outside quoted literals is copied through verbatim.
func Quoted(text string) (string, int) {
	replacements := 0
	var out strings.Builder
	out.Grow(len(text))
	last := 0
	for _, span := range quotedRe.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		quote := text[start]
		content := text[start+1 : end-1]
		out.WriteString(text[last:start])
		inner := content
		if LooksLikePath(content) {
			inner = Slashify(content)
			if inner != content {
				replacements++
			}
		}
		out.WriteByte(quote)
		out.WriteString(inner)
		out.WriteByte(quote)
		last = end
	}
	out.WriteString(text[last:])
	return out.String(), replacements
}

// Aggressive first applies Quoted, then additionally rewrites unquoted
// path-like tokens in the intermediate text. A token immediately preceded or
// followed by a quote character is skipped whole, so content already handled
// by the quoted pass is not touched twice.
//
// Counting is deliberately asymmetric between the two passes: the quoted pass
// counts only literals whose text changed, while the unquoted pass counts
// every classifier-accepted token even when conversion leaves it identical
// (for example a drive prefix followed only by punctuation).
func Aggressive(text string) (string, int) {
	intermediate, replacements := Quoted(text)

	var out strings.Builder
	out.Grow(len(intermediate))
	last := 0
	for _, span := range unquotedRe.FindAllStringIndex(intermediate, -1) {
		start, end := span[0], span[1]
		if start > 0 && isQuoteByte(intermediate[start-1]) {
			continue
		}
		if end < len(intermediate) && isQuoteByte(intermediate[end]) {
			continue
		}
		token := intermediate[start:end]
		if !LooksLikePath(token) {
			continue
		}
		out.WriteString(intermediate[last:start])
		out.WriteString(Slashify(token))
		last = end
		replacements++
	}
	out.WriteString(intermediate[last:])
	return out.String(), replacements
}
