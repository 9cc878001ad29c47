package transform

import "strings"

// isPathyByte reports whether c belongs to the path-segment character class.
func isPathyByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '-', c == ' ', c == '.':
		return true
	}
	return false
}

// isEscapeLetter reports whether c completes a recognized escape sequence.
func isEscapeLetter(c byte) bool {
	switch c {
	case '"', '\'', 'n', 'r', 't', 'b', 'f':
		return true
	}
	return false
}

// Slashify rewrites the backslashes of a path-like string to forward slashes
// in a single left-to-right pass:
//
//   - `\\` collapses to a single `/`
//   - recognized escape pairs (`\n`, `\"`, ...) pass through untouched
//   - `\` before a path-segment character becomes `/`
//   - any other backslash (including a trailing one) is kept as-is
//
// Everything else is copied verbatim. Operating on bytes is safe here: the
// input is decoded text, so a 0x5C byte can only be a real backslash, and
// multi-byte runes are copied through unmodified.
func Slashify(content string) string {
	var out strings.Builder
	out.Grow(len(content))
	i := 0
	for i < len(content) {
		c := content[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		switch {
		case i+1 < len(content) && content[i+1] == '\\':
			out.WriteByte('/')
			i += 2
		case i+1 < len(content) && isEscapeLetter(content[i+1]):
			out.WriteByte('\\')
			out.WriteByte(content[i+1])
			i += 2
		case i+1 < len(content) && isPathyByte(content[i+1]):
			out.WriteByte('/')
			i++
		default:
			out.WriteByte('\\')
			i++
		}
	}
	return out.String()
}
