package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlashify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "no_backslash_untouched",
			input: "C:/Users/me/file.txt",
			want:  "C:/Users/me/file.txt",
		},
		{
			name:  "single_backslashes",
			input: `C:\Users\me\data.txt`,
			want:  "C:/Users/me/data.txt",
		},
		{
			// `\f` is a recognized escape, and the escape rule is checked
			// before the segment rule, so the last separator survives
			name:  "escape_letter_at_segment_start_kept",
			input: `C:\Users\me\file.txt`,
			want:  `C:/Users/me\file.txt`,
		},
		{
			name:  "doubled_backslashes_collapse",
			input: `C:\\Users\\me\\file.txt`,
			want:  "C:/Users/me/file.txt",
		},
		{
			name:  "newline_escape_preserved",
			input: `Line1\nLine2`,
			want:  `Line1\nLine2`,
		},
		{
			name:  "tab_escape_wins_over_segment_char",
			input: `tab\there`,
			want:  `tab\there`,
		},
		{
			name:  "quote_escapes_preserved",
			input: `say \"hi\" and \'bye\'`,
			want:  `say \"hi\" and \'bye\'`,
		},
		{
			name:  "mixed_doubles_escapes_and_singles",
			input: `a\\b\nc\d`,
			want:  `a/b\nc/d`,
		},
		{
			name:  "trailing_backslash_preserved",
			input: `dir\`,
			want:  `dir\`,
		},
		{
			name:  "backslash_before_odd_char_preserved",
			input: `weird\@token`,
			want:  `weird\@token`,
		},
		{
			name:  "segment_with_space_and_hyphen",
			input: `My Docs\some-file.v2`,
			want:  "My Docs/some-file.v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slashify(tt.input))
		})
	}
}

func TestSlashify_IdempotentWithoutBackslashes(t *testing.T) {
	inputs := []string{"", "plain", "a/b/c", "C:/Users/me", "héllo wörld"}
	for _, s := range inputs {
		assert.Equal(t, s, Slashify(s), "input %q", s)
	}
}

func TestSlashify_PreservesRecognizedEscapes(t *testing.T) {
	escapes := []string{`\n`, `\t`, `\r`, `\"`, `\'`, `\b`, `\f`}
	for _, esc := range escapes {
		input := "start" + esc + "end"
		got := Slashify(input)
		assert.True(t, strings.Contains(got, esc), "escape %q lost in %q", esc, got)
		assert.Equal(t, input, got)
	}
}
