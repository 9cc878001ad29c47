// Package encoding decodes file contents for transformation and encodes the
// results for write-back. Decoding tries strict UTF-8 first and falls back to
// Latin-1, so the transformer always operates on valid decoded text.
package encoding

import (
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when a file's bytes cannot be decoded as UTF-8
// or Latin-1.
var ErrUndecodable = errors.New("content is neither valid UTF-8 nor Latin-1")

// Decode interprets raw file bytes as text. Valid UTF-8 is used as-is;
// anything else is decoded as Latin-1 (ISO 8859-1).
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Errorf("decoding as Latin-1: %w", ErrUndecodable)
	}
	return string(decoded), nil
}

// Encode returns the UTF-8 byte representation of s for writing back to disk.
func Encode(s string) []byte {
	return []byte(s)
}
