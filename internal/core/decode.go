package core

// decode.go turns uploaded bytes into the UTF-8 text the parser expects.
//
// A browser decodes a picked file as UTF-8 before script sees it. A server receives
// raw bytes instead, so the conversion happens here:
//
//   - A UTF-8 or UTF-16 byte order mark selects that encoding and is removed.
//   - Valid UTF-8 without a BOM is used as-is.
//   - Anything else is decoded as Windows-1252, the usual encoding of
//     semicolon-separated Excel exports.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrFileTooLarge is returned by ReadText when input exceeds the limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNoFile is returned by transports when no file was submitted.
	ErrNoFile = errors.New("no file provided")
)

var byteOrderMarks = [][]byte{
	{0xEF, 0xBB, 0xBF}, // UTF-8
	{0xFF, 0xFE},       // UTF-16 LE
	{0xFE, 0xFF},       // UTF-16 BE
}

// Decode converts data to a valid UTF-8 string.
func Decode(data []byte) string {
	if hasBOM(data) {
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err == nil {
			return strings.ToValidUTF8(string(out), "\uFFFD")
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// ReadText reads all of r and decodes it. Inputs longer than limit bytes
// fail with ErrFileTooLarge; a limit <= 0 disables the check.
func ReadText(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, limit)
	}
	return Decode(data), nil
}

func hasBOM(data []byte) bool {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}
	return false
}
