// Package textdec maps an ID3 text-encoding selector byte to the
// golang.org/x/text codec it names and decodes raw frame bytes through it.
package textdec

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Selector is the first byte of most text-bearing ID3v2 frame bodies.
type Selector byte

const (
	ISO88591 Selector = 0
	UTF16    Selector = 1 // with leading BOM; LE assumed if absent
	UTF16BE  Selector = 2
	UTF8     Selector = 3
)

// ErrBadSelector is returned for any selector byte outside 0..3.
var ErrBadSelector = errors.New("id3: bad encoding selector byte")

// Valid reports whether sel is one of the four defined selectors.
func Valid(sel byte) bool {
	return sel <= byte(UTF8)
}

func encodingFor(sel Selector) (encoding.Encoding, error) {
	switch sel {
	case ISO88591:
		return charmap.ISO8859_1, nil
	case UTF16:
		// UseBOM: a leading BOM overrides the declared byte order; its
		// absence falls back to the declared order (LittleEndian) per
		// informal ID3v2 practice, rather than erroring like ExpectBOM.
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case UTF8:
		return encoding.Nop, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadSelector, byte(sel))
	}
}

// Decode decodes b under the text encoding named by sel.
//
// Empty input decodes to the empty string for every selector. UTF16
// defaults to little-endian when the buffer has no BOM, matching
// informal ID3v2 practice (most writers emit a BOM, but not all).
func Decode(b []byte, sel Selector) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	enc, err := encodingFor(sel)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("id3: invalid %v text data: %w", sel, err)
	}

	return string(out), nil
}

// NullWidth returns the width, in bytes, of the NUL terminator used by
// sel: 1 for ISO-8859-1/UTF-8, 2 for the UTF-16 variants (aligned pair).
func NullWidth(sel Selector) int {
	switch sel {
	case UTF16, UTF16BE:
		return 2
	default:
		return 1
	}
}

func (s Selector) String() string {
	switch s {
	case ISO88591:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("selector(0x%02x)", byte(s))
	}
}

var (
	isNulRune = func(r rune) bool { return r == 0 }
)

// StripControl removes embedded NUL and C0 control characters from a
// decoded string, normalizing through NFKD first.
//
// This exists for frame families known to carry stray control bytes
// inside an otherwise well-formed string body (comments and lyrics, in
// practice) — it is not applied to every decoded string.
func StripControl(s string) string {
	isOk := func(r rune) bool { return r < 0x20 }
	t := transform.Chain(norm.NFKD, transform.RemoveFunc(isOk))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// StripEmbeddedNUL removes embedded NUL runes via the same
// normalize-then-filter pipeline as StripControl, without touching
// other control characters.
func StripEmbeddedNUL(s string) string {
	t := transform.Chain(norm.NFKD, transform.RemoveFunc(isNulRune))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// TrimNulSuffix trims a single trailing NUL byte (ISO-8859-1/UTF-8) or
// 16-bit-aligned NUL pair (UTF-16/UTF-16BE) from raw bytes before
// decoding, mirroring writers that terminate the final string in a
// frame body even though the body's own length already bounds it.
func TrimNulSuffix(b []byte, sel Selector) []byte {
	switch sel {
	case UTF16, UTF16BE:
		return bytes.TrimSuffix(b, []byte{0x00, 0x00})
	default:
		return bytes.TrimSuffix(b, []byte{0x00})
	}
}

// TrimAllNulSuffix repeatedly applies TrimNulSuffix, removing every
// trailing NUL terminator a v2.2/v2.3 writer left on a non-NUL-required
// text body (some writers pad the declared frame size well past the
// string's own length).
func TrimAllNulSuffix(b []byte, sel Selector) []byte {
	for {
		trimmed := TrimNulSuffix(b, sel)
		if len(trimmed) == len(b) {
			return trimmed
		}
		b = trimmed
	}
}
