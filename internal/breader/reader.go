// Package breader implements the cursor over an immutable byte slice
// that every ID3 version dispatcher and frame-body decoder in this
// module reads through.
package breader

import (
	"fmt"

	"github.com/illright/id3/internal/synctext"
	"github.com/illright/id3/internal/textdec"
)

// UnderflowError is returned by any operation that would move the
// cursor past the end of the buffer.
type UnderflowError struct {
	Offset    int
	Requested int
	Available int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("id3: underflow at offset %d: requested %d bytes, %d available",
		e.Offset, e.Requested, e.Available)
}

// MalformedError is returned when a read's framing is structurally
// invalid even though enough bytes remain (e.g. no NUL terminator).
type MalformedError struct {
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("id3: malformed at offset %d: %s", e.Offset, e.Reason)
}

// Reader is a cursor over a borrowed, immutable byte slice.
//
// A Reader is not reentrant and carries no process-wide state: each
// parse call constructs its own.
type Reader struct {
	buf []byte
	pos int
}

// New returns a Reader positioned at the start of buf.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total length of the backing buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// HasMore reports whether any bytes remain unread.
func (r *Reader) HasMore() bool { return r.pos < len(r.buf) }

// AtOrBeyond reports whether the cursor has reached or passed absOffset.
func (r *Reader) AtOrBeyond(absOffset int) bool { return r.pos >= absOffset }

// Update replaces the backing buffer while preserving the cursor
// position. It exists because whole-tag unsynchronisation is applied
// to the remainder of the buffer only after the header has already
// been read through this same Reader.
func (r *Reader) Update(buf []byte) {
	r.buf = buf
}

// Peek returns the next byte without advancing the cursor.
func (r *Reader) Peek() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, &UnderflowError{Offset: r.pos, Requested: 1, Available: 0}
	}
	return r.buf[r.pos], nil
}

// Advance moves the cursor forward by k bytes.
func (r *Reader) Advance(k int) error {
	if len(r.buf)-r.pos < k {
		return &UnderflowError{Offset: r.pos, Requested: k, Available: len(r.buf) - r.pos}
	}
	r.pos += k
	return nil
}

// Byte reads and returns one byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.Peek()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// Bytes returns a view of the next n bytes and advances the cursor.
//
// The returned slice aliases the backing buffer (zero-copy); callers
// that need to retain it past the buffer's lifetime must copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &MalformedError{Offset: r.pos, Reason: "negative length"}
	}
	if len(r.buf)-r.pos < n {
		return nil, &UnderflowError{Offset: r.pos, Requested: n, Available: len(r.buf) - r.pos}
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// BytesToEnd returns a view of every remaining byte and advances the
// cursor to the end.
func (r *Reader) BytesToEnd() []byte {
	out := r.buf[r.pos:]
	r.pos = len(r.buf)
	return out
}

// Int reads a big-endian integer over n bytes. If synchSafe is set,
// each byte contributes only its low 7 bits (spec: the reader does not
// enforce that the top bit is actually zero).
func (r *Reader) Int(n int, synchSafe bool) (uint64, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return 0, err
	}
	if synchSafe {
		return synctext.DecodeSynchSafe(b), nil
	}
	return synctext.DecodeBigEndian(b), nil
}

// IntToEnd reads a big-endian integer over every remaining byte.
func (r *Reader) IntToEnd() uint64 {
	return synctext.DecodeBigEndian(r.BytesToEnd())
}

// String reads n raw bytes and decodes them as ASCII if enc is nil,
// else through the text decoder under the given selector.
func (r *Reader) String(n int, enc *textdec.Selector) (string, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(b), nil
	}
	return textdec.Decode(b, *enc)
}

// StringUntilNull reads bytes up to (and consuming) the terminator and
// decodes them under enc. The terminator is a single 0x00 for
// ISO-8859-1/UTF-8 and a 16-bit-aligned 0x00 0x00 pair for the UTF-16
// variants (the scan advances two bytes at a time so an odd lone 0x00
// byte inside UTF-16 text is not mistaken for a terminator).
//
// Fails with MalformedError if no terminator exists before the end of
// the buffer.
func (r *Reader) StringUntilNull(enc textdec.Selector) (string, error) {
	start := r.pos
	width := textdec.NullWidth(enc)

	if width == 1 {
		for i := r.pos; i < len(r.buf); i++ {
			if r.buf[i] == 0x00 {
				s, err := textdec.Decode(r.buf[start:i], enc)
				if err != nil {
					return "", err
				}
				r.pos = i + 1
				return s, nil
			}
		}
		return "", &MalformedError{Offset: start, Reason: "no NUL terminator found"}
	}

	i := r.pos
	for i+1 < len(r.buf) {
		if r.buf[i] == 0x00 && r.buf[i+1] == 0x00 {
			s, err := textdec.Decode(r.buf[start:i], enc)
			if err != nil {
				return "", err
			}
			r.pos = i + 2
			return s, nil
		}
		i += 2
	}
	return "", &MalformedError{Offset: start, Reason: "no 16-bit-aligned NUL terminator found"}
}

// StringUntilEnd decodes every remaining byte under enc.
func (r *Reader) StringUntilEnd(enc textdec.Selector) (string, error) {
	return textdec.Decode(r.BytesToEnd(), enc)
}

// StringsUntilEnd splits the remainder on the NUL terminator for enc
// and decodes each piece, returning a non-empty list. Used by v2.4
// multi-value text frames.
func (r *Reader) StringsUntilEnd(enc textdec.Selector) ([]string, error) {
	raw := r.BytesToEnd()
	width := textdec.NullWidth(enc)

	var parts [][]byte
	start := 0

	if width == 1 {
		for i := 0; i < len(raw); i++ {
			if raw[i] == 0x00 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	} else {
		i := 0
		for i+1 < len(raw) {
			if raw[i] == 0x00 && raw[i+1] == 0x00 {
				parts = append(parts, raw[start:i])
				start = i + 2
				i += 2
				continue
			}
			i += 2
		}
	}
	parts = append(parts, raw[start:])

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s, err := textdec.Decode(p, enc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out, nil
}
