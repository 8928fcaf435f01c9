package id3

import (
	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/synctext"
)

const (
	v22HeaderSize    = 10
	v22FrameHdrSize  = 6
	tagFlagV22Unsync = 0x80
)

// ParseV22 parses a complete ID3v2.2 tag starting at offset 0 of b
// (spec.md §4.4.2).
func ParseV22(b []byte, opts Options) (*Tag, error) {
	r := breader.New(b)

	magic, err := r.Bytes(3)
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if string(magic) != "ID3" {
		return nil, newParseError(MissingIdentifier, 0, "", `expected "ID3"`, nil)
	}

	verBytes, err := r.Bytes(2)
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if verBytes[0] != 0x02 || verBytes[1] != 0x00 {
		return nil, newParseError(UnsupportedVersion, 3, "", "expected version 0x02 0x00", nil)
	}

	flags, err := r.Byte()
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if flags&^tagFlagV22Unsync != 0 {
		return nil, newParseError(MalformedHeader, 5, "", "reserved tag flag bits set", nil)
	}

	tagSize, err := r.Int(4, true)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	end := v22HeaderSize + int(tagSize)
	if end > len(b) {
		return nil, newParseError(Underflow, v22HeaderSize, "", "declared tag_size exceeds buffer", nil)
	}
	body := b[v22HeaderSize:end]

	if flags&tagFlagV22Unsync != 0 {
		body = synctext.Resync(body)
	}

	tag := &Tag{Version: V2_2, Flags: flags}
	sink := opts.sink()
	fr := breader.New(body)

	for fr.HasMore() && fr.Len()-fr.Pos() >= v22FrameHdrSize {
		label, err := fr.Bytes(3)
		if err != nil {
			return nil, mapReaderError(err, "")
		}
		if label[0] == 0 && label[1] == 0 && label[2] == 0 {
			break // padding
		}

		size, err := fr.Int(3, false)
		if err != nil {
			return nil, mapReaderError(err, string(label))
		}

		payload, err := fr.Bytes(int(size))
		if err != nil {
			return nil, mapReaderError(err, string(label))
		}

		labelStr := string(label)
		dec, ok := lookupDecoder(V2_2, labelStr)
		if !ok {
			sink.Diagnose(Diagnostic{Kind: DiagUnknownFrame, Label: labelStr, Offset: fr.Pos() - int(size)})
			continue
		}

		fb, err := decodeFrameBody(dec, payload, labelStr)
		if err != nil {
			if opts.Lenient {
				sink.Diagnose(Diagnostic{Kind: DiagSkippedFrame, Label: labelStr, Offset: fr.Pos() - int(size), Err: err})
				continue
			}
			return nil, err
		}

		tag.addFrame(Frame{Label: labelStr, Body: fb})
	}

	return tag, nil
}
