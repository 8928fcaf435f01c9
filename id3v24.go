package id3

import (
	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/synctext"
)

const (
	v24HeaderSize   = 10
	v24FrameHdrSize = 10

	tagFlagV24Unsync     = 0x80
	tagFlagV24ExtHdr     = 0x40
	tagFlagV24Experi     = 0x20
	tagFlagV24Footer     = 0x10
	knownTagFlagsV24     = tagFlagV24Unsync | tagFlagV24ExtHdr | tagFlagV24Experi | tagFlagV24Footer

	frameFlagV24TagAlterPreserve  = 0x4000
	frameFlagV24FileAlterPreserve = 0x2000
	frameFlagV24ReadOnly          = 0x1000
	frameFlagV24GroupID           = 0x0040
	frameFlagV24Compressed        = 0x0008
	frameFlagV24Encryption        = 0x0004
	frameFlagV24Unsync            = 0x0002
	frameFlagV24DataLenIndicator  = 0x0001
)

// ParseV24 parses a complete ID3v2.4 tag starting at offset 0 of b
// (spec.md §4.4.4).
func ParseV24(b []byte, opts Options) (*Tag, error) {
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
	if verBytes[0] != 0x04 || verBytes[1] != 0x00 {
		return nil, newParseError(UnsupportedVersion, 3, "", "expected version 0x04 0x00", nil)
	}

	flags, err := r.Byte()
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if flags&^byte(knownTagFlagsV24) != 0 {
		return nil, newParseError(MalformedHeader, 5, "", "reserved tag flag bits set", nil)
	}

	tagSize, err := r.Int(4, true)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	end := v24HeaderSize + int(tagSize)
	if end > len(b) {
		return nil, newParseError(Underflow, v24HeaderSize, "", "declared tag_size exceeds buffer", nil)
	}
	body := b[v24HeaderSize:end]

	globalUnsync := flags&tagFlagV24Unsync != 0
	if globalUnsync {
		body = synctext.Resync(body)
	}

	tag := &Tag{Version: V2_4, Flags: flags}
	sink := opts.sink()

	if flags&tagFlagV24Footer != 0 {
		sink.Diagnose(Diagnostic{Kind: DiagFooterPresent, Offset: v24HeaderSize + int(tagSize)})
	}

	fr := breader.New(body)

	if flags&tagFlagV24ExtHdr != 0 {
		extHdr, err := parseExtHeaderV24(fr)
		if err != nil {
			return nil, err
		}
		tag.ExtHeader = extHdr
	}

	for fr.HasMore() && fr.Len()-fr.Pos() >= v24FrameHdrSize {
		label, err := fr.Bytes(4)
		if err != nil {
			return nil, mapReaderError(err, "")
		}
		if label[0] == 0 && label[1] == 0 && label[2] == 0 && label[3] == 0 {
			break // padding
		}

		size, err := fr.Int(4, true)
		if err != nil {
			return nil, mapReaderError(err, string(label))
		}
		frameFlags, err := fr.Int(2, false)
		if err != nil {
			return nil, mapReaderError(err, string(label))
		}

		payload, err := fr.Bytes(int(size))
		if err != nil {
			return nil, mapReaderError(err, string(label))
		}

		labelStr := string(label)

		if frameFlags&frameFlagV24Unsync != 0 && !globalUnsync {
			payload = synctext.Resync(payload)
		}

		flagSet, payload, err := consumeV24FrameFlagPayload(uint16(frameFlags), payload, labelStr)
		if err != nil {
			return nil, err
		}

		dec, ok := lookupDecoder(V2_4, labelStr)
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

		tag.addFrame(Frame{Label: labelStr, Flags: flagSet, Body: fb})
	}

	return tag, nil
}

// parseExtHeaderV24 reads the v2.4 extended header as an opaque view
// plus the declared flag byte (spec.md §4.4.4): the core models
// presence/size/flags only, it does not interpret flag-data blocks.
func parseExtHeaderV24(r *breader.Reader) (*ExtHeader, error) {
	extSize, err := r.Int(4, true)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	rest, err := r.Bytes(int(extSize) - 4)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	eh := &ExtHeader{Size: uint32(extSize)}
	if len(rest) >= 1 {
		eh.FlagsV24 = rest[0]
		eh.FlagBlocks = [][]byte{rest[1:]}
	}
	return eh, nil
}

// consumeV24FrameFlagPayload mirrors consumeV23FrameFlagPayload for the
// v2.4 flag bit layout (spec.md §4.4.4).
func consumeV24FrameFlagPayload(raw uint16, payload []byte, label string) (*FrameFlags, []byte, error) {
	ff := newFrameFlags(raw)

	if raw&frameFlagV24TagAlterPreserve != 0 {
		ff.set(FlagTagAlterPreserve)
	}
	if raw&frameFlagV24FileAlterPreserve != 0 {
		ff.set(FlagFileAlterPreserve)
	}
	if raw&frameFlagV24ReadOnly != 0 {
		ff.set(FlagReadOnly)
	}
	if raw&frameFlagV24Compressed != 0 {
		ff.set(FlagCompressed)
	}
	if raw&frameFlagV24Unsync != 0 {
		ff.set(FlagUnsync)
	}

	r := breader.New(payload)

	if raw&frameFlagV24GroupID != 0 {
		v, err := r.Byte()
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagGroupID, uint32(v))
	}
	if raw&frameFlagV24Encryption != 0 {
		v, err := r.Byte()
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagEncryptionMethod, uint32(v))
	}
	if raw&frameFlagV24DataLenIndicator != 0 {
		v, err := r.Int(4, true)
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagDataLengthIndicator, uint32(v))
	}

	return ff, r.BytesToEnd(), nil
}
