package id3

import (
	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/synctext"
)

const (
	v23HeaderSize   = 10
	v23FrameHdrSize = 10

	tagFlagV23Unsync  = 0x80
	tagFlagV23ExtHdr  = 0x40
	tagFlagV23Experi  = 0x20
	knownTagFlagsV23  = tagFlagV23Unsync | tagFlagV23ExtHdr | tagFlagV23Experi

	frameFlagV23DecompSize = 0x0080
	frameFlagV23Encryption = 0x0040
	frameFlagV23GroupID    = 0x0020

	extFlagV23FrameCRC = 0x8000
)

// ParseV23 parses a complete ID3v2.3 tag starting at offset 0 of b
// (spec.md §4.4.3).
func ParseV23(b []byte, opts Options) (*Tag, error) {
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
	if verBytes[0] != 0x03 || verBytes[1] != 0x00 {
		return nil, newParseError(UnsupportedVersion, 3, "", "expected version 0x03 0x00", nil)
	}

	flags, err := r.Byte()
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if flags&^byte(knownTagFlagsV23) != 0 {
		return nil, newParseError(MalformedHeader, 5, "", "reserved tag flag bits set", nil)
	}

	tagSize, err := r.Int(4, true)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	end := v23HeaderSize + int(tagSize)
	if end > len(b) {
		return nil, newParseError(Underflow, v23HeaderSize, "", "declared tag_size exceeds buffer", nil)
	}
	body := b[v23HeaderSize:end]

	if flags&tagFlagV23Unsync != 0 {
		body = synctext.Resync(body)
	}

	tag := &Tag{Version: V2_3, Flags: flags}
	fr := breader.New(body)

	if flags&tagFlagV23ExtHdr != 0 {
		extHdr, err := parseExtHeaderV23(fr)
		if err != nil {
			return nil, err
		}
		tag.ExtHeader = extHdr
	}

	sink := opts.sink()

	for fr.HasMore() && fr.Len()-fr.Pos() >= v23FrameHdrSize {
		label, err := fr.Bytes(4)
		if err != nil {
			return nil, mapReaderError(err, "")
		}
		if label[0] == 0 && label[1] == 0 && label[2] == 0 && label[3] == 0 {
			break // padding
		}

		size, err := fr.Int(4, false)
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
		flagSet, payload, err := consumeV23FrameFlagPayload(uint16(frameFlags), payload, labelStr)
		if err != nil {
			return nil, err
		}

		dec, ok := lookupDecoder(V2_3, labelStr)
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

func parseExtHeaderV23(r *breader.Reader) (*ExtHeader, error) {
	extSize, err := r.Int(4, false)
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	extFlags, err := r.Int(2, false)
	if err != nil {
		return nil, mapReaderError(err, "")
	}
	if extFlags&^uint64(extFlagV23FrameCRC) != 0 {
		return nil, newParseError(MalformedHeader, r.Pos()-2, "", "illegal extended header flag bits set", nil)
	}

	paddingSize, err := r.Int(4, false)
	if err != nil {
		return nil, mapReaderError(err, "")
	}

	eh := &ExtHeader{
		Size:        uint32(extSize),
		FlagsV23:    uint16(extFlags),
		PaddingSize: uint32(paddingSize),
	}

	if extFlags&extFlagV23FrameCRC != 0 {
		crc, err := r.Int(4, false)
		if err != nil {
			return nil, mapReaderError(err, "")
		}
		eh.HasFrameCRC = true
		eh.FrameCRC = uint32(crc)
	}

	return eh, nil
}

// consumeV23FrameFlagPayload reads and strips any flag-implied payload
// bytes from the front of payload (spec.md §4.4.3: these bytes count
// toward the frame's declared size), returning the populated FrameFlags
// and the remaining body bytes.
func consumeV23FrameFlagPayload(raw uint16, payload []byte, label string) (*FrameFlags, []byte, error) {
	ff := newFrameFlags(raw)

	if raw&0x8000 != 0 {
		ff.set(FlagTagAlterPreserve)
	}
	if raw&0x4000 != 0 {
		ff.set(FlagFileAlterPreserve)
	}
	if raw&0x2000 != 0 {
		ff.set(FlagReadOnly)
	}

	r := breader.New(payload)

	if raw&frameFlagV23DecompSize != 0 {
		v, err := r.Int(4, false)
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagCompressed, uint32(v))
	}
	if raw&frameFlagV23Encryption != 0 {
		v, err := r.Byte()
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagEncryptionMethod, uint32(v))
	}
	if raw&frameFlagV23GroupID != 0 {
		v, err := r.Byte()
		if err != nil {
			return nil, nil, mapReaderError(err, label)
		}
		ff.setPayload(FlagGroupID, uint32(v))
	}

	return ff, r.BytesToEnd(), nil
}
