package id3

import (
	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/textdec"
)

func decodeBinary(r *breader.Reader) (FrameBody, error) {
	return Binary{Data: r.BytesToEnd()}, nil
}

func decodeMpegLookup(r *breader.Reader) (FrameBody, error) {
	framesBetween, err := r.Int(2, false)
	if err != nil {
		return nil, err
	}
	bytesBetween, err := r.Int(3, false)
	if err != nil {
		return nil, err
	}
	msBetween, err := r.Int(3, false)
	if err != nil {
		return nil, err
	}
	bitsByte, err := r.Byte()
	if err != nil {
		return nil, err
	}
	bitsMs, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return MpegLookup{
		FramesBetweenRef: uint16(framesBetween),
		BytesBetweenRef:  uint32(bytesBetween),
		MsBetweenRef:     uint32(msBetween),
		BitsForByteDev:   bitsByte,
		BitsForMsDev:     bitsMs,
		Data:             r.BytesToEnd(),
	}, nil
}

func decodeSyncedLyrics(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	lang, err := r.String(3, nil)
	if err != nil {
		return nil, err
	}
	tsType, err := r.Byte()
	if err != nil {
		return nil, err
	}
	contentType, err := r.Byte()
	if err != nil {
		return nil, err
	}
	descriptor, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	return SyncedLyrics{
		Encoding:      enc,
		Language:      lang,
		TimestampType: tsType,
		ContentType:   contentType,
		Descriptor:    descriptor,
		Data:          r.BytesToEnd(),
	}, nil
}

// decodePictureV22 decodes APIC/PIC under v2.2: a 3-char image format
// code instead of a NUL-terminated MIME type.
func decodePictureV22(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	format, err := r.String(3, nil)
	if err != nil {
		return nil, err
	}
	picType, err := r.Byte()
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	return Picture{
		Encoding:    enc,
		ImageFormat: format,
		PictureType: picType,
		Description: desc,
		Data:        r.BytesToEnd(),
	}, nil
}

// decodePictureV2x decodes APIC under v2.3/v2.4: a NUL-terminated
// ISO-8859-1 MIME type instead of a fixed 3-char code.
func decodePictureV2x(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	mime, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	picType, err := r.Byte()
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	return Picture{
		Encoding:    enc,
		ImageFormat: mime,
		PictureType: picType,
		Description: desc,
		Data:        r.BytesToEnd(),
	}, nil
}

// decodeEncapsulatedObject implements GEOB per spec.md §9: MIME is
// ISO-8859-1, filename and description use the declared encoding —
// overriding the teacher corpus's inconsistent practice on filename.
func decodeEncapsulatedObject(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	mime, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	filename, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	return EncapsulatedObject{
		Encoding:    enc,
		MimeType:    mime,
		Filename:    filename,
		Description: desc,
		Data:        r.BytesToEnd(),
	}, nil
}

func decodeEventTimingCodes(r *breader.Reader) (FrameBody, error) {
	format, err := r.Byte()
	if err != nil {
		return nil, err
	}
	var events []EventTimingCode
	for r.HasMore() {
		typ, err := r.Byte()
		if err != nil {
			return nil, err
		}
		ts, err := r.Int(4, false)
		if err != nil {
			return nil, err
		}
		events = append(events, EventTimingCode{EventType: typ, Timestamp: uint32(ts)})
	}
	return EventTimingCodes{TimestampFormat: format, Events: events}, nil
}

func decodeSyncedTempoCodes(r *breader.Reader) (FrameBody, error) {
	format, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return SyncedTempoCodes{TimestampFormat: format, Data: r.BytesToEnd()}, nil
}

func decodePositionSync(r *breader.Reader) (FrameBody, error) {
	format, err := r.Byte()
	if err != nil {
		return nil, err
	}
	pos := r.IntToEnd()
	return PositionSync{TimestampFormat: format, Position: pos}, nil
}

func decodeSeekFrame(r *breader.Reader) (FrameBody, error) {
	return SeekFrame{MinOffset: r.IntToEnd()}, nil
}

func decodeSignatureFrame(r *breader.Reader) (FrameBody, error) {
	sym, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return SignatureFrame{GroupSymbol: sym, Signature: r.BytesToEnd()}, nil
}

func decodeAudioSeekPointIndex(r *breader.Reader) (FrameBody, error) {
	start, err := r.Int(4, false)
	if err != nil {
		return nil, err
	}
	length, err := r.Int(4, false)
	if err != nil {
		return nil, err
	}
	n, err := r.Int(2, false)
	if err != nil {
		return nil, err
	}
	bits, err := r.Byte()
	if err != nil {
		return nil, err
	}

	var width int
	switch bits {
	case 8:
		width = 1
	case 16:
		width = 2
	default:
		return nil, &breader.MalformedError{Offset: r.Pos() - 1, Reason: "bits_per_index_point must be 8 or 16"}
	}

	if remaining := r.Len() - r.Pos(); remaining%width != 0 {
		return nil, &breader.MalformedError{Offset: r.Pos(), Reason: "partial index point"}
	}

	points := make([]SeekIndexPoint, 0, n)
	for r.HasMore() {
		v, err := r.Int(width, false)
		if err != nil {
			return nil, err
		}
		points = append(points, SeekIndexPoint{FractionAtIndex: uint32(v)})
	}

	return AudioSeekPointIndex{
		IndexedDataStart:    uint32(start),
		IndexedDataLength:   uint32(length),
		NumberOfIndexPoints: uint16(n),
		BitsPerIndexPoint:   bits,
		IndexPoints:         points,
	}, nil
}
