package id3

import "github.com/illright/id3/internal/textdec"

const v1TagSize = 128

// trimV1 strips trailing NUL bytes and decodes the remainder as ISO-8859-1
// per spec.md §4.4.1.
func trimV1(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0x00 {
		end--
	}
	s, _ := textdec.Decode(b[:end], textdec.ISO88591)
	return s
}

// ParseV1 parses a 128-byte ID3v1/ID3v1.1 trailer block. b must be
// exactly the trailer; callers locate it at the last 128 bytes of the
// file themselves (spec.md §6).
func ParseV1(b []byte) (*Tag, error) {
	if len(b) != v1TagSize || string(b[0:3]) != "TAG" {
		return nil, newParseError(MissingIdentifier, 0, "", `expected "TAG" at offset 0 of a 128-byte block`, nil)
	}

	songname := trimV1(b[3:33])
	artist := trimV1(b[33:63])
	album := trimV1(b[63:93])
	year := trimV1(b[93:97])
	genre := b[127]

	tag := &Tag{Version: V1_1}
	tag.addFrame(Frame{Label: "songname", Body: V1TextFrame{Text: songname}})
	tag.addFrame(Frame{Label: "artist", Body: V1TextFrame{Text: artist}})
	tag.addFrame(Frame{Label: "album", Body: V1TextFrame{Text: album}})
	tag.addFrame(Frame{Label: "year", Body: V1TextFrame{Text: year}})

	commentField := b[97:127]
	if commentField[28] == 0x00 {
		tag.addFrame(Frame{Label: "comment", Body: V1TextFrame{Text: trimV1(commentField[:28])}})
		tag.addFrame(Frame{Label: "track_number", Body: V1ByteFrame{Value: commentField[29]}})
	} else {
		tag.Version = V1
		tag.addFrame(Frame{Label: "comment", Body: V1TextFrame{Text: trimV1(commentField[:30])}})
	}

	tag.addFrame(Frame{Label: "genre", Body: V1ByteFrame{Value: genre}})
	return tag, nil
}
