package id3

import "testing"

func buildV1Trailer(songname, artist, album, year, comment string, sep, trackOrLast byte, genre byte) []byte {
	b := make([]byte, v1TagSize)
	copy(b[0:3], "TAG")
	copy(b[3:33], songname)
	copy(b[33:63], artist)
	copy(b[63:93], album)
	copy(b[93:97], year)
	copy(b[97:125], comment)
	b[125] = sep
	b[126] = trackOrLast
	b[127] = genre
	return b
}

func TestParseV1MissingIdentifier(t *testing.T) {
	b := make([]byte, v1TagSize)
	if _, err := ParseV1(b); err == nil {
		t.Fatal("expected MissingIdentifier error")
	}
}

// TestParseV1Dot1TrackNumber exercises scenario S5: a v1.1 trailer
// whose comment field ends with a 0x00 separator and a track number.
func TestParseV1Dot1TrackNumber(t *testing.T) {
	b := buildV1Trailer("Title", "Artist", "Album", "1999", "A comment", 0x00, 5, 17)

	tag, err := ParseV1(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Version != V1_1 {
		t.Fatalf("expected V1_1, got %v", tag.Version)
	}

	track := tag.First("track_number")
	if track == nil {
		t.Fatal("expected a track_number frame")
	}
	body, ok := track.Body.(V1ByteFrame)
	if !ok || body.Value != 5 {
		t.Fatalf("expected track_number == 5, got %#v", track.Body)
	}

	comment := tag.First("comment")
	if comment == nil {
		t.Fatal("expected a comment frame")
	}
	commentBody := comment.Body.(V1TextFrame)
	if len(commentBody.Text) > 28 {
		t.Fatalf("expected comment length <= 28, got %d", len(commentBody.Text))
	}
}

func TestParseV1PlainComment(t *testing.T) {
	b := buildV1Trailer("Title", "Artist", "Album", "1999", "A longer comment here", 'x', 'y', 12)

	tag, err := ParseV1(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Version != V1 {
		t.Fatalf("expected V1 (no separator), got %v", tag.Version)
	}
	if tag.First("track_number") != nil {
		t.Fatal("did not expect a track_number frame")
	}
}

func TestParseV1Fields(t *testing.T) {
	b := buildV1Trailer("Title", "Artist", "Album", "1999", "hi", 0x00, 1, 9)
	tag, err := ParseV1(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	songname := tag.First("songname").Body.(V1TextFrame).Text
	if songname != "Title" {
		t.Fatalf("expected Title, got %q", songname)
	}
	genre := tag.First("genre").Body.(V1ByteFrame).Value
	if genre != 9 {
		t.Fatalf("expected genre 9, got %d", genre)
	}
}
