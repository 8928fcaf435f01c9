package id3

import "testing"

func synchSafe4(v uint32) []byte {
	return []byte{
		byte((v >> 21) & 0x7f),
		byte((v >> 14) & 0x7f),
		byte((v >> 7) & 0x7f),
		byte(v & 0x7f),
	}
}

func bigEndian(n int, v uint32) []byte {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// TestParseV22Title exercises scenario S1.
func TestParseV22Title(t *testing.T) {
	b := []byte{
		0x49, 0x44, 0x33, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1A,
		0x54, 0x54, 0x32, 0x00, 0x00, 0x14,
		0x00, 0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x2C, 0x20, 0x57, 0x6F, 0x72, 0x6C, 0x64, 0x21,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	tag, err := ParseV22(b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Version != V2_2 {
		t.Fatalf("expected V2_2, got %v", tag.Version)
	}

	f := tag.First("TT2")
	if f == nil {
		t.Fatal("expected a TT2 frame")
	}
	text, ok := f.Body.(Text)
	if !ok {
		t.Fatalf("expected Text body, got %T", f.Body)
	}
	if text.Text != "Hello, World!" {
		t.Fatalf("expected %q, got %q", "Hello, World!", text.Text)
	}
}

// TestParseV22Unsync exercises scenario S2: a 0xFF 0x00 pair inside the
// frame body must collapse to 0xFF before the frame consumer sees it.
func TestParseV22Unsync(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x02, 0x00, 0x80}
	header = append(header, synchSafe4(9)...)

	body := []byte{'M', 'C', 'I', 0x00, 0x00, 0x02, 0xFF, 0x00, 0xE0}
	b := append(header, body...)

	tag, err := ParseV22(b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := tag.First("MCI")
	if f == nil {
		t.Fatal("expected an MCI frame")
	}
	bin, ok := f.Body.(Binary)
	if !ok {
		t.Fatalf("expected Binary body, got %T", f.Body)
	}
	if len(bin.Data) != 2 || bin.Data[0] != 0xFF || bin.Data[1] != 0xE0 {
		t.Fatalf("expected resynced [0xFF 0xE0], got %x", bin.Data)
	}
}

// TestParseV23ExtendedHeader exercises scenario S3.
func TestParseV23ExtendedHeader(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x03, 0x00, 0x40}
	header = append(header, synchSafe4(14)...)

	extHeader := append([]byte{}, bigEndian(4, 10)...)
	extHeader = append(extHeader, 0x80, 0x00)
	extHeader = append(extHeader, bigEndian(4, 100)...)
	extHeader = append(extHeader, bigEndian(4, 0xDEADBEEF)...)

	b := append(header, extHeader...)

	tag, err := ParseV23(b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.ExtHeader == nil {
		t.Fatal("expected an ExtHeader")
	}
	if !tag.ExtHeader.HasFrameCRC || tag.ExtHeader.FrameCRC != 0xDEADBEEF {
		t.Fatalf("expected frame_crc == 0xDEADBEEF, got %#v", tag.ExtHeader)
	}
	if tag.ExtHeader.PaddingSize != 100 {
		t.Fatalf("expected padding_size == 100, got %d", tag.ExtHeader.PaddingSize)
	}
}

// TestParseV24MultiValueText exercises scenario S4.
func TestParseV24MultiValueText(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00}
	header = append(header, synchSafe4(16)...)

	frame := []byte{'T', 'P', 'E', '1'}
	frame = append(frame, synchSafe4(6)...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, 0x03, 0x41, 0x00, 0x42, 0x00, 0x43)

	b := append(header, frame...)

	tag, err := ParseV24(b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := tag.First("TPE1")
	if f == nil {
		t.Fatal("expected a TPE1 frame")
	}
	text, ok := f.Body.(Text)
	if !ok {
		t.Fatalf("expected Text body, got %T", f.Body)
	}
	if text.Text != "A" {
		t.Fatalf("expected text == %q, got %q", "A", text.Text)
	}
	if len(text.Values) != 3 || text.Values[0] != "A" || text.Values[1] != "B" || text.Values[2] != "C" {
		t.Fatalf("expected values [A B C], got %v", text.Values)
	}
}

// TestParseV22MalformedUFI exercises scenario S6.
func TestParseV22MalformedUFI(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x02, 0x00, 0x00}
	header = append(header, synchSafe4(7)...)

	frame := []byte{'U', 'F', 'I', 0x00, 0x00, 0x01, 0x00}
	b := append(header, frame...)

	_, err := ParseV22(b, Options{})
	if err == nil {
		t.Fatal("expected an error for an empty UFI owner")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != Malformed {
		t.Fatalf("expected Malformed, got %v", pe.Kind)
	}
}

// TestDispatchTableStrictness exercises scenario S7: RVA2/EQU2 are
// v2.4-only and must not resolve under the v2.2/v2.3 tables; EQUA has
// no v2.4 form (replaced outright by EQU2) and must not resolve there
// either, while RVAD still resolves under v2.4 (to its degenerate
// identifier+opaque-bytes form, per spec.md §3) rather than being
// unknown.
func TestDispatchTableStrictness(t *testing.T) {
	if _, ok := lookupDecoder(V2_3, "RVA2"); ok {
		t.Fatal("RVA2 must not be in the v2.3 dispatch table")
	}
	if _, ok := lookupDecoder(V2_2, "RVA2"); ok {
		t.Fatal("RVA2 must not be in the v2.2 dispatch table")
	}
	if _, ok := lookupDecoder(V2_4, "RVAD"); !ok {
		t.Fatal("RVAD must still be in the v2.4 dispatch table (degenerate form)")
	}
	if _, ok := lookupDecoder(V2_4, "EQUA"); ok {
		t.Fatal("EQUA must not be in the v2.4 dispatch table")
	}
	if _, ok := lookupDecoder(V2_4, "RVA2"); !ok {
		t.Fatal("RVA2 must be in the v2.4 dispatch table")
	}
}

// TestParseV24DegenerateRvad exercises scenario S7 end to end: an
// RVAD-labeled frame under a v2.4 tag decodes to the degenerate
// identifier+opaque-bytes VolumeAdjust form rather than UnknownFrame.
func TestParseV24DegenerateRvad(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00}
	header = append(header, synchSafe4(14)...)

	frame := []byte{'R', 'V', 'A', 'D'}
	frame = append(frame, synchSafe4(4)...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, 0x01, 0x02, 0x03, 0x04)

	b := append(header, frame...)

	sink := &SliceSink{}
	tag, err := ParseV24(b, Options{Sink: sink})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.Diagnostics) != 0 {
		t.Fatalf("did not expect any diagnostics, got %v", sink.Diagnostics)
	}

	f := tag.First("RVAD")
	if f == nil {
		t.Fatal("expected an RVAD frame")
	}
	va, ok := f.Body.(VolumeAdjust)
	if !ok {
		t.Fatalf("expected VolumeAdjust body, got %T", f.Body)
	}
	if va.Identifier != "RVAD" || len(va.Channels) != 0 {
		t.Fatalf("expected a degenerate form, got %#v", va)
	}
	if string(va.Opaque) != "\x01\x02\x03\x04" {
		t.Fatalf("unexpected opaque bytes: %x", va.Opaque)
	}
}

func TestParseV23UnknownFrameDiagnostic(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x03, 0x00, 0x00}
	header = append(header, synchSafe4(14)...)

	frame := []byte{'R', 'V', 'A', '2'}
	frame = append(frame, bigEndian(4, 4)...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, 0x01, 0x02, 0x03, 0x04)

	b := append(header, frame...)

	sink := &SliceSink{}
	tag, err := ParseV23(b, Options{Sink: sink})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.First("RVA2") != nil {
		t.Fatal("did not expect RVA2 to be decoded under v2.3")
	}
	if len(sink.Diagnostics) != 1 || sink.Diagnostics[0].Kind != DiagUnknownFrame {
		t.Fatalf("expected one DiagUnknownFrame, got %v", sink.Diagnostics)
	}
}

// TestAudioSeekPointIndexIllegalBitsValue covers the bits_per_index_point
// validation (neither 8 nor 16 is illegal), distinct from S8's partial
// trailing field case below.
func TestAudioSeekPointIndexIllegalBitsValue(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00}

	frameBody := append([]byte{}, bigEndian(4, 0)...)
	frameBody = append(frameBody, bigEndian(4, 100)...)
	frameBody = append(frameBody, bigEndian(2, 1)...)
	frameBody = append(frameBody, 13) // illegal: neither 8 nor 16
	frameBody = append(frameBody, 0x00)

	frame := []byte{'A', 'S', 'P', 'I'}
	frame = append(frame, synchSafe4(uint32(len(frameBody)))...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, frameBody...)

	header = append(header, synchSafe4(uint32(len(frame)))...)
	b := append(header, frame...)

	_, err := ParseV24(b, Options{})
	if err == nil {
		t.Fatal("expected an error for an illegal bits_per_index_point value")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != Malformed {
		t.Fatalf("expected a Malformed *ParseError, got %#v", err)
	}
}

// TestAudioSeekPointIndexPartialIndexPoint exercises scenario S8:
// bits_per_index_point == 16 over an odd remaining-byte count after the
// 11-byte fixed prefix must be Malformed ("partial index point"), not
// the Underflow a trailing short r.Int read would otherwise produce.
func TestAudioSeekPointIndexPartialIndexPoint(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00}

	frameBody := append([]byte{}, bigEndian(4, 0)...)
	frameBody = append(frameBody, bigEndian(4, 100)...)
	frameBody = append(frameBody, bigEndian(2, 1)...)
	frameBody = append(frameBody, 16)                    // bits_per_index_point
	frameBody = append(frameBody, 0x00, 0x10, 0x00, 0x20, 0x00) // two full points plus 1 odd trailing byte

	frame := []byte{'A', 'S', 'P', 'I'}
	frame = append(frame, synchSafe4(uint32(len(frameBody)))...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, frameBody...)

	header = append(header, synchSafe4(uint32(len(frame)))...)
	b := append(header, frame...)

	_, err := ParseV24(b, Options{})
	if err == nil {
		t.Fatal("expected an error for a partial trailing index point")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != Malformed {
		t.Fatalf("expected a Malformed *ParseError, got %#v", err)
	}
}

// TestParseV24FooterDiagnostic exercises scenario S9: the footer bit is
// recorded as a diagnostic but the footer itself is never read.
func TestParseV24FooterDiagnostic(t *testing.T) {
	header := []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x10}
	header = append(header, synchSafe4(0)...)

	sink := &SliceSink{}
	tag, err := ParseV24(header, Options{Sink: sink})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Flags&tagFlagV24Footer == 0 {
		t.Fatal("expected the footer bit to be recorded in Tag.Flags")
	}

	found := false
	for _, d := range sink.Diagnostics {
		if d.Kind == DiagFooterPresent {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a DiagFooterPresent diagnostic")
	}
}
