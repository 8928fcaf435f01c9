package id3

import (
	"testing"

	"github.com/illright/id3/internal/breader"
)

func decode(t *testing.T, dec decoderFunc, body []byte) FrameBody {
	t.Helper()
	r := breader.New(body)
	fb, err := dec(r)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return fb
}

func TestDecodePopularimeterWithCount(t *testing.T) {
	body := append([]byte("listener@example.com\x00"), 200, 0, 0, 0, 7)
	fb := decode(t, decodePopularimeter, body)
	pop := fb.(Popularimeter)

	if pop.Email != "listener@example.com" {
		t.Fatalf("unexpected email %q", pop.Email)
	}
	if pop.Rating != 200 {
		t.Fatalf("expected rating 200, got %d", pop.Rating)
	}
	if !pop.HasCount || pop.PlayCount != 7 {
		t.Fatalf("expected play count 7, got %#v", pop)
	}
}

func TestDecodePopularimeterNoCount(t *testing.T) {
	body := append([]byte("a@b.c\x00"), 1)
	fb := decode(t, decodePopularimeter, body)
	pop := fb.(Popularimeter)
	if pop.HasCount {
		t.Fatal("did not expect a play count")
	}
}

func TestDecodeRecommendedBufferIllegalEmbedByte(t *testing.T) {
	body := []byte{0x00, 0x00, 0x10, 0x02} // bit 1 set, illegal
	r := breader.New(body)
	if _, err := decodeRecommendedBuffer(r); err == nil {
		t.Fatal("expected an error for an illegal embedded-info byte")
	}
}

func TestDecodeVolumeAdjustV22(t *testing.T) {
	body := []byte{0x03, 0x08, 0x05, 0x03}
	fb := decode(t, decodeVolumeAdjust(0x03), body)
	va := fb.(VolumeAdjust)

	if va.BitsForVolume != 8 {
		t.Fatalf("expected bits_for_volume 8, got %d", va.BitsForVolume)
	}
	if len(va.Channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(va.Channels))
	}
	if va.Channels[0].Name != "right" || va.Channels[0].Delta != 5 {
		t.Fatalf("unexpected first channel: %#v", va.Channels[0])
	}
	if va.Channels[1].Name != "left" || va.Channels[1].Delta != 3 {
		t.Fatalf("unexpected second channel: %#v", va.Channels[1])
	}
}

func TestDecodeVolumeAdjustIllegalIncrementBit(t *testing.T) {
	body := []byte{0x04, 0x08, 0x00, 0x05}
	r := breader.New(body)
	if _, err := decodeVolumeAdjust(0x03)(r); err == nil {
		t.Fatal("expected an error for an illegal increment_flags bit")
	}
}

func TestDecodeVolumeAdjustZeroBitsForVolume(t *testing.T) {
	body := []byte{0x00, 0x00}
	r := breader.New(body)
	if _, err := decodeVolumeAdjust(0x03)(r); err == nil {
		t.Fatal("expected an error for bits_for_volume == 0")
	}
}

func TestDecodeCommercialWithoutLogo(t *testing.T) {
	body := []byte{0x00}
	body = append(body, "9.99\x00"...)
	body = append(body, "20301231"...)
	body = append(body, "https://example.com\x00"...)
	body = append(body, 0x01)
	body = append(body, "Seller\x00"...)
	body = append(body, "A description\x00"...)

	fb := decode(t, decodeCommercial, body)
	com := fb.(Commercial)
	if com.Price != "9.99" || com.ValidUntil != "20301231" {
		t.Fatalf("unexpected commercial fields: %#v", com)
	}
	if com.HasLogo {
		t.Fatal("did not expect a logo")
	}
}

func TestDecodeEventTimingCodes(t *testing.T) {
	body := []byte{0x02, 0x01, 0x00, 0x00, 0x03, 0xE8}
	fb := decode(t, decodeEventTimingCodes, body)
	etco := fb.(EventTimingCodes)
	if etco.TimestampFormat != 2 {
		t.Fatalf("unexpected format %d", etco.TimestampFormat)
	}
	if len(etco.Events) != 1 || etco.Events[0].EventType != 1 || etco.Events[0].Timestamp != 1000 {
		t.Fatalf("unexpected events: %#v", etco.Events)
	}
}

func TestDecodeAudioSeekPointIndexValid(t *testing.T) {
	body := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x64, 0x00, 0x02, 16, 0x00, 0x10, 0x00, 0x20}
	fb := decode(t, decodeAudioSeekPointIndex, body)
	aspi := fb.(AudioSeekPointIndex)
	if aspi.BitsPerIndexPoint != 16 {
		t.Fatalf("unexpected bits %d", aspi.BitsPerIndexPoint)
	}
	if len(aspi.IndexPoints) != 2 {
		t.Fatalf("expected 2 index points, got %d", len(aspi.IndexPoints))
	}
}

func TestDecodeInvolvedPeopleTrailingKeyMalformed(t *testing.T) {
	body := []byte{0x00, 'l', 'y', 'r', 'i', 'c', 'i', 's', 't', 0x00}
	r := breader.New(body)
	if _, err := decodeInvolvedPeople(r); err == nil {
		t.Fatal("expected an error for a trailing unpaired key")
	}
}

func TestDecodeUserText(t *testing.T) {
	body := append([]byte{0x00}, "replaygain_track_gain\x00"...)
	body = append(body, "-3.2 dB"...)
	fb := decode(t, decodeUserText, body)
	ut := fb.(UserText)
	if ut.Description != "replaygain_track_gain" || ut.Text != "-3.2 dB" {
		t.Fatalf("unexpected UserText: %#v", ut)
	}
}
