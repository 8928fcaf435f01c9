package id3

import (
	"github.com/illright/id3/internal/breader"
)

// volumeChannelSpec names and orders the fixed-role fields a
// VolumeAdjust body fills in as remaining bytes permit.
var volumeChannelSpec = []struct {
	name   string
	isPeak bool
}{
	{"right", false},
	{"left", false},
	{"peak-right", true},
	{"peak-left", true},
	{"right-rear", false},
	{"left-rear", false},
	{"peak-right-rear", true},
	{"peak-left-rear", true},
	{"center", false},
	{"peak-center", true},
	{"bass", false},
	{"peak-bass", true},
}

func ceilDiv8(bits byte) int {
	return (int(bits) + 7) / 8
}

// decodeVolumeAdjust decodes RVAD/RVA (v2.2/v2.3). allowedIncrementMask
// is the only set of increment_flags bits the calling version permits;
// any other set bit is Malformed.
func decodeVolumeAdjust(allowedIncrementMask byte) func(r *breader.Reader) (FrameBody, error) {
	return func(r *breader.Reader) (FrameBody, error) {
		incFlags, err := r.Byte()
		if err != nil {
			return nil, err
		}
		if incFlags&^allowedIncrementMask != 0 {
			return nil, &breader.MalformedError{Offset: r.Pos() - 1, Reason: "illegal increment_flags bit set"}
		}

		bitsForVolume, err := r.Byte()
		if err != nil {
			return nil, err
		}
		if bitsForVolume == 0 {
			return nil, &breader.MalformedError{Offset: r.Pos() - 1, Reason: "bits_for_volume must be > 0"}
		}

		width := ceilDiv8(bitsForVolume)

		var channels []VolumeChannel
		for _, spec := range volumeChannelSpec {
			if !r.HasMore() {
				break
			}
			v, err := r.Int(width, false)
			if err != nil {
				// Fewer bytes remain than one full field: stop, per
				// "as remaining bytes permit" rather than erroring.
				break
			}
			channels = append(channels, VolumeChannel{Name: spec.name, Delta: int64(v), IsPeak: spec.isPeak})
		}

		return VolumeAdjust{IncrementFlags: incFlags, BitsForVolume: bitsForVolume, Channels: channels}, nil
	}
}

// decodeVolumeAdjustDegenerate handles an RVAD-labeled frame found
// under a v2.4 tag: spec.md §3 says it "degenerates to an identifier
// string plus opaque bytes" rather than the v2.2/v2.3 bit-packed
// schema, since v2.4 has no structured RVAD of its own.
func decodeVolumeAdjustDegenerate(r *breader.Reader) (FrameBody, error) {
	return VolumeAdjust{Identifier: "RVAD", Opaque: r.BytesToEnd()}, nil
}

func decodeEqualisation(r *breader.Reader) (FrameBody, error) {
	bits, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return Equalisation{AdjustmentBits: bits, Curve: r.BytesToEnd()}, nil
}

func decodeEqualisation2(r *breader.Reader) (FrameBody, error) {
	method, err := r.Byte()
	if err != nil {
		return nil, err
	}
	id, err := r.StringUntilNull(0)
	if err != nil {
		return nil, err
	}

	var bands []EqualisationBand
	for r.HasMore() {
		freq, err := r.Int(2, false)
		if err != nil {
			return nil, err
		}
		adj, err := r.Int(2, false)
		if err != nil {
			return nil, err
		}
		bands = append(bands, EqualisationBand{Frequency: uint16(freq), VolumeAdjustment: int16(adj)})
	}

	return Equalisation2{InterpolationMethod: method, Identifier: id, Bands: bands}, nil
}

func decodeReverb(r *breader.Reader) (FrameBody, error) {
	widths := []int{2, 2, 1, 1, 1, 1, 1, 1, 1, 1}
	vals := make([]uint64, len(widths))
	for i, w := range widths {
		v, err := r.Int(w, false)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return Reverb{
		ReverbLeft:         uint16(vals[0]),
		ReverbRight:        uint16(vals[1]),
		ReverbBouncesLeft:  byte(vals[2]),
		ReverbBouncesRight: byte(vals[3]),
		ReverbFeedbackLtoL: byte(vals[4]),
		ReverbFeedbackLtoR: byte(vals[5]),
		ReverbFeedbackRtoR: byte(vals[6]),
		ReverbFeedbackRtoL: byte(vals[7]),
		PremixLtoR:         byte(vals[8]),
		PremixRtoL:         byte(vals[9]),
	}, nil
}

func decodeRelativeVolumeAdjustment2(r *breader.Reader) (FrameBody, error) {
	id, err := r.StringUntilNull(0)
	if err != nil {
		return nil, err
	}

	var channels []RelativeVolumeChannel
	for r.HasMore() {
		typ, err := r.Byte()
		if err != nil {
			return nil, err
		}
		adj, err := r.Int(2, false)
		if err != nil {
			return nil, err
		}
		peakBits, err := r.Byte()
		if err != nil {
			return nil, err
		}
		peak, err := r.Bytes(ceilDiv8(peakBits))
		if err != nil {
			return nil, err
		}
		channels = append(channels, RelativeVolumeChannel{
			ChannelType:      typ,
			VolumeAdjustment: int16(adj),
			PeakBits:         peakBits,
			Peak:             peak,
		})
	}

	return RelativeVolumeAdjustment2{Identifier: id, Channels: channels}, nil
}
