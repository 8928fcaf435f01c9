package id3

import "fmt"

// Version identifies which ID3 tag dialect a Tag was parsed from.
type Version int

const (
	V1 Version = iota
	V1_1
	V2_2
	V2_3
	V2_4
)

func (v Version) String() string {
	switch v {
	case V1:
		return "ID3v1"
	case V1_1:
		return "ID3v1.1"
	case V2_2:
		return "ID3v2.2"
	case V2_3:
		return "ID3v2.3"
	case V2_4:
		return "ID3v2.4"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Options controls parse-time policy. The zero value is strict
// (frame-level errors are fatal) with a discarding diagnostic sink.
//
// No option here is global or package-level state: each Parse* call
// takes its own Options and threads it through a freshly constructed
// cursor, so independent parses over disjoint buffers never interact.
type Options struct {
	// Sink receives non-fatal diagnostics (default DiscardSink{}).
	Sink DiagnosticSink
	// Lenient, if true, drops a frame that fails to decode instead of
	// failing the whole parse (spec §7: default is fatal).
	Lenient bool
}

func (o Options) sink() DiagnosticSink {
	if o.Sink == nil {
		return DiscardSink{}
	}
	return o.Sink
}

// Tag is the fully-decoded result of one parse.
type Tag struct {
	Version Version

	// Flags is the raw header flag byte for v2.x tags; zero (and
	// meaningless) for v1/v1.1.
	Flags byte

	// ExtHeader is non-nil only for v2.3/v2.4 tags that declared one.
	ExtHeader *ExtHeader

	// Frames maps a frame identifier to every frame seen under that
	// identifier, in file order. Duplicates are preserved, not merged.
	Frames map[string][]Frame
}

// FramesOf returns the frames under label, or nil if there are none.
func (t *Tag) FramesOf(label string) []Frame {
	return t.Frames[label]
}

// First returns the first frame under label, or nil if there are none.
func (t *Tag) First(label string) *Frame {
	fs := t.Frames[label]
	if len(fs) == 0 {
		return nil
	}
	return &fs[0]
}

func (t *Tag) addFrame(f Frame) {
	if t.Frames == nil {
		t.Frames = make(map[string][]Frame)
	}
	t.Frames[f.Label] = append(t.Frames[f.Label], f)
}

// ExtHeader models the optional ID3v2.3/ID3v2.4 extended header. Only
// the fields spec.md names are modelled; v2.3 and v2.4 shapes differ
// structurally so both sets of fields live on one struct with the
// unused side left at its zero value.
type ExtHeader struct {
	Size uint32

	// v2.3 shape.
	FlagsV23      uint16
	PaddingSize   uint32
	HasFrameCRC   bool
	FrameCRC      uint32

	// v2.4 shape: the first byte after the size, plus a single
	// FlagBlocks entry holding every byte after it, unsplit. The core
	// models presence/size/flag bits only — it does not split the bytes
	// into per-flag blocks or interpret them.
	FlagsV24   byte
	FlagBlocks [][]byte
}

// FrameFlagBit names one v2.3/v2.4 frame flag independently of version.
// Its value is not the flag's mask in the raw flag word (FrameFlags.Raw),
// whose bit layout differs between v2.3 and v2.4.
type FrameFlagBit uint16

const (
	FlagTagAlterPreserve FrameFlagBit = 1 << iota
	FlagFileAlterPreserve
	FlagReadOnly
	FlagGroupID
	FlagCompressed
	FlagEncryptionMethod
	FlagUnsync
	FlagDataLengthIndicator
)

// FrameFlags holds the v2.3/v2.4 frame-level flags as a map from bit
// to an optional associated payload value. Invariant: a bit is present
// in the map if and only if it is set in the raw flag word (spec §3).
type FrameFlags struct {
	Raw  uint16
	data map[FrameFlagBit]uint32
}

func newFrameFlags(raw uint16) *FrameFlags {
	return &FrameFlags{Raw: raw, data: make(map[FrameFlagBit]uint32)}
}

func (f *FrameFlags) set(bit FrameFlagBit) {
	if _, ok := f.data[bit]; !ok {
		f.data[bit] = 0
	}
}

func (f *FrameFlags) setPayload(bit FrameFlagBit, payload uint32) {
	f.data[bit] = payload
}

// Has reports whether bit is set.
func (f *FrameFlags) Has(bit FrameFlagBit) bool {
	if f == nil {
		return false
	}
	_, ok := f.data[bit]
	return ok
}

// Payload returns the integer payload associated with bit, if any.
func (f *FrameFlags) Payload(bit FrameFlagBit) (uint32, bool) {
	if f == nil {
		return 0, false
	}
	v, ok := f.data[bit]
	return v, ok
}

// Frame is one decoded ID3v2 (or ID3v1 pseudo-)frame.
type Frame struct {
	// Label is the 3-char (v2.2) or 4-char (v2.3/v2.4) identifier. For
	// v1/v1.1 it is a synthetic name ("TIT2"-style alias is not used;
	// see id3v1.go for the exact labels used).
	Label string
	Flags *FrameFlags // nil for v1/v1.1 and v2.2 (no frame-level flags)
	Body  FrameBody
}

// FrameBody is implemented by every frame body variant in §3/§4.5.
// The universe is closed: type-switch over the concrete types listed
// in frame_bodies.go, never add new implementations outside this module.
type FrameBody interface {
	isFrameBody()
}
