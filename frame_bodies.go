package id3

import "github.com/illright/id3/internal/textdec"

// This file enumerates the closed universe of frame body variants
// (spec.md §3, SPEC_FULL.md §3.1). Every dispatch table entry produces
// one of these.

// Text is the body of a text-information frame (T*, except TXXX).
// Values holds every NUL-separated string for v2.4 multi-value text;
// it is nil for v2.2/v2.3, where Text is the whole decoded body.
type Text struct {
	Encoding textdec.Selector
	Text     string
	Values   []string
}

func (Text) isFrameBody() {}

// UserText is the body of a user-defined text frame (TXXX/TXX).
type UserText struct {
	Encoding    textdec.Selector
	Description string
	Text        string
}

func (UserText) isFrameBody() {}

// Url is the body of a URL-link frame (W*, except WXXX), always ISO-8859-1.
type Url struct {
	Text string
}

func (Url) isFrameBody() {}

// UserUrl is the body of a user-defined URL-link frame (WXXX/WXX).
type UserUrl struct {
	Encoding    textdec.Selector
	Description string
	Url         string
}

func (UserUrl) isFrameBody() {}

// RolePerson is one (role, person) pair inside an InvolvedPeople body.
type RolePerson struct {
	Role   string
	Person string
}

// InvolvedPeople is the body of IPLS/TIPL/IPL.
type InvolvedPeople struct {
	Encoding textdec.Selector
	Pairs    []RolePerson
}

func (InvolvedPeople) isFrameBody() {}

// LangDescText is the shared (encoding, language, description, text)
// schema used by comments (COMM/COM) and unsynchronised lyrics
// (USLT/ULT). Terms of use (USER) has no description and decodes to
// TermsOfUse instead.
type LangDescText struct {
	Encoding    textdec.Selector
	Language    string
	Description string
	Text        string
}

func (LangDescText) isFrameBody() {}

// Binary is a raw, structurally-opaque frame body (MCDI/MCI and any
// other frame whose payload this module does not interpret further).
type Binary struct {
	Data []byte
}

func (Binary) isFrameBody() {}

// Timestamp is the body of event-timing-style frames with a leading
// format byte (ETCO/ETC carries its own richer shape, see EventTimingCodes;
// this variant is for single-format-byte-plus-opaque-data frames).
type Timestamp struct {
	TimestampType byte
	Data          []byte
}

func (Timestamp) isFrameBody() {}

// MpegLookup is the body of MLLT/MLL.
type MpegLookup struct {
	FramesBetweenRef uint16
	BytesBetweenRef  uint32
	MsBetweenRef     uint32
	BitsForByteDev   uint8
	BitsForMsDev     uint8
	Data             []byte
}

func (MpegLookup) isFrameBody() {}

// SyncedLyrics is the body of SYLT/SLT.
type SyncedLyrics struct {
	Encoding      textdec.Selector
	Language      string
	TimestampType byte
	ContentType   byte
	Descriptor    string
	Data          []byte
}

func (SyncedLyrics) isFrameBody() {}

// VolumeChannel is one fixed-role channel reading inside a VolumeAdjust
// body (spec.md §3's ordered {rightΔ, leftΔ, [peakR, peakL], ...} list).
type VolumeChannel struct {
	Name  string // "right", "left", "peak-right", "peak-left", "right-rear", ...
	Delta int64  // the field's unsigned value as read; the increment/decrement direction of *Δ fields is only in VolumeAdjust.IncrementFlags
	IsPeak bool
}

// VolumeAdjust is the body of RVAD/RVA (v2.2/v2.3 bit-packed relative
// volume adjustment). For a (nonstandard) occurrence routed here under
// a v2.4 dispatch table, the body degenerates to an opaque identifier
// plus raw bytes instead (Identifier/Opaque set, Channels nil).
type VolumeAdjust struct {
	IncrementFlags byte
	BitsForVolume  byte
	Channels       []VolumeChannel

	Identifier string
	Opaque     []byte
}

func (VolumeAdjust) isFrameBody() {}

// Equalisation is the body of EQUA/EQU (v2.2/v2.3). v2.4's EQU2 is a
// structurally distinct frame, see Equalisation2.
type Equalisation struct {
	AdjustmentBits byte
	Curve          []byte
}

func (Equalisation) isFrameBody() {}

// Reverb is the body of RVRB/REV: ten packed fields at fixed offsets.
type Reverb struct {
	ReverbLeft          uint16
	ReverbRight         uint16
	ReverbBouncesLeft   byte
	ReverbBouncesRight  byte
	ReverbFeedbackLtoL  byte
	ReverbFeedbackLtoR  byte
	ReverbFeedbackRtoR  byte
	ReverbFeedbackRtoL  byte
	PremixLtoR          byte
	PremixRtoL          byte
}

func (Reverb) isFrameBody() {}

// Picture is the body of APIC/PIC.
type Picture struct {
	Encoding     textdec.Selector
	ImageFormat  string // 3-char code (v2.2) or MIME type (v2.3/v2.4)
	PictureType  byte
	Description  string
	Data         []byte
}

func (Picture) isFrameBody() {}

// EncapsulatedObject is the body of GEOB/GEO.
type EncapsulatedObject struct {
	Encoding    textdec.Selector
	MimeType    string
	Filename    string
	Description string
	Data        []byte
}

func (EncapsulatedObject) isFrameBody() {}

// PlayCount is the body of PCNT/CNT: a single big-endian integer of
// arbitrary width, at least 4 bytes wide.
type PlayCount struct {
	Count uint64
}

func (PlayCount) isFrameBody() {}

// Popularimeter is the body of POPM/POP.
type Popularimeter struct {
	Email     string
	Rating    byte
	PlayCount uint64
	HasCount  bool
}

func (Popularimeter) isFrameBody() {}

// BufferRecommendation is the body of RBUF/BUF.
type BufferRecommendation struct {
	BufferSize      uint32
	EmbeddedInfo    bool
	OffsetToNextTag uint64
	HasOffset       bool
}

func (BufferRecommendation) isFrameBody() {}

// UniqueFileIdentifier is the body of UFID/UFI.
type UniqueFileIdentifier struct {
	Owner      string
	Identifier []byte
}

func (UniqueFileIdentifier) isFrameBody() {}

// EncryptedMeta is the body of CRM (v2.2 only).
type EncryptedMeta struct {
	Owner       string
	Explanation string
	Data        []byte
}

func (EncryptedMeta) isFrameBody() {}

// AudioEncryption is the body of AENC/CRA.
type AudioEncryption struct {
	Owner         string
	PreviewStart  uint16
	PreviewLength uint16
	Data          []byte
}

func (AudioEncryption) isFrameBody() {}

// Linked is the body of LINK/LNK.
type Linked struct {
	LinkedFrameID string
	Url           string
	IDs           []string
}

func (Linked) isFrameBody() {}

// Ownership is the body of OWNE.
type Ownership struct {
	Encoding    textdec.Selector
	Price       string
	PurchaseDate string // YYYYMMDD, not normalised per spec Non-goals
	Seller      string
}

func (Ownership) isFrameBody() {}

// Commercial is the body of COMR.
type Commercial struct {
	Encoding     textdec.Selector
	Price        string
	ValidUntil   string // YYYYMMDD, not normalised
	ContactUrl   string
	ReceivedAs   byte
	Seller       string
	Description  string
	LogoMimeType string
	LogoData     []byte
	HasLogo      bool
}

func (Commercial) isFrameBody() {}

// EncryptionRegistration is the body of ENCR.
type EncryptionRegistration struct {
	Owner       string
	MethodSymbol byte
	Data        []byte
}

func (EncryptionRegistration) isFrameBody() {}

// GroupRegistration is the body of GRID.
type GroupRegistration struct {
	Owner       string
	GroupSymbol byte
	Data        []byte
}

func (GroupRegistration) isFrameBody() {}

// Private is the body of PRIV.
type Private struct {
	Owner string
	Data  []byte
}

func (Private) isFrameBody() {}

// --- SPEC_FULL.md §3.1 supplementary body variants ---

// EventTimingCode is one (type, timestamp) pair inside EventTimingCodes.
type EventTimingCode struct {
	EventType byte
	Timestamp uint32
}

// EventTimingCodes is the body of ETCO/ETC.
type EventTimingCodes struct {
	TimestampFormat byte
	Events          []EventTimingCode
}

func (EventTimingCodes) isFrameBody() {}

// SyncedTempoCodes is the body of SYTC/STC.
type SyncedTempoCodes struct {
	TimestampFormat byte
	Data            []byte
}

func (SyncedTempoCodes) isFrameBody() {}

// PositionSync is the body of POSS.
type PositionSync struct {
	TimestampFormat byte
	Position        uint64
}

func (PositionSync) isFrameBody() {}

// TermsOfUse is the body of USER.
type TermsOfUse struct {
	Encoding textdec.Selector
	Language string
	Text     string
}

func (TermsOfUse) isFrameBody() {}

// SeekFrame is the body of SEEK (v2.4 only).
type SeekFrame struct {
	MinOffset uint64
}

func (SeekFrame) isFrameBody() {}

// SignatureFrame is the body of SIGN (v2.4 only).
type SignatureFrame struct {
	GroupSymbol byte
	Signature   []byte
}

func (SignatureFrame) isFrameBody() {}

// SeekIndexPoint is one packed index point inside AudioSeekPointIndex.
type SeekIndexPoint struct {
	FractionAtIndex uint32
}

// AudioSeekPointIndex is the body of ASPI (v2.4 only).
type AudioSeekPointIndex struct {
	IndexedDataStart     uint32
	IndexedDataLength    uint32
	NumberOfIndexPoints  uint16
	BitsPerIndexPoint    byte
	IndexPoints          []SeekIndexPoint
}

func (AudioSeekPointIndex) isFrameBody() {}

// EqualisationBand is one (frequency, adjustment) pair in Equalisation2.
type EqualisationBand struct {
	Frequency         uint16
	VolumeAdjustment  int16
}

// Equalisation2 is the body of EQU2 (v2.4 only).
type Equalisation2 struct {
	InterpolationMethod byte
	Identifier          string
	Bands               []EqualisationBand
}

func (Equalisation2) isFrameBody() {}

// RelativeVolumeChannel is one per-channel block in RelativeVolumeAdjustment2.
type RelativeVolumeChannel struct {
	ChannelType      byte
	VolumeAdjustment int16
	PeakBits         byte
	Peak             []byte
}

// RelativeVolumeAdjustment2 is the body of RVA2 (v2.4 only).
type RelativeVolumeAdjustment2 struct {
	Identifier string
	Channels   []RelativeVolumeChannel
}

func (RelativeVolumeAdjustment2) isFrameBody() {}

// --- ID3v1 / ID3v1.1 bodies ---

// V1TextFrame is a fixed-width ISO-8859-1 string field from a v1/v1.1 tag.
type V1TextFrame struct {
	Text string
}

func (V1TextFrame) isFrameBody() {}

// V1ByteFrame is a single-byte field from a v1/v1.1 tag (genre or track number).
type V1ByteFrame struct {
	Value byte
}

func (V1ByteFrame) isFrameBody() {}
