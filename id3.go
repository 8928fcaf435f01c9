// Package id3 decodes ID3v1, ID3v1.1, ID3v2.2, ID3v2.3, and ID3v2.4
// tags from an in-memory byte slice into a structured Tag value.
package id3

// Parse dispatches to the version-specific parser named by v. The
// caller is responsible for locating the relevant slice of the file:
// v1/v1.1 tags live in the last 128 bytes, v2.x tags at offset 0
// (spec.md §6).
func Parse(b []byte, v Version, opts Options) (*Tag, error) {
	switch v {
	case V1, V1_1:
		return ParseV1(b)
	case V2_2:
		return ParseV22(b, opts)
	case V2_3:
		return ParseV23(b, opts)
	case V2_4:
		return ParseV24(b, opts)
	default:
		return nil, newParseError(UnsupportedVersion, 0, "", "unrecognised Version value", nil)
	}
}

// DetectVersion probes b for a recognisable ID3 header at offset 0
// (v2.x) or a "TAG" trailer in the last 128 bytes (v1/v1.1), preferring
// v2.x when both are present. ok is false if neither pattern matches.
func DetectVersion(b []byte) (Version, bool) {
	if len(b) >= 10 && string(b[0:3]) == "ID3" {
		switch b[3] {
		case 0x02:
			return V2_2, true
		case 0x03:
			return V2_3, true
		case 0x04:
			return V2_4, true
		}
	}

	if len(b) >= v1TagSize {
		trailer := b[len(b)-v1TagSize:]
		if string(trailer[0:3]) == "TAG" {
			if trailer[125] == 0x00 && trailer[126] != 0x00 {
				return V1_1, true
			}
			return V1, true
		}
	}

	return 0, false
}
