package id3

import "github.com/illright/id3/internal/breader"

// lookupDecoder resolves label to a body decoder under the dispatch
// table for version v. The text-information and URL-link groups are
// routed generically (spec.md §4.4.5) before falling through to the
// version's fixed table; ok is false for an identifier that is in
// neither the closed table nor a generic group (DiagUnknownFrame).
func lookupDecoder(v Version, label string) (decoderFunc, bool) {
	if isTextFrame(label) {
		return decodeText(v == V2_4), true
	}
	if isUrlFrame(label) {
		return decodeUrl, true
	}

	var table map[string]decoderFunc
	switch v {
	case V2_2:
		table = v22Table
	case V2_3:
		table = v23Table
	case V2_4:
		table = v24Table
	default:
		return nil, false
	}

	d, ok := table[label]
	return d, ok
}

// decodeFrameBody runs the dispatched decoder over exactly the body's
// bytes and maps any decoder error to a ParseError tagged with label.
// Bytes the decoder leaves unread are not checked and do not fail it.
func decodeFrameBody(dec decoderFunc, body []byte, label string) (FrameBody, error) {
	r := breader.New(body)
	fb, err := dec(r)
	if err != nil {
		return nil, mapReaderError(err, label)
	}
	return fb, nil
}
