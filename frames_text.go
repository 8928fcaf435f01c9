package id3

import (
	"fmt"

	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/textdec"
)

// readEncoding reads and validates the leading encoding-selector byte
// common to most text-bearing frame bodies.
func readEncoding(r *breader.Reader) (textdec.Selector, error) {
	b, err := r.Byte()
	if err != nil {
		return 0, err
	}
	if !textdec.Valid(b) {
		return 0, &breader.MalformedError{Offset: r.Pos() - 1, Reason: fmt.Sprintf("bad encoding byte 0x%02x", b)}
	}
	return textdec.Selector(b), nil
}

// decodeText decodes a T*-family body. When multiValue is true (v2.4),
// the remainder is split on the encoding's NUL terminator into a
// non-empty list of strings; Values[0] aliases Text. In v2.2/v2.3, no
// NUL-termination is required — the whole remaining buffer is the value.
func decodeText(multiValue bool) func(r *breader.Reader) (FrameBody, error) {
	return func(r *breader.Reader) (FrameBody, error) {
		enc, err := readEncoding(r)
		if err != nil {
			return nil, err
		}

		if !multiValue {
			raw := textdec.TrimAllNulSuffix(r.BytesToEnd(), enc)
			s, err := textdec.Decode(raw, enc)
			if err != nil {
				return nil, err
			}
			return Text{Encoding: enc, Text: s}, nil
		}

		values, err := r.StringsUntilEnd(enc)
		if err != nil {
			return nil, err
		}
		return Text{Encoding: enc, Text: values[0], Values: values}, nil
	}
}

func decodeUserText(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	text, err := r.StringUntilEnd(enc)
	if err != nil {
		return nil, err
	}
	return UserText{Encoding: enc, Description: desc, Text: text}, nil
}

func decodeUrl(r *breader.Reader) (FrameBody, error) {
	s, err := r.StringUntilEnd(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	return Url{Text: s}, nil
}

func decodeUserUrl(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	url, err := r.StringUntilEnd(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	return UserUrl{Encoding: enc, Description: desc, Url: url}, nil
}

// decodeInvolvedPeople reads repeated (role, person) NUL-terminated
// pairs until the buffer is exhausted. A trailing unpaired key is
// Malformed (spec §9: undefined in the source, decided here).
func decodeInvolvedPeople(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}

	var pairs []RolePerson
	for r.HasMore() {
		role, err := r.StringUntilNull(enc)
		if err != nil {
			return nil, err
		}
		if !r.HasMore() {
			return nil, &breader.MalformedError{Offset: r.Pos(), Reason: "trailing unpaired involved-people key"}
		}
		person, err := r.StringUntilNull(enc)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, RolePerson{Role: role, Person: person})
	}

	return InvolvedPeople{Encoding: enc, Pairs: pairs}, nil
}

// decodeLangDescText implements the (encoding, language, description,
// text) schema shared by COMM/COM, USLT/ULT and (via TermsOfUse) USER.
// The corpus's COMM-specific NUL/control-character cleanup
// (textdec.StripControl) is applied to every such body, not just comments,
// since the same stray-byte-writer behavior is observed across this
// whole family in the wild.
func decodeLangDescText(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	lang, err := r.String(3, nil)
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	text, err := r.StringUntilEnd(enc)
	if err != nil {
		return nil, err
	}
	return LangDescText{
		Encoding:    enc,
		Language:    lang,
		Description: textdec.StripControl(desc),
		Text:        textdec.StripControl(text),
	}, nil
}

func decodeTermsOfUse(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	lang, err := r.String(3, nil)
	if err != nil {
		return nil, err
	}
	text, err := r.StringUntilEnd(enc)
	if err != nil {
		return nil, err
	}
	return TermsOfUse{Encoding: enc, Language: lang, Text: textdec.StripControl(text)}, nil
}
