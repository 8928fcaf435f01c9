package id3

import (
	"github.com/illright/id3/internal/breader"
	"github.com/illright/id3/internal/textdec"
)

func decodePlayCount(r *breader.Reader) (FrameBody, error) {
	return PlayCount{Count: r.IntToEnd()}, nil
}

func readNonEmptyOwner(r *breader.Reader) (string, error) {
	owner, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", &breader.MalformedError{Offset: r.Pos(), Reason: "empty owner"}
	}
	return owner, nil
}

func decodeUniqueFileIdentifier(r *breader.Reader) (FrameBody, error) {
	owner, err := readNonEmptyOwner(r)
	if err != nil {
		return nil, err
	}
	return UniqueFileIdentifier{Owner: owner, Identifier: r.BytesToEnd()}, nil
}

// decodeEncryptedMeta implements CRM (v2.2 only).
func decodeEncryptedMeta(r *breader.Reader) (FrameBody, error) {
	owner, err := readNonEmptyOwner(r)
	if err != nil {
		return nil, err
	}
	explanation, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	return EncryptedMeta{Owner: owner, Explanation: explanation, Data: r.BytesToEnd()}, nil
}

func decodeAudioEncryption(r *breader.Reader) (FrameBody, error) {
	owner, err := readNonEmptyOwner(r)
	if err != nil {
		return nil, err
	}
	start, err := r.Int(2, false)
	if err != nil {
		return nil, err
	}
	length, err := r.Int(2, false)
	if err != nil {
		return nil, err
	}
	return AudioEncryption{
		Owner:         owner,
		PreviewStart:  uint16(start),
		PreviewLength: uint16(length),
		Data:          r.BytesToEnd(),
	}, nil
}

// decodeLinked reads a linked-information frame. idWidth is 3 bytes
// for v2.2, 4 bytes for v2.3/v2.4.
func decodeLinked(idWidth int) func(r *breader.Reader) (FrameBody, error) {
	return func(r *breader.Reader) (FrameBody, error) {
		idBytes, err := r.Bytes(idWidth)
		if err != nil {
			return nil, err
		}
		url, err := r.StringUntilNull(textdec.ISO88591)
		if err != nil {
			return nil, err
		}
		ids, err := r.StringsUntilEnd(textdec.ISO88591)
		if err != nil {
			return nil, err
		}
		return Linked{LinkedFrameID: string(idBytes), Url: url, IDs: ids}, nil
	}
}

// decodeRecommendedBuffer implements RBUF/BUF.
func decodeRecommendedBuffer(r *breader.Reader) (FrameBody, error) {
	size, err := r.Int(3, false)
	if err != nil {
		return nil, err
	}
	embedByte, err := r.Byte()
	if err != nil {
		return nil, err
	}
	if embedByte&^0x01 != 0 {
		return nil, &breader.MalformedError{Offset: r.Pos() - 1, Reason: "only bit 0 of embedded-info byte may be set"}
	}

	body := BufferRecommendation{BufferSize: uint32(size), EmbeddedInfo: embedByte&0x01 != 0}
	if r.HasMore() {
		body.OffsetToNextTag = r.IntToEnd()
		body.HasOffset = true
	}
	return body, nil
}

func decodePopularimeter(r *breader.Reader) (FrameBody, error) {
	email, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	rating, err := r.Byte()
	if err != nil {
		return nil, err
	}
	body := Popularimeter{Email: email, Rating: rating}
	if r.HasMore() {
		body.PlayCount = r.IntToEnd()
		body.HasCount = true
	}
	return body, nil
}

func readDate8(r *breader.Reader) (string, error) {
	return r.String(8, nil)
}

func decodeCommercial(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	price, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	validUntil, err := readDate8(r)
	if err != nil {
		return nil, err
	}
	contactURL, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	receivedAs, err := r.Byte()
	if err != nil {
		return nil, err
	}
	seller, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	desc, err := r.StringUntilNull(enc)
	if err != nil {
		return nil, err
	}

	body := Commercial{
		Encoding:   enc,
		Price:      price,
		ValidUntil: validUntil,
		ContactUrl: contactURL,
		ReceivedAs: receivedAs,
		Seller:     seller,
		Description: desc,
	}

	if r.HasMore() {
		mime, err := r.StringUntilNull(textdec.ISO88591)
		if err != nil {
			return nil, err
		}
		body.LogoMimeType = mime
		body.LogoData = r.BytesToEnd()
		body.HasLogo = true
	}

	return body, nil
}

func decodeOwnership(r *breader.Reader) (FrameBody, error) {
	enc, err := readEncoding(r)
	if err != nil {
		return nil, err
	}
	price, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	date, err := readDate8(r)
	if err != nil {
		return nil, err
	}
	seller, err := r.StringUntilEnd(enc)
	if err != nil {
		return nil, err
	}
	return Ownership{Encoding: enc, Price: price, PurchaseDate: date, Seller: seller}, nil
}

func decodeEncryptionRegistration(r *breader.Reader) (FrameBody, error) {
	owner, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	sym, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return EncryptionRegistration{Owner: owner, MethodSymbol: sym, Data: r.BytesToEnd()}, nil
}

func decodeGroupRegistration(r *breader.Reader) (FrameBody, error) {
	owner, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	sym, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return GroupRegistration{Owner: owner, GroupSymbol: sym, Data: r.BytesToEnd()}, nil
}

func decodePrivate(r *breader.Reader) (FrameBody, error) {
	owner, err := r.StringUntilNull(textdec.ISO88591)
	if err != nil {
		return nil, err
	}
	return Private{Owner: owner, Data: r.BytesToEnd()}, nil
}
