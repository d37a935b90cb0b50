package record

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeContact decodes one contact message body. The body excludes the
// length prefix and any trailing attachment bytes.
func DecodeContact(b []byte) (*ContactRecord, error) {
	rec := &ContactRecord{}
	var err error
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("record: contact tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == contactFieldNumber && typ == protowire.BytesType:
			rec.Number, b, err = consumeString(b)
		case num == contactFieldUUID && typ == protowire.BytesType:
			rec.UUID, b, err = consumeString(b)
		case num == contactFieldName && typ == protowire.BytesType:
			rec.Name, b, err = consumeString(b)
		case num == contactFieldAvatar && typ == protowire.BytesType:
			var body []byte
			body, n = protowire.ConsumeBytes(b)
			if n < 0 {
				err = protowire.ParseError(n)
				break
			}
			b = b[n:]
			rec.Avatar, err = decodeAttachment(body)
		case num == contactFieldVerified && typ == protowire.BytesType:
			var body []byte
			body, n = protowire.ConsumeBytes(b)
			if n < 0 {
				err = protowire.ParseError(n)
				break
			}
			b = b[n:]
			rec.Verified, err = decodeVerified(body)
		case num == contactFieldBlocked && typ == protowire.VarintType:
			var v uint64
			v, b, err = consumeVarint(b)
			rec.Blocked = v != 0
		case num == contactFieldExpire && typ == protowire.VarintType:
			var v uint64
			v, b, err = consumeVarint(b)
			rec.ExpireTimerSeconds = uint32(v)
		default:
			b, err = skipField(num, typ, b)
		}
		if err != nil {
			return nil, fmt.Errorf("record: contact field %d: %w", num, err)
		}
	}
	return rec, nil
}

func decodeVerified(b []byte) (*Verified, error) {
	v := &Verified{}
	var err error
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("record: verified tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == verifiedFieldDestUUID && typ == protowire.BytesType:
			v.DestinationUUID, b, err = consumeString(b)
		case num == verifiedFieldIdentityKey && typ == protowire.BytesType:
			v.IdentityKey, b, err = consumeBytes(b)
		case num == verifiedFieldState && typ == protowire.VarintType:
			var s uint64
			s, b, err = consumeVarint(b)
			v.State = uint32(s)
		default:
			b, err = skipField(num, typ, b)
		}
		if err != nil {
			return nil, fmt.Errorf("record: verified field %d: %w", num, err)
		}
	}
	return v, nil
}
