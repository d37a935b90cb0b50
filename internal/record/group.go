package record

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeGroup decodes one group message body. The body excludes the length
// prefix and any trailing attachment bytes.
func DecodeGroup(b []byte) (*GroupRecord, error) {
	rec := &GroupRecord{}
	var err error
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("record: group tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == groupFieldName && typ == protowire.BytesType:
			rec.Name, b, err = consumeString(b)
		case num == groupFieldMembers && typ == protowire.BytesType:
			var body []byte
			body, n = protowire.ConsumeBytes(b)
			if n < 0 {
				err = protowire.ParseError(n)
				break
			}
			b = b[n:]
			var m Member
			m, err = decodeMember(body)
			if err == nil {
				rec.Members = append(rec.Members, m)
			}
		case num == groupFieldAvatar && typ == protowire.BytesType:
			var body []byte
			body, n = protowire.ConsumeBytes(b)
			if n < 0 {
				err = protowire.ParseError(n)
				break
			}
			b = b[n:]
			rec.Avatar, err = decodeAttachment(body)
		case num == groupFieldActive && typ == protowire.VarintType:
			var v uint64
			v, b, err = consumeVarint(b)
			rec.Active = v != 0
		case num == groupFieldExpire && typ == protowire.VarintType:
			var v uint64
			v, b, err = consumeVarint(b)
			rec.ExpireTimerSeconds = uint32(v)
		default:
			b, err = skipField(num, typ, b)
		}
		if err != nil {
			return nil, fmt.Errorf("record: group field %d: %w", num, err)
		}
	}
	return rec, nil
}

func decodeMember(b []byte) (Member, error) {
	var m Member
	var err error
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Member{}, fmt.Errorf("record: member tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == memberFieldUUID && typ == protowire.BytesType:
			m.UUID, b, err = consumeString(b)
		case num == memberFieldName && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		default:
			b, err = skipField(num, typ, b)
		}
		if err != nil {
			return Member{}, fmt.Errorf("record: member field %d: %w", num, err)
		}
	}
	return m, nil
}
