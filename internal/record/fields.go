package record

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire field numbers for each message kind. Unknown numbers are skipped so
// newer exports stay readable.
const (
	groupFieldName    protowire.Number = 1
	groupFieldMembers protowire.Number = 2
	groupFieldAvatar  protowire.Number = 3
	groupFieldActive  protowire.Number = 4
	groupFieldExpire  protowire.Number = 5

	memberFieldUUID protowire.Number = 1
	memberFieldName protowire.Number = 2

	contactFieldNumber   protowire.Number = 1
	contactFieldUUID     protowire.Number = 2
	contactFieldName     protowire.Number = 3
	contactFieldAvatar   protowire.Number = 4
	contactFieldVerified protowire.Number = 5
	contactFieldBlocked  protowire.Number = 6
	contactFieldExpire   protowire.Number = 7

	verifiedFieldDestUUID    protowire.Number = 1
	verifiedFieldIdentityKey protowire.Number = 2
	verifiedFieldState       protowire.Number = 3

	attachmentFieldContentType protowire.Number = 1
	attachmentFieldLength      protowire.Number = 2
)

func consumeString(b []byte) (string, []byte, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", nil, protowire.ParseError(n)
	}
	return v, b[n:], nil
}

func consumeBytes(b []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, nil, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, b[n:], nil
}

func consumeVarint(b []byte) (uint64, []byte, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, nil, protowire.ParseError(n)
	}
	return v, b[n:], nil
}

// skipField discards one field value of the given type, including fields
// this decoder does not know about.
func skipField(num protowire.Number, typ protowire.Type, b []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	return b[n:], nil
}

func decodeAttachment(b []byte) (*Attachment, error) {
	a := &Attachment{}
	var err error
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("record: attachment tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == attachmentFieldContentType && typ == protowire.BytesType:
			a.ContentType, b, err = consumeString(b)
		case num == attachmentFieldLength && typ == protowire.VarintType:
			var v uint64
			v, b, err = consumeVarint(b)
			a.Length = uint32(v)
		default:
			b, err = skipField(num, typ, b)
		}
		if err != nil {
			return nil, fmt.Errorf("record: attachment field %d: %w", num, err)
		}
	}
	return a, nil
}
