package export

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/danmuck/chatexport/internal/protocol"
)

// captureLogs routes the global logger into a buffer for the duration of
// the test. Streams capture the logger at construction, so call this
// before NewGroupStream/NewContactStream.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })
	return &buf
}

func logLines(buf *bytes.Buffer) int {
	return bytes.Count(buf.Bytes(), []byte("\n"))
}

func attachmentBody(contentType string, length uint32) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType) // content type
	b = protowire.AppendString(b, contentType)
	b = protowire.AppendTag(b, 2, protowire.VarintType) // declared length
	b = protowire.AppendVarint(b, uint64(length))
	return b
}

func memberBody(uuid, name string) []byte {
	var b []byte
	if uuid != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, uuid)
	}
	if name != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, name)
	}
	return b
}

func groupBody(name string, members ...[]byte) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, name)
	for _, m := range members {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

func groupWithAvatar(body []byte, contentType string, length uint32) []byte {
	body = protowire.AppendTag(body, 3, protowire.BytesType)
	return protowire.AppendBytes(body, attachmentBody(contentType, length))
}

func contactBody(number, uuid, name string) []byte {
	var b []byte
	if number != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, number)
	}
	if uuid != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, uuid)
	}
	if name != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, name)
	}
	return b
}

func contactWithAvatar(body []byte, contentType string, length uint32) []byte {
	body = protowire.AppendTag(body, 4, protowire.BytesType)
	return protowire.AppendBytes(body, attachmentBody(contentType, length))
}

func verifiedBody(destUUID string, identityKey []byte, state uint32) []byte {
	var b []byte
	if destUUID != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, destUUID)
	}
	if identityKey != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, identityKey)
	}
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(state))
	return b
}

func contactWithVerified(body, verified []byte) []byte {
	body = protowire.AppendTag(body, 5, protowire.BytesType)
	return protowire.AppendBytes(body, verified)
}

// frame appends one delimited message plus its out-of-band attachment
// bytes to the stream under construction.
func frame(stream, body, attachment []byte) []byte {
	stream = protocol.AppendDelimited(stream, body)
	return append(stream, attachment...)
}
