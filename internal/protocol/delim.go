package protocol

import "google.golang.org/protobuf/encoding/protowire"

// ReadDelimited reads one varint length prefix from the cursor and returns
// the message body it delimits, advancing the cursor past both. The
// returned slice is a view into the backing buffer.
func ReadDelimited(c *Cursor, limits Limits) ([]byte, error) {
	v, n := protowire.ConsumeVarint(c.buf[c.pos:])
	if n < 0 {
		return nil, ErrBadLengthPrefix
	}
	if v > limits.MaxMessageBytes {
		return nil, ErrMessageTooLarge
	}
	c.pos += n
	return c.Slice(int(v))
}

// AppendDelimited appends a varint length prefix followed by body.
// Test fixtures and tooling use it to assemble container streams.
func AppendDelimited(dst, body []byte) []byte {
	dst = protowire.AppendVarint(dst, uint64(len(body)))
	return append(dst, body...)
}
