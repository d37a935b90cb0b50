package protocol

// Cursor tracks a single read position over a caller-owned byte buffer.
// The buffer is borrowed, never copied wholesale; position only moves
// forward. One cursor belongs to exactly one consumer.
type Cursor struct {
	buf []byte
	pos int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.buf)
}

// Slice returns the next n bytes as a view into the backing buffer and
// advances past them. The view is only valid while the buffer lives.
func (c *Cursor) Slice(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	if n > c.Remaining() {
		return nil, ErrTruncated
	}
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// Take copies the next n bytes out of the buffer and advances past them.
func (c *Cursor) Take(n int) ([]byte, error) {
	v, err := c.Slice(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, v)
	return out, nil
}
