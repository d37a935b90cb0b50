package protocol

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/chatexport/internal/testutil/testlog"
)

func TestReadDelimitedRoundTrip(t *testing.T) {
	testlog.Start(t)
	body := []byte("structured message bytes")
	stream := AppendDelimited(nil, body)
	c := NewCursor(stream)
	got, err := ReadDelimited(c, DefaultLimits())
	if err != nil {
		t.Fatalf("read delimited: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("body mismatch: %q", got)
	}
	if !c.AtEnd() {
		t.Fatalf("cursor not at end: pos=%d", c.Pos())
	}
}

func TestReadDelimitedMalformedPrefixIsDeterministic(t *testing.T) {
	// lone continuation byte, varint never terminates
	c := NewCursor([]byte{0x80})
	_, err := ReadDelimited(c, DefaultLimits())
	if !errors.Is(err, ErrBadLengthPrefix) {
		t.Fatalf("expected ErrBadLengthPrefix, got %v", err)
	}
}

func TestReadDelimitedBodyTooLarge(t *testing.T) {
	stream := AppendDelimited(nil, []byte("hello"))
	c := NewCursor(stream)
	limits := Limits{MaxMessageBytes: 4, MaxAttachmentBytes: 4}
	_, err := ReadDelimited(c, limits)
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestReadDelimitedTruncatedBody(t *testing.T) {
	// prefix declares 10 bytes, only 3 present
	stream := append([]byte{10}, 1, 2, 3)
	c := NewCursor(stream)
	_, err := ReadDelimited(c, DefaultLimits())
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
