package export

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/chatexport/internal/protocol"
	"github.com/danmuck/chatexport/internal/record"
)

type state int

const (
	stateReady state = iota
	stateEmitting
	stateExhausted
)

// stream drives the decode-attach cycle shared by both record kinds. It is
// forward-only and single-pass; once exhausted it stays exhausted. One
// stream owns one cursor, so a single instance must not be pulled from
// more than one goroutine.
type stream[T any] struct {
	cur        *protocol.Cursor
	limits     protocol.Limits
	decode     func([]byte) (*T, error)
	attachment func(*T) *record.Attachment
	state      state
	index      int
	log        zerolog.Logger
}

func newStream[T any](
	buf []byte,
	limits protocol.Limits,
	decode func([]byte) (*T, error),
	attachment func(*T) *record.Attachment,
) *stream[T] {
	return &stream[T]{
		cur:        protocol.NewCursor(buf),
		limits:     limits,
		decode:     decode,
		attachment: attachment,
		log:        log.Logger,
	}
}

// decodeNext produces the next intermediate record, or nil at end of
// stream. Any framing fault truncates the stream: it is logged once and
// every later call returns nil with no side effects.
func (s *stream[T]) decodeNext() *T {
	if s.state == stateExhausted {
		return nil
	}
	if s.cur.AtEnd() {
		s.state = stateExhausted
		return nil
	}
	start := s.cur.Pos()
	body, err := protocol.ReadDelimited(s.cur, s.limits)
	if err != nil {
		s.fault(start, err)
		return nil
	}
	rec, err := s.decode(body)
	if err != nil {
		s.fault(start, err)
		return nil
	}
	if att := s.attachment(rec); att != nil {
		if uint64(att.Length) > s.limits.MaxAttachmentBytes {
			s.fault(start, protocol.ErrAttachmentTooLarge)
			return nil
		}
		data, err := s.cur.Take(int(att.Length))
		if err != nil {
			s.fault(start, err)
			return nil
		}
		att.Data = data
	}
	s.state = stateEmitting
	s.index++
	return rec
}

func (s *stream[T]) fault(offset int, err error) {
	s.state = stateExhausted
	s.log.Error().
		Err(err).
		Int("record", s.index).
		Int("offset", offset).
		Msg("export: decode fault, stream truncated")
}
