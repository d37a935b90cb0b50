package export

import (
	"iter"

	"github.com/danmuck/chatexport/internal/identity"
	"github.com/danmuck/chatexport/internal/protocol"
	"github.com/danmuck/chatexport/internal/record"
)

// GroupStream pulls group records out of a container buffer, normalizing
// member identifiers as it goes.
type GroupStream struct {
	s *stream[record.GroupRecord]
}

func NewGroupStream(buf []byte, limits protocol.Limits) *GroupStream {
	return &GroupStream{
		s: newStream(buf, limits, record.DecodeGroup, func(r *record.GroupRecord) *record.Attachment {
			return r.Avatar
		}),
	}
}

// Next returns the next group record, or (nil, nil) once the stream is
// exhausted. A framing fault ends the stream; only identifier
// normalization failures surface as errors.
func (g *GroupStream) Next() (*record.GroupRecord, error) {
	rec := g.s.decodeNext()
	if rec == nil {
		return nil, nil
	}
	if rec.Members == nil {
		return rec, nil
	}
	members := make([]record.Member, len(rec.Members))
	for i, m := range rec.Members {
		if m.UUID != "" {
			id, err := identity.Normalize(m.UUID, "group member")
			if err != nil {
				return nil, err
			}
			m.UUID = id
		}
		members[i] = m
	}
	out := *rec
	out.Members = members
	return &out, nil
}

// Records adapts the stream for range-over-func consumption. The sequence
// shares the stream's cursor: it is single-pass and stops at the first
// normalization error.
func (g *GroupStream) Records() iter.Seq2[*record.GroupRecord, error] {
	return func(yield func(*record.GroupRecord, error) bool) {
		for {
			rec, err := g.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if rec == nil {
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
