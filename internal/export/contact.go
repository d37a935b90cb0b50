package export

import (
	"iter"

	"github.com/danmuck/chatexport/internal/identity"
	"github.com/danmuck/chatexport/internal/protocol"
	"github.com/danmuck/chatexport/internal/record"
)

// ContactStream pulls contact records out of a container buffer,
// normalizing the contact identifier and any verified destination
// identifier.
type ContactStream struct {
	s *stream[record.ContactRecord]
}

func NewContactStream(buf []byte, limits protocol.Limits) *ContactStream {
	return &ContactStream{
		s: newStream(buf, limits, record.DecodeContact, func(r *record.ContactRecord) *record.Attachment {
			return r.Avatar
		}),
	}
}

// Next returns the next contact record, or (nil, nil) once the stream is
// exhausted. Records without a top-level identifier pass through
// untouched. A verified sub-record is only rewritten when it carries a
// destination identifier; every other field of it is preserved.
func (c *ContactStream) Next() (*record.ContactRecord, error) {
	rec := c.s.decodeNext()
	if rec == nil {
		return nil, nil
	}
	if rec.UUID == "" {
		return rec, nil
	}
	id, err := identity.Normalize(rec.UUID, "contact")
	if err != nil {
		return nil, err
	}
	out := *rec
	out.UUID = id
	if v := rec.Verified; v != nil && v.DestinationUUID != "" {
		dst, err := identity.Normalize(v.DestinationUUID, "contact verified destination")
		if err != nil {
			return nil, err
		}
		vv := *v
		vv.DestinationUUID = dst
		out.Verified = &vv
	}
	return &out, nil
}

// Records adapts the stream for range-over-func consumption. Single-pass;
// stops at the first normalization error.
func (c *ContactStream) Records() iter.Seq2[*record.ContactRecord, error] {
	return func(yield func(*record.ContactRecord, error) bool) {
		for {
			rec, err := c.Next()
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
