package protocol

import "errors"

var (
	ErrTruncated          = errors.New("protocol: truncated data")
	ErrInvalidLength      = errors.New("protocol: invalid length")
	ErrBadLengthPrefix    = errors.New("protocol: malformed length prefix")
	ErrMessageTooLarge    = errors.New("protocol: message too large")
	ErrAttachmentTooLarge = errors.New("protocol: attachment too large")
)
