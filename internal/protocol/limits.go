package protocol

// Limits constrains decode memory use.
type Limits struct {
	MaxMessageBytes    uint64
	MaxAttachmentBytes uint64
}

func DefaultLimits() Limits {
	return Limits{
		MaxMessageBytes:    1 * 1024 * 1024,
		MaxAttachmentBytes: 64 * 1024 * 1024,
	}
}
