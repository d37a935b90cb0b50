package record

// Attachment describes an out-of-band binary payload declared by a record.
// Length and ContentType come off the wire; Data is filled in by the export
// layer from the bytes that follow the structured message in the stream.
type Attachment struct {
	ContentType string
	Length      uint32
	Data        []byte
}

// Member is one entry in a group's member list. UUID is optional on the
// wire; empty string means the member carries no identifier.
type Member struct {
	UUID string
	Name string
}

// GroupRecord is one decoded group entry of the export container.
type GroupRecord struct {
	Name               string
	Members            []Member
	Avatar             *Attachment
	Active             bool
	ExpireTimerSeconds uint32
}

// Verified is the optional identity-verification sub-record of a contact.
type Verified struct {
	DestinationUUID string
	IdentityKey     []byte
	State           uint32
}

// ContactRecord is one decoded contact entry of the export container.
type ContactRecord struct {
	Number             string
	UUID               string
	Name               string
	Avatar             *Attachment
	Verified           *Verified
	Blocked            bool
	ExpireTimerSeconds uint32
}
