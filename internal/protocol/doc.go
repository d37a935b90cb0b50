// Package protocol owns the container's framing primitives.
//
// Ownership boundary:
// - cursor over a caller-owned byte buffer
// - varint length-delimited message framing
// - decode limits
package protocol
