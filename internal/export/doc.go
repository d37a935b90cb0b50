// Package export yields normalized records from a chat-export container.
//
// Ownership boundary:
// - decode-attach cycle over one cursor per stream
// - framing fault containment (truncate, log once, go terminal)
// - identifier normalization per record kind
package export
