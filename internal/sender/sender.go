// Package sender defines the event-sender product category and the built-in
// file-backed sender. Senders carry observation and interaction events from
// the decision loop to durable storage or a collection endpoint.
package sender

// Sender delivers opaque event payloads. Implementations must be safe for
// concurrent use. Close flushes and releases any underlying resources;
// Send after Close is an error.
type Sender interface {
	Send(payload []byte) error
	Close() error
}

// ErrorFunc is the pass-through error callback supplied when a sender is
// created. Senders invoke it for delivery failures in addition to returning
// the error, so callers with fire-and-forget pipelines still observe faults.
type ErrorFunc func(error)
