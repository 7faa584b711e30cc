package components

import (
	"github.com/decisionkit-labs/decisionkit/internal/factory"
	"github.com/decisionkit-labs/decisionkit/internal/model"
	"github.com/decisionkit-labs/decisionkit/internal/sender"
	"github.com/decisionkit-labs/decisionkit/internal/trace"
	"github.com/decisionkit-labs/decisionkit/internal/transport"
)

// SenderArgs carries the sender category's extra creator argument: an
// optional error callback forwarded unchanged into every sender creator.
type SenderArgs struct {
	OnError sender.ErrorFunc
}

// Set is the registry set: one factory per pluggable category. The four
// factories are independent; they only share a lifecycle.
type Set struct {
	DataTransport *factory.Factory[transport.Transport, factory.NoArgs]
	Model         *factory.Factory[model.Model, factory.NoArgs]
	Sender        *factory.Factory[sender.Sender, SenderArgs]
	TraceLogger   *factory.Factory[trace.Tracer, factory.NoArgs]
}

func newSet() *Set {
	return &Set{
		DataTransport: factory.New[transport.Transport, factory.NoArgs](),
		Model:         factory.New[model.Model, factory.NoArgs](),
		Sender:        factory.New[sender.Sender, SenderArgs](),
		TraceLogger:   factory.New[trace.Tracer, factory.NoArgs](),
	}
}
