// Package transport defines the data-transport product category: retrieval
// of model data for the model runtime. No built-in transport is registered
// by default; deployments supply theirs through the platform registration
// hook in internal/components.
package transport

import "context"

// Transport fetches the current model data blob.
type Transport interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context) ([]byte, error)

// Fetch implements Transport.
func (f Func) Fetch(ctx context.Context) ([]byte, error) { return f(ctx) }
