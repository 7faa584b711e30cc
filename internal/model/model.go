// Package model defines the model-runtime product category. The registry
// ships one built-in runtime (the "VW" key); real deployments register
// heavier runtimes through the platform hook.
package model

// Model ranks candidate actions for a decision event. Implementations must
// be safe for concurrent use once constructed.
type Model interface {
	// Rank returns a permutation of [0, actionCount) ordered from most to
	// least preferred for the given event.
	Rank(eventID string, actionCount int) ([]int, error)

	// Update replaces the runtime's model data with a freshly fetched blob.
	Update(data []byte) error
}
