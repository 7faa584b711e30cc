package factory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/decisionkit-labs/decisionkit/internal/config"
	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

// ErrKeyNotFound is returned by Create when no creator is registered for
// the requested key.
var ErrKeyNotFound = errors.New("factory: key not found")

// ErrCreationFailed is the sentinel creators wrap when the underlying
// constructor fails. None of the built-in creators fail today; the path
// exists so platform-supplied creators report errors uniformly.
var ErrCreationFailed = errors.New("factory: creation failed")

// NoArgs is the extra-argument type for categories whose creators need
// nothing beyond the uniform parameters.
type NoArgs struct{}

// Creator constructs one product instance. cfg is a read-only configuration
// lookup, args carries category-specific extras, tr is the trace handle
// forwarded unchanged from Create, and st may be populated with diagnostic
// detail on failure. Ownership of the returned product transfers to the
// caller.
type Creator[T any, A any] func(cfg *config.View, args A, tr trace.Tracer, st *Status) (T, error)

// Factory maps string keys to creators for one component category.
// The zero value is not usable; call New.
type Factory[T any, A any] struct {
	mu       sync.RWMutex
	creators map[string]Creator[T, A]
}

// New returns an empty factory.
func New[T any, A any]() *Factory[T, A] {
	return &Factory[T, A]{creators: make(map[string]Creator[T, A])}
}

// Register stores creator under key, replacing any prior creator for that
// key. Last registration wins; Register never fails.
func (f *Factory[T, A]) Register(key string, creator Creator[T, A]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[key] = creator
}

// Create looks up key and invokes its creator, propagating the creator's
// product and error verbatim. When key is unknown it returns the zero
// product and an error wrapping ErrKeyNotFound.
func (f *Factory[T, A]) Create(key string, cfg *config.View, args A, tr trace.Tracer, st *Status) (T, error) {
	f.mu.RLock()
	creator, ok := f.creators[key]
	f.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return creator(cfg, args, tr, st)
}

// IsRegistered reports whether a creator exists for key.
func (f *Factory[T, A]) IsRegistered(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[key]
	return ok
}

// Keys returns the registered keys in lexicographic order.
func (f *Factory[T, A]) Keys() []string {
	f.mu.RLock()
	keys := make([]string, 0, len(f.creators))
	for k := range f.creators {
		keys = append(keys, k)
	}
	f.mu.RUnlock()

	sort.Strings(keys)
	return keys
}
