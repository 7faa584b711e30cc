// Package factory implements the generic keyed component registry at the
// heart of DecisionKit. Each pluggable category (model, sender, trace-logger,
// data-transport) instantiates Factory with its own product and extra-argument
// types, so creators keep full type safety without casts.
//
// Registration is expected to happen during the single-threaded startup
// phase (see internal/components); Create may then be called concurrently
// from any number of goroutines.
package factory
