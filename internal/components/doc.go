// Package components holds the process-wide registry set for the four
// pluggable categories (data-transport, model, sender, trace-logger) and
// the reference-counted lifecycle that constructs it exactly once.
//
// Any code that needs the registries acquires a Lifetime and releases it
// when done:
//
//	lt := components.Acquire()
//	defer lt.Close()
//	tr, err := lt.Registries().TraceLogger.Create(components.KeyConsoleTraceLogger, cfg, factory.NoArgs{}, trace.Noop{}, nil)
//
// The first Acquire anywhere in the process constructs the set and runs
// default registration (platform hook first, then built-ins); the last
// Close tears it down. Registration beyond the startup phase is not
// supported: creators are registered once and only overwritten, never
// removed.
package components
