// Package trace defines the trace-logger product category: a leveled,
// low-ceremony sink for diagnostic messages. Every creator in the component
// registry receives a Tracer so construction-time diagnostics flow to
// whatever backend the deployment selected.
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level represents trace severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tracer is the trace-logger product interface. Implementations must be
// safe for concurrent use.
type Tracer interface {
	Log(level Level, msg string)
}

// Noop discards every message. It is the product of the NULL_TRACE_LOGGER
// key; returning a Noop value instead of a nil Tracer keeps callers free
// of nil checks.
type Noop struct{}

// Log implements Tracer.
func (Noop) Log(Level, string) {}

// Console writes one line per message to a writer.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console tracer writing to w. A nil w means stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Log implements Tracer.
func (c *Console) Log(level Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[%s] %s\n", level, msg)
}
