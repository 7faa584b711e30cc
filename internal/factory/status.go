package factory

import (
	"fmt"
	"strings"
	"sync"
)

// Status collects human-readable failure detail recorded by creators.
// The factory itself never inspects it; callers that care pass a Status
// in and read it back after a failed Create. All methods are nil-safe,
// so creators may record unconditionally.
type Status struct {
	mu     sync.Mutex
	detail []string
}

// Recordf appends a formatted detail line.
func (s *Status) Recordf(format string, args ...any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = append(s.detail, fmt.Sprintf(format, args...))
}

// Detail returns the recorded lines joined by "; ", or "" when nothing
// was recorded.
func (s *Status) Detail() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.detail, "; ")
}
