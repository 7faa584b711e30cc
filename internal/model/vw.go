package model

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

// VW is the built-in model runtime. Until model data arrives it explores:
// each event ID seeds a deterministic shuffle, so ranking is reproducible
// per event without any shared mutable state on the Rank path.
type VW struct {
	tr trace.Tracer

	mu   sync.RWMutex
	data []byte
}

// NewVW returns a VW runtime that reports through tr.
func NewVW(tr trace.Tracer) *VW {
	if tr == nil {
		tr = trace.Noop{}
	}
	return &VW{tr: tr}
}

// Rank implements Model.
func (m *VW) Rank(eventID string, actionCount int) ([]int, error) {
	if actionCount <= 0 {
		return nil, fmt.Errorf("vw: action count must be positive, got %d", actionCount)
	}

	h := fnv.New64a()
	h.Write([]byte(eventID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	ranking := rng.Perm(actionCount)
	m.tr.Log(trace.LevelDebug, fmt.Sprintf("vw ranked %d actions for event %s", actionCount, eventID))
	return ranking, nil
}

// Update implements Model.
func (m *VW) Update(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("vw: refusing empty model data")
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	m.tr.Log(trace.LevelInfo, fmt.Sprintf("vw model data updated (%d bytes)", len(data)))
	return nil
}

// DataSize returns the size of the currently loaded model data.
func (m *VW) DataSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
