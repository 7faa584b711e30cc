package model

import (
	"testing"

	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

func TestVWRankIsPermutation(t *testing.T) {
	m := NewVW(trace.Noop{})

	ranking, err := m.Rank("event-abc", 5)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(ranking) != 5 {
		t.Fatalf("Rank returned %d actions, want 5", len(ranking))
	}
	seen := make(map[int]bool)
	for _, a := range ranking {
		if a < 0 || a >= 5 || seen[a] {
			t.Fatalf("Rank returned invalid permutation %v", ranking)
		}
		seen[a] = true
	}
}

func TestVWRankDeterministicPerEvent(t *testing.T) {
	m := NewVW(nil)

	first, err := m.Rank("event-1", 8)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	second, err := m.Rank("event-1", 8)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rankings differ for same event: %v vs %v", first, second)
		}
	}
}

func TestVWRankRejectsBadCount(t *testing.T) {
	m := NewVW(trace.Noop{})
	if _, err := m.Rank("event", 0); err == nil {
		t.Fatal("Rank(0 actions) succeeded, want error")
	}
}

func TestVWUpdate(t *testing.T) {
	m := NewVW(trace.Noop{})

	if err := m.Update(nil); err == nil {
		t.Fatal("Update(empty) succeeded, want error")
	}
	if err := m.Update([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if m.DataSize() != 3 {
		t.Fatalf("DataSize = %d, want 3", m.DataSize())
	}
}
