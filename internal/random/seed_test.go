package random

import "testing"

func TestNewSeedProducesVariedValues(t *testing.T) {
	seen := make(map[int64]bool)
	for range 16 {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied seeds, got %d distinct values", len(seen))
	}
}
