package model

import "testing"

func TestHistoryIsStagnant(t *testing.T) {
	tests := []struct {
		name     string
		recorded []string
		current  string
		expected bool
	}{
		{name: "too short", recorded: []string{"a", "a"}, current: "a", expected: false},
		{name: "static", recorded: []string{"a", "b", "c"}, current: "c", expected: true},
		{name: "period two", recorded: []string{"a", "b", "c"}, current: "b", expected: true},
		{name: "period three", recorded: []string{"a", "b", "c"}, current: "a", expected: true},
		{name: "fresh", recorded: []string{"a", "b", "c", "d"}, current: "a", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h History
			for _, hash := range tt.recorded {
				h.Record(hash)
			}
			if got := h.IsStagnant(tt.current); got != tt.expected {
				t.Fatalf("IsStagnant(%q) = %v, expected %v", tt.current, got, tt.expected)
			}
		})
	}
}

func TestHistoryKeepsRecentHashes(t *testing.T) {
	var h History
	for _, hash := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		h.Record(hash)
	}
	if len(h.hashes) != historySize {
		t.Fatalf("kept %d hashes, expected %d", len(h.hashes), historySize)
	}
	if h.hashes[0] != "c" {
		t.Fatalf("oldest hash = %q, expected %q", h.hashes[0], "c")
	}

	h.Reset()
	if h.IsStagnant("g") {
		t.Fatal("reset history still reports stagnation")
	}
}
