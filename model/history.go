package model

const historySize = 5

// History keeps the hashes of the most recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds a generation hash, keeping only the last few
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether hash repeats one of the last three generations,
// which covers a static world and cycles of period two or three
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == hash {
			return true
		}
	}
	return false
}
