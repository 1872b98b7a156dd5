package spawn

import "letterfall/internal/letters"

// Memory remembers recently spawned pairs, newest first, up to a fixed
// capacity. It exists to keep the selector from looping on the same
// high-scoring bigram.
type Memory struct {
	capacity int
	pairs    []letters.Pair
}

// newMemory returns an empty memory. Capacity 0 disables remembering.
func newMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

// Push records p as the most recent spawn, evicting the oldest entry
// beyond capacity.
func (m *Memory) Push(p letters.Pair) {
	if m.capacity == 0 {
		return
	}
	m.pairs = append([]letters.Pair{p}, m.pairs...)
	if len(m.pairs) > m.capacity {
		m.pairs = m.pairs[:m.capacity]
	}
}

// Penalty sums the recency cost of every occurrence of p: an
// occurrence in slot i (0 = newest) costs max(floor, base - decay*i).
func (m *Memory) Penalty(p letters.Pair, base, decay, floor float64) float64 {
	var total float64
	for i, q := range m.pairs {
		if q != p {
			continue
		}
		cost := base - decay*float64(i)
		if cost < floor {
			cost = floor
		}
		total += cost
	}
	return total
}

// Len returns the number of remembered pairs.
func (m *Memory) Len() int {
	return len(m.pairs)
}

// Pairs returns a copy of the remembered pairs, newest first.
func (m *Memory) Pairs() []letters.Pair {
	out := make([]letters.Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Reset forgets everything.
func (m *Memory) Reset() {
	m.pairs = m.pairs[:0]
}
