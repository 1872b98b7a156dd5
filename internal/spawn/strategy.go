// Package spawn decides which letters enter the arena and where. The
// canonical Selector scores candidate bigrams against the live board
// census; the older Bag strategy survives as a feedback-free fallback.
// The Placer turns a chosen pair into non-overlapping positions above
// the arena.
package spawn

import (
	"letterfall/internal/board"
	"letterfall/internal/letters"
)

// Strategy picks the next letter pair from the current board census.
// Implementations own any internal state (randomness, recency) and are
// not safe for concurrent use.
type Strategy interface {
	// SelectPair returns the pair to spawn next. It never fails; an
	// unusable configuration is rejected at construction time instead.
	SelectPair(h board.Histogram) letters.Pair

	// Reset clears accumulated state for a fresh game.
	Reset()
}
