package spawn

import (
	"math/rand"

	"letterfall/internal/board"
	"letterfall/internal/letters"
)

// Bag is the original letter generator: two independent draws from a
// bag weighted by target frequency, blind to the board. Superseded by
// Selector, kept as an explicit fallback strategy for comparison runs.
type Bag struct {
	rnd *rand.Rand
}

// NewBag returns the fallback strategy.
func NewBag(rnd *rand.Rand) *Bag {
	return &Bag{rnd: rnd}
}

// SelectPair draws two letters by target frequency. The census is
// ignored.
func (b *Bag) SelectPair(board.Histogram) letters.Pair {
	return letters.Pair{b.drawLetter(), b.drawLetter()}
}

// Reset is a no-op; the bag carries no state between games.
func (b *Bag) Reset() {}

func (b *Bag) drawLetter() letters.Letter {
	all := letters.All()
	total := 0.0
	for _, l := range all {
		total += letters.TargetPercent(l)
	}
	r := b.rnd.Float64() * total
	acc := 0.0
	for _, l := range all {
		acc += letters.TargetPercent(l)
		if r <= acc {
			return l
		}
	}
	return all[len(all)-1]
}
