package spawn

import (
	"errors"
	"math/rand"

	"letterfall/internal/board"
	"letterfall/internal/letters"
)

// ErrEmptyPool is returned when a selector is built without drawable
// bigrams: an empty pool, or one whose weights sum to nothing.
var ErrEmptyPool = errors.New("spawn: empty bigram pool")

// Breakdown holds the raw value of each scoring term before the
// combination weights are applied. Overrep and Recency are penalties
// and enter the combined score negatively.
type Breakdown struct {
	Distribution float64
	Bigram       float64
	Vowel        float64
	Overrep      float64
	Recency      float64
}

// Candidate is one scored pair from a selection round.
type Candidate struct {
	Pair      letters.Pair
	Score     float64
	Breakdown Breakdown
}

// Selector is the adaptive pair strategy: each call draws candidate
// bigrams from the pool and picks the one that best nudges the board
// toward the target letter distribution and vowel ratio while staying
// fresh and safe.
type Selector struct {
	tuning Tuning
	pool   []letters.Bigram
	weight map[letters.Pair]int
	memory *Memory
	rnd    *rand.Rand

	last []Candidate
}

// NewSelector builds a selector over the given bigram pool. The pool
// must carry drawable weight and the tuning must be valid; both are
// rejected here so SelectPair can never fail mid-game.
func NewSelector(pool []letters.Bigram, tuning Tuning, rnd *rand.Rand) (*Selector, error) {
	drawable := 0
	for _, b := range pool {
		if b.Weight > 0 {
			drawable += b.Weight
		}
	}
	if drawable == 0 {
		return nil, ErrEmptyPool
	}
	if err := tuning.validate(); err != nil {
		return nil, err
	}
	s := &Selector{
		tuning: tuning,
		pool:   make([]letters.Bigram, len(pool)),
		weight: make(map[letters.Pair]int, len(pool)),
		memory: newMemory(tuning.RecencySize),
		rnd:    rnd,
	}
	copy(s.pool, pool)
	for _, b := range pool {
		s.weight[b.Pair] = b.Weight
	}
	return s, nil
}

// SelectPair draws candidates, scores them and returns the winner,
// recording it in the recency memory. Ties go to the earlier-drawn
// candidate. Deterministic for a given random source and census.
func (s *Selector) SelectPair(h board.Histogram) letters.Pair {
	cands := s.draw()
	best := 0
	for i := range cands {
		b := s.score(cands[i].Pair, h)
		cands[i].Breakdown = b
		cands[i].Score = s.tuning.DistributionWeight*b.Distribution +
			s.tuning.BigramWeight*b.Bigram +
			s.tuning.VowelWeight*b.Vowel -
			s.tuning.OverrepWeight*b.Overrep -
			s.tuning.RecencyWeight*b.Recency
		if cands[i].Score > cands[best].Score {
			best = i
		}
	}
	winner := cands[best].Pair
	s.memory.Push(winner)
	s.last = cands
	return winner
}

// Reset clears the recency memory and the last candidate set.
func (s *Selector) Reset() {
	s.memory.Reset()
	s.last = nil
}

// Recent returns the remembered pairs, newest first.
func (s *Selector) Recent() []letters.Pair {
	return s.memory.Pairs()
}

// LastCandidates returns the scored candidates of the most recent
// selection, in draw order.
func (s *Selector) LastCandidates() []Candidate {
	out := make([]Candidate, len(s.last))
	copy(out, s.last)
	return out
}

// draw samples up to Candidates distinct pool entries, weighted by
// table weight, without replacement. A drawn entry's weight is zeroed
// and removed from the running total so it cannot repeat.
func (s *Selector) draw() []Candidate {
	n := s.tuning.Candidates
	if n > len(s.pool) {
		n = len(s.pool)
	}
	weights := make([]float64, len(s.pool))
	total := 0.0
	for i, b := range s.pool {
		weights[i] = float64(b.Weight)
		total += weights[i]
	}
	out := make([]Candidate, 0, n)
	for len(out) < n && total > 0 {
		r := s.rnd.Float64() * total
		acc := 0.0
		idx := -1
		for j, w := range weights {
			if w == 0 {
				continue
			}
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		if idx < 0 {
			// Float accumulation can land just past the last bucket.
			for j := len(weights) - 1; j >= 0; j-- {
				if weights[j] > 0 {
					idx = j
					break
				}
			}
		}
		if idx < 0 {
			break
		}
		out = append(out, Candidate{Pair: s.pool[idx].Pair})
		total -= weights[idx]
		weights[idx] = 0
	}
	return out
}

// score computes the raw terms for one pair against the census.
func (s *Selector) score(p letters.Pair, h board.Histogram) Breakdown {
	t := s.tuning
	var b Breakdown

	// Distribution gain: how much closer the board distance gets when
	// both letters land. An empty board has no distance to improve, so
	// a fixed mild gain keeps the term from swamping the others.
	if h.Total() == 0 {
		b.Distribution = t.EmptyBoardGain
	} else {
		b.Distribution = h.Distance() - h.With(p[0], p[1]).Distance()
	}

	// Bigram goodness: table weight plus a bump per continuation
	// letter already waiting on the board.
	g := float64(s.weight[p])
	for _, c := range letters.Continuations(p) {
		if h.Count(c) > 0 {
			g += t.ContinuationBonus
		}
	}
	b.Bigram = g

	// Vowel balance: push back only outside the dead band.
	ratio := h.VowelRatio()
	switch {
	case ratio < t.TargetVowelRatio-t.VowelBand:
		b.Vowel = t.VowelUnitBonus * (letters.VowelUnits(p[0]) + letters.VowelUnits(p[1]))
	case ratio > t.TargetVowelRatio+t.VowelBand:
		b.Vowel = t.VowelUnitBonus * (letters.ConsonantUnits(p[0]) + letters.ConsonantUnits(p[1]))
	}

	// Overrepresentation and safety penalties.
	var pen float64
	for _, l := range []letters.Letter{p[0], p[1]} {
		if excess := h.Percent(l) - letters.TargetPercent(l); excess > 0 {
			pen += t.OverrepPerPoint * excess
		}
		if letters.IsRare(l) && h.Percent(l) >= letters.TargetPercent(l) {
			pen += t.RarePenalty
		}
	}
	if (p[0] == 'Q' && p[1] != 'U') || (p[1] == 'Q' && p[0] != 'U') {
		pen += t.QWithoutUPenalty
	}
	if p[0] == 'Q' && p[1] == 'U' {
		pen -= t.QUBonus
	}
	if p.Double() && !letters.CommonDouble(p[0]) {
		pen += t.OddDoublePenalty
	}
	b.Overrep = pen

	b.Recency = s.memory.Penalty(p, t.RecencyBase, t.RecencyDecay, t.RecencyFloor)
	return b
}
