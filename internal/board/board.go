// Package board defines the live play-field data: letter discs and the
// derived statistics (histogram, vowel ratio, distribution distance)
// the spawner steers by. Statistics are recomputed from the disc list
// on demand; nothing here caches.
package board

import (
	"letterfall/internal/geom"
	"letterfall/internal/letters"
)

// DiscID identifies a disc for the lifetime of a session.
type DiscID int64

// Disc is a letter circle living in the arena. Pos and Vel mirror the
// physics body once per frame; Radius never changes after creation.
type Disc struct {
	ID     DiscID
	Letter letters.Letter
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
}

// New builds a disc for a letter at a position, radius derived from
// the letter's target frequency.
func New(id DiscID, l letters.Letter, pos geom.Vec2) *Disc {
	return &Disc{
		ID:     id,
		Letter: l,
		Pos:    pos,
		Radius: letters.Radius(l),
	}
}

// Histogram counts discs per tracked letter. Every letter has a
// bucket, zero when absent.
type Histogram [letters.Count]int

// Census tallies the live discs into a fresh histogram.
func Census(discs []*Disc) Histogram {
	var h Histogram
	for _, d := range discs {
		if i := letters.Index(d.Letter); i >= 0 {
			h[i]++
		}
	}
	return h
}

// Count returns the bucket for l.
func (h Histogram) Count(l letters.Letter) int {
	i := letters.Index(l)
	if i < 0 {
		return 0
	}
	return h[i]
}

// Total returns the number of counted discs.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Percent returns the board share of l in percent, 0 on an empty
// board.
func (h Histogram) Percent(l letters.Letter) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return float64(h.Count(l)) / float64(total) * 100
}

// With returns a copy of h with the given letters added. The receiver
// is a value, so the original histogram is untouched.
func (h Histogram) With(ls ...letters.Letter) Histogram {
	for _, l := range ls {
		if i := letters.Index(l); i >= 0 {
			h[i]++
		}
	}
	return h
}

// Distance is the sum over all tracked letters of the absolute gap
// between board share and target share, in percentage points. Zero
// means the board matches the target distribution exactly.
func (h Histogram) Distance() float64 {
	total := h.Total()
	var sum float64
	for i, c := range h {
		l := letters.Letter('A' + i)
		pct := 0.0
		if total > 0 {
			pct = float64(c) / float64(total) * 100
		}
		gap := pct - letters.TargetPercent(l)
		if gap < 0 {
			gap = -gap
		}
		sum += gap
	}
	return sum
}

// VowelRatio is the vowel share of the counted discs in [0, 1], with Y
// counting 0.2. An empty board reports 0.
func (h Histogram) VowelRatio() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	var units float64
	for i, c := range h {
		units += float64(c) * letters.VowelUnits(letters.Letter('A'+i))
	}
	return units / float64(total)
}

// VowelRatio is the convenience form over a disc list.
func VowelRatio(discs []*Disc) float64 {
	return Census(discs).VowelRatio()
}
