package spawn

import (
	"math/rand"

	"letterfall/internal/board"
	"letterfall/internal/geom"
	"letterfall/internal/letters"
)

// Layout fixes the placement geometry for one arena. Y grows downward
// and 0 is the visible top edge, so spawn positions are negative.
type Layout struct {
	// ArenaWidth is the inner width between the side walls.
	ArenaWidth float64

	// Margin keeps spawn centers away from the walls.
	Margin float64

	// PairSpacing is the horizontal gap between the two pair centers.
	PairSpacing float64

	// BandOffset is how far above the top edge discs materialize.
	BandOffset float64

	// JitterX and JitterY randomize each placement attempt.
	JitterX float64
	JitterY float64

	// Clearance is the extra surface gap required against every other
	// disc for a position to count as free.
	Clearance float64

	// Attempts bounds the retries per letter before giving up on it.
	Attempts int
}

// DefaultLayout returns the placement geometry for an arena width.
func DefaultLayout(arenaWidth float64) Layout {
	return Layout{
		ArenaWidth:  arenaWidth,
		Margin:      40,
		PairSpacing: 60,
		BandOffset:  40,
		JitterX:     8,
		JitterY:     10,
		Clearance:   2,
		Attempts:    10,
	}
}

// Placement is a solved spawn position for one letter.
type Placement struct {
	Letter letters.Letter
	Pos    geom.Vec2
	Radius float64
}

// Placer finds free spots in the spawn band for chosen pairs.
type Placer struct {
	layout Layout
	rnd    *rand.Rand
}

// NewPlacer builds a placer for the given layout.
func NewPlacer(layout Layout, rnd *rand.Rand) *Placer {
	return &Placer{layout: layout, rnd: rnd}
}

// Place positions the pair around a random center above the arena.
// Each letter gets up to Attempts jittered tries; a letter whose tries
// all collide is dropped, so the result holds 0, 1 or 2 placements.
// Crowding is temporary: committed words drain the board and the next
// cycle tries again.
func (p *Placer) Place(pair letters.Pair, discs []*board.Disc) []Placement {
	l := p.layout
	span := l.ArenaWidth - 2*l.Margin
	if span < 0 {
		span = 0
	}
	centerX := l.Margin + p.rnd.Float64()*span
	offsets := [2]float64{-l.PairSpacing / 2, l.PairSpacing / 2}

	placed := make([]Placement, 0, 2)
	for i, letter := range pair {
		radius := letters.Radius(letter)
		baseX := geom.Clamp(centerX+offsets[i], l.Margin, l.ArenaWidth-l.Margin)
		pos, ok := p.try(baseX, radius, discs, placed)
		if !ok {
			continue
		}
		placed = append(placed, Placement{Letter: letter, Pos: pos, Radius: radius})
	}
	return placed
}

// try jitters around the base position until a free spot appears or
// the attempt budget runs out.
func (p *Placer) try(baseX, radius float64, discs []*board.Disc, placed []Placement) (geom.Vec2, bool) {
	l := p.layout
	for attempt := 0; attempt < l.Attempts; attempt++ {
		pos := geom.Vec2{
			X: geom.Clamp(baseX+(p.rnd.Float64()*2-1)*l.JitterX, l.Margin, l.ArenaWidth-l.Margin),
			Y: -l.BandOffset + (p.rnd.Float64()*2-1)*l.JitterY,
		}
		if p.free(pos, radius, discs, placed) {
			return pos, true
		}
	}
	return geom.Vec2{}, false
}

// free reports whether a circle at pos clears every live disc and
// every placement already made in this call.
func (p *Placer) free(pos geom.Vec2, radius float64, discs []*board.Disc, placed []Placement) bool {
	for _, d := range discs {
		if geom.CirclesOverlap(pos, radius, d.Pos, d.Radius, p.layout.Clearance) {
			return false
		}
	}
	for _, q := range placed {
		if geom.CirclesOverlap(pos, radius, q.Pos, q.Radius, p.layout.Clearance) {
			return false
		}
	}
	return true
}
