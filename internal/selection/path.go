// Package selection implements the drag path: the ordered chain of
// discs the player sweeps over to spell a word. Links are validated
// when they are made and never revisited as discs keep moving, which
// matches how the chain is drawn on screen.
package selection

import (
	"letterfall/internal/board"
	"letterfall/internal/geom"
	"letterfall/internal/letters"
)

// DefaultMaxLink is the longest allowed center distance between two
// consecutive path discs, roughly two large discs with a finger of
// space between.
const DefaultMaxLink = 120.0

// Path is the in-progress selection. Not safe for concurrent use; the
// game loop owns it.
type Path struct {
	maxLink float64
	discs   []*board.Disc
}

// NewPath returns an empty path with the given link distance limit;
// limits <= 0 fall back to DefaultMaxLink.
func NewPath(maxLink float64) *Path {
	if maxLink <= 0 {
		maxLink = DefaultMaxLink
	}
	return &Path{maxLink: maxLink}
}

// Begin starts a fresh path if pt lies inside a disc, discarding any
// previous chain. It reports whether a path is now active.
func (p *Path) Begin(pt geom.Vec2, discs []*board.Disc) bool {
	p.discs = p.discs[:0]
	if d := discAt(pt, discs); d != nil {
		p.discs = append(p.discs, d)
		return true
	}
	return false
}

// Extend grows, truncates or ignores the path for a pointer move:
// re-entering an earlier disc backtracks to it, a new disc is linked
// only when it is close enough to the tail and the connecting segment
// stays clear of every other disc. It reports whether the path
// changed.
func (p *Path) Extend(pt geom.Vec2, discs []*board.Disc) bool {
	if len(p.discs) == 0 {
		return false
	}
	d := discAt(pt, discs)
	if d == nil {
		return false
	}
	tail := p.discs[len(p.discs)-1]
	if d == tail {
		return false
	}
	for i, seen := range p.discs[:len(p.discs)-1] {
		if seen == d {
			p.discs = p.discs[:i+1]
			return true
		}
	}
	if geom.Dist(tail.Pos, d.Pos) > p.maxLink {
		return false
	}
	if blocked(tail, d, discs) {
		return false
	}
	p.discs = append(p.discs, d)
	return true
}

// End returns the spelled word and its discs and clears the path. An
// inactive path yields an empty word.
func (p *Path) End() (string, []*board.Disc) {
	word := p.Word()
	discs := make([]*board.Disc, len(p.discs))
	copy(discs, p.discs)
	p.discs = p.discs[:0]
	return word, discs
}

// Clear drops the path without producing a word, for game over or
// restart mid-drag.
func (p *Path) Clear() {
	p.discs = p.discs[:0]
}

// Active reports whether a drag is in progress.
func (p *Path) Active() bool {
	return len(p.discs) > 0
}

// Len returns the number of linked discs.
func (p *Path) Len() int {
	return len(p.discs)
}

// Word returns the letters linked so far.
func (p *Path) Word() string {
	buf := make([]byte, len(p.discs))
	for i, d := range p.discs {
		buf[i] = byte(d.Letter)
	}
	return string(buf)
}

// Discs returns the chain in link order for rendering. The slice is
// the path's own backing array; callers must not keep it across frame
// boundaries.
func (p *Path) Discs() []*board.Disc {
	return p.discs
}

// Contains reports whether the disc is part of the current chain.
func (p *Path) Contains(id board.DiscID) bool {
	for _, d := range p.discs {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Letters returns the chain as tracked letters, for scoring.
func (p *Path) Letters() []letters.Letter {
	out := make([]letters.Letter, len(p.discs))
	for i, d := range p.discs {
		out[i] = d.Letter
	}
	return out
}

// discAt returns the first disc containing pt, or nil.
func discAt(pt geom.Vec2, discs []*board.Disc) *board.Disc {
	for _, d := range discs {
		if geom.InCircle(pt, d.Pos, d.Radius) {
			return d
		}
	}
	return nil
}

// blocked reports whether any disc other than the two endpoints
// intrudes on the segment between them. A tangent touch counts as
// blocking; the link must clear the disc outright.
func blocked(from, to *board.Disc, discs []*board.Disc) bool {
	for _, d := range discs {
		if d == from || d == to {
			continue
		}
		if geom.DistPointSegment(d.Pos, from.Pos, to.Pos) <= d.Radius {
			return true
		}
	}
	return false
}
