// Package geom provides the small set of 2D primitives the game logic
// needs. It has no external dependencies so that selection and spawning
// stay pure and testable.
package geom

import "math"

// Vec2 is a 2D point or vector in arena coordinates (y grows downward).
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the distance between p and q.
func Dist(p, q Vec2) float64 {
	return p.Sub(q).Len()
}

// DistSq returns the squared distance between p and q.
func DistSq(p, q Vec2) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// CirclesOverlap reports whether two circles intersect, with clearance
// added to the required gap between their surfaces.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2, clearance float64) bool {
	min := r1 + r2 + clearance
	return DistSq(c1, c2) < min*min
}

// InCircle reports whether p lies inside the circle at c with radius r.
func InCircle(p, c Vec2, r float64) bool {
	return DistSq(p, c) <= r*r
}

// DistPointSegment returns the distance from p to the segment ab.
// A degenerate segment (a == b) is treated as the point a.
func DistPointSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, a.Add(ab.Scale(t)))
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
