package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDistPointSegmentProjectsInside(t *testing.T) {
	// Point above the middle of a horizontal segment.
	d := DistPointSegment(Vec2{5, 3}, Vec2{0, 0}, Vec2{10, 0})
	if !almostEqual(d, 3) {
		t.Fatalf("expected distance 3, got %f", d)
	}
}

func TestDistPointSegmentClampsToEndpoints(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 0}
	if d := DistPointSegment(Vec2{-4, 3}, a, b); !almostEqual(d, 5) {
		t.Errorf("before a: expected 5, got %f", d)
	}
	if d := DistPointSegment(Vec2{14, 3}, a, b); !almostEqual(d, 5) {
		t.Errorf("past b: expected 5, got %f", d)
	}
}

func TestDistPointSegmentDegenerate(t *testing.T) {
	p := Vec2{3, 4}
	if d := DistPointSegment(p, Vec2{}, Vec2{}); !almostEqual(d, 5) {
		t.Fatalf("degenerate segment: expected 5, got %f", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	cases := []struct {
		name      string
		c2        Vec2
		clearance float64
		want      bool
	}{
		{"touching is not overlap", Vec2{20, 0}, 0, false},
		{"closer than radius sum", Vec2{19, 0}, 0, true},
		{"clearance widens the gap", Vec2{21, 0}, 2, true},
		{"well apart", Vec2{40, 0}, 2, false},
	}
	for _, tc := range cases {
		got := CirclesOverlap(Vec2{0, 0}, 10, tc.c2, 10, tc.clearance)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestInCircle(t *testing.T) {
	c := Vec2{10, 10}
	if !InCircle(Vec2{13, 14}, c, 5) {
		t.Error("boundary point should count as inside")
	}
	if InCircle(Vec2{16, 10}, c, 5) {
		t.Error("point outside radius reported inside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp low: got %f", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp high: got %f", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp inside: got %f", got)
	}
}
