package physics

import (
	"testing"

	"letterfall/internal/geom"
)

func TestBodyFallsUnderGravity(t *testing.T) {
	eng := NewChipmunk(480, 640)
	h := eng.CreateBody(geom.Vec2{X: 240, Y: -40}, 20)
	eng.AddToWorld(h)
	start := eng.Position(h)
	for i := 0; i < 30; i++ {
		eng.Step(1.0 / 60)
	}
	end := eng.Position(h)
	if end.Y <= start.Y {
		t.Fatalf("disc did not fall: y %f -> %f", start.Y, end.Y)
	}
	if v := eng.Velocity(h); v.Y <= 0 {
		t.Fatalf("falling disc should have downward velocity, got %f", v.Y)
	}
}

func TestBodyOutsideWorldDoesNotMove(t *testing.T) {
	eng := NewChipmunk(480, 640)
	h := eng.CreateBody(geom.Vec2{X: 100, Y: 100}, 20)
	// Never added to the world.
	eng.Step(0.5)
	if p := eng.Position(h); p.Y != 100 {
		t.Fatalf("unadded body moved to y=%f", p.Y)
	}
}

func TestRemoveKillsHandle(t *testing.T) {
	eng := NewChipmunk(480, 640)
	h := eng.CreateBody(geom.Vec2{X: 100, Y: 100}, 20)
	eng.AddToWorld(h)
	eng.RemoveFromWorld(h)
	if p := eng.Position(h); (p != geom.Vec2{}) {
		t.Fatalf("dead handle should read zero, got %v", p)
	}
	// Double removal and stepping after removal must be harmless.
	eng.RemoveFromWorld(h)
	eng.Step(1.0 / 60)
}

func TestSetVelocity(t *testing.T) {
	eng := NewChipmunk(480, 640)
	h := eng.CreateBody(geom.Vec2{X: 100, Y: 100}, 20)
	eng.AddToWorld(h)
	eng.SetVelocity(h, geom.Vec2{X: -50, Y: 10})
	if v := eng.Velocity(h); v.X != -50 || v.Y != 10 {
		t.Fatalf("velocity readback %v", v)
	}
}

func TestFloorStopsDiscs(t *testing.T) {
	eng := NewChipmunk(480, 640)
	h := eng.CreateBody(geom.Vec2{X: 240, Y: 0}, 20)
	eng.AddToWorld(h)
	for i := 0; i < 600; i++ {
		eng.Step(1.0 / 60)
	}
	p := eng.Position(h)
	if p.Y > 640 {
		t.Fatalf("disc fell through the floor to y=%f", p.Y)
	}
	if p.X < -1 || p.X > 481 {
		t.Fatalf("disc escaped the side walls to x=%f", p.X)
	}
}
