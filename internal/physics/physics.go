// Package physics isolates the rigid-body engine behind a narrow
// interface. The game owns letters and rules; gravity, restitution and
// stacking belong to the engine on the other side of this boundary.
package physics

import "letterfall/internal/geom"

// Handle identifies one body inside an Engine. Handles are only
// meaningful to the engine that issued them.
type Handle int64

// Engine is the contract the session drives each frame. Implementations
// are not safe for concurrent use; the game loop owns them.
type Engine interface {
	// CreateBody builds a dynamic circle body at pos. The body does
	// not participate in simulation until AddToWorld.
	CreateBody(pos geom.Vec2, radius float64) Handle

	// AddToWorld inserts the body into the simulation.
	AddToWorld(h Handle)

	// RemoveFromWorld takes the body out permanently; the handle is
	// dead afterwards.
	RemoveFromWorld(h Handle)

	// SetVelocity overrides the body's velocity.
	SetVelocity(h Handle, vel geom.Vec2)

	// Step advances the simulation by dt seconds.
	Step(dt float64)

	// Position returns the body's center, or the zero vector for a
	// dead handle.
	Position(h Handle) geom.Vec2

	// Velocity returns the body's velocity, or the zero vector for a
	// dead handle.
	Velocity(h Handle) geom.Vec2
}
