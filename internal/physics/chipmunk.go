package physics

import (
	"github.com/jakecoffman/cp"

	"letterfall/internal/geom"
)

// Simulation constants. Y grows downward, so gravity is positive.
const (
	gravity        = 900.0
	discElasticity = 0.25
	discFriction   = 0.6
	wallElasticity = 0.3
	wallFriction   = 0.8
	wallRadius     = 1.0
	discDensity    = 0.005
	sleepThreshold = 0.5

	// Walls extend this far above the visible top so spawn-band discs
	// cannot escape sideways before entering the arena.
	wallHeadroom = 200.0
)

// Chipmunk is the Engine implementation over the Chipmunk2D port. It
// owns a space with three static walls (left, right, floor) and one
// circle body per live disc.
type Chipmunk struct {
	space  *cp.Space
	next   Handle
	bodies map[Handle]*cpDisc
}

type cpDisc struct {
	body  *cp.Body
	shape *cp.Shape
	added bool
}

// NewChipmunk builds a space sized to the arena interior.
func NewChipmunk(arenaWidth, arenaHeight float64) *Chipmunk {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	space.SleepTimeThreshold = sleepThreshold

	walls := [][2]cp.Vector{
		{{X: 0, Y: -wallHeadroom}, {X: 0, Y: arenaHeight}},
		{{X: arenaWidth, Y: -wallHeadroom}, {X: arenaWidth, Y: arenaHeight}},
		{{X: 0, Y: arenaHeight}, {X: arenaWidth, Y: arenaHeight}},
	}
	for _, w := range walls {
		seg := space.AddShape(cp.NewSegment(space.StaticBody, w[0], w[1], wallRadius))
		seg.SetElasticity(wallElasticity)
		seg.SetFriction(wallFriction)
	}

	return &Chipmunk{
		space:  space,
		next:   1,
		bodies: make(map[Handle]*cpDisc),
	}
}

// CreateBody builds a circle body at pos, not yet simulated.
func (c *Chipmunk) CreateBody(pos geom.Vec2, radius float64) Handle {
	mass := discDensity * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(discElasticity)
	shape.SetFriction(discFriction)

	h := c.next
	c.next++
	c.bodies[h] = &cpDisc{body: body, shape: shape}
	return h
}

// AddToWorld inserts the body and its shape into the space.
func (c *Chipmunk) AddToWorld(h Handle) {
	d, ok := c.bodies[h]
	if !ok || d.added {
		return
	}
	c.space.AddBody(d.body)
	c.space.AddShape(d.shape)
	d.added = true
}

// RemoveFromWorld pulls the body out of the space and forgets the
// handle.
func (c *Chipmunk) RemoveFromWorld(h Handle) {
	d, ok := c.bodies[h]
	if !ok {
		return
	}
	if d.added {
		c.space.RemoveShape(d.shape)
		c.space.RemoveBody(d.body)
	}
	delete(c.bodies, h)
}

// SetVelocity overrides the body velocity.
func (c *Chipmunk) SetVelocity(h Handle, vel geom.Vec2) {
	if d, ok := c.bodies[h]; ok {
		d.body.SetVelocityVector(cp.Vector{X: vel.X, Y: vel.Y})
	}
}

// Step advances the space.
func (c *Chipmunk) Step(dt float64) {
	c.space.Step(dt)
}

// Position returns the body center, zero for dead handles.
func (c *Chipmunk) Position(h Handle) geom.Vec2 {
	d, ok := c.bodies[h]
	if !ok {
		return geom.Vec2{}
	}
	p := d.body.Position()
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Velocity returns the body velocity, zero for dead handles.
func (c *Chipmunk) Velocity(h Handle) geom.Vec2 {
	d, ok := c.bodies[h]
	if !ok {
		return geom.Vec2{}
	}
	v := d.body.Velocity()
	return geom.Vec2{X: v.X, Y: v.Y}
}
