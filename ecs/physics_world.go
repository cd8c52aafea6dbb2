package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/npcnav/nav"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeMover
)

// PhysicsWorld owns the Chipmunk space: merged static boxes for the walls of
// the active level and one circle body per moving entity.
type PhysicsWorld struct {
	space  *cp.Space
	walls  []*cp.Shape
	bodies map[Entity]*cp.Body
	shapes map[Entity]*cp.Shape
	// desired holds the velocity each mover was driven with this tick. It is
	// applied from the body's velocity update so contacts can correct it.
	desired map[Entity]cp.Vector
}

// NewPhysicsWorld creates a gravity-free space where movers collide with
// walls but pass through each other.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	movers := space.NewCollisionHandler(collisionTypeMover, collisionTypeMover)
	movers.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}

	return &PhysicsWorld{
		space:   space,
		bodies:  make(map[Entity]*cp.Body),
		shapes:  make(map[Entity]*cp.Shape),
		desired: make(map[Entity]cp.Vector),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetWalls replaces the static geometry with boxes covering every obstacle of
// g. Adjacent obstacle cells are merged greedily into rectangles. It returns
// the number of boxes created.
func (pw *PhysicsWorld) SetWalls(g *nav.Grid, gs nav.GridSpace) int {
	if pw == nil || pw.space == nil {
		return 0
	}
	for _, shape := range pw.walls {
		pw.space.RemoveShape(shape)
	}
	pw.walls = pw.walls[:0]
	if g == nil || g.Obstacles.Len() == 0 {
		return 0
	}

	processed := make([]bool, g.Width*g.Height)
	solid := func(x, y int) bool {
		idx := y*g.Width + x
		return !processed[idx] && g.Obstacles.Contains(nav.Cell{X: x, Y: y})
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !solid(x, y) {
				continue
			}

			w := 1
			for x+w < g.Width && solid(x+w, y) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < g.Height {
				for xi := x; xi < x+w; xi++ {
					if !solid(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			shape := cp.NewBox2(pw.space.StaticBody, wallBounds(gs, x, y, w, h), 0)
			shape.SetFriction(0)
			shape.SetCollisionType(collisionTypeSolid)
			pw.space.AddShape(shape)
			pw.walls = append(pw.walls, shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*g.Width+xx] = true
				}
			}
		}
	}
	return len(pw.walls)
}

// wallBounds converts a run of cells to a world-space box. The row flip of gs
// may swap which corner is lower, so the box is built from both extremes.
func wallBounds(gs nav.GridSpace, x, y, w, h int) cp.BB {
	half := gs.TileSize / 2
	if half <= 0 {
		half = nav.DefaultTileSize / 2
	}
	a := gs.CenterOf(nav.Cell{X: x, Y: y})
	b := gs.CenterOf(nav.Cell{X: x + w - 1, Y: y + h - 1})
	return cp.BB{
		L: math.Min(a.X, b.X) - half,
		R: math.Max(a.X, b.X) + half,
		B: math.Min(a.Y, b.Y) - half,
		T: math.Max(a.Y, b.Y) + half,
	}
}

// WallCount reports how many static boxes are installed.
func (pw *PhysicsWorld) WallCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.walls)
}

// EnsureBody creates a circle body for e at pos unless one exists.
func (pw *PhysicsWorld) EnsureBody(e Entity, pos nav.Vec, radius float64) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if body, ok := pw.bodies[e]; ok {
		return body
	}
	if radius <= 0 {
		radius = 4
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		b.SetVelocityVector(pw.desired[e])
	})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeMover)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
	return body
}

// RemoveBody drops the body of e if present.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape, ok := pw.shapes[e]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, e)
	}
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
	delete(pw.desired, e)
}

// Drive requests the velocity that covers delta in an unobstructed step of
// dt. Chipmunk integrates positions before it solves velocities, so the
// request moves the body from the following Step on, after contacts with
// walls have clipped it.
func (pw *PhysicsWorld) Drive(e Entity, delta nav.Vec, dt float64) {
	if pw == nil {
		return
	}
	if _, ok := pw.bodies[e]; !ok {
		return
	}
	if dt <= 0 {
		delete(pw.desired, e)
		return
	}
	pw.desired[e] = cp.Vector{X: delta.X / dt, Y: delta.Y / dt}
}

// Step advances the simulation and forgets this tick's requests, so a body
// that is not driven again comes to rest after the next step.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
	clear(pw.desired)
}

// Position returns the body position of e.
func (pw *PhysicsWorld) Position(e Entity) (nav.Vec, bool) {
	if pw == nil {
		return nav.Vec{}, false
	}
	body, ok := pw.bodies[e]
	if !ok {
		return nav.Vec{}, false
	}
	p := body.Position()
	return nav.Vec{X: p.X, Y: p.Y}, true
}
