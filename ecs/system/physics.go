package system

import (
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
)

// PhysicsSystem moves bodied entities through the Chipmunk space so that
// movement deltas are stopped by walls. Entities without a Body fall back to
// direct translation.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	dt := frameClock(w).Delta

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, t *component.Transform, mv *component.Movement) {
		body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
		if pw == nil || !ok || dt <= 0 {
			t.Translate(mv.Delta)
			return
		}
		pw.EnsureBody(e, t.Vec(), body.Radius)
		pw.Drive(e, mv.Delta, dt)
	})

	if pw == nil || dt <= 0 {
		return
	}
	pw.Step(dt)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, _ *component.Body) {
		if pos, ok := pw.Position(e); ok {
			t.X = pos.X
			t.Y = pos.Y
		}
	})
}
