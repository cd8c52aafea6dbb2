package system

import (
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
)

// VelocitySystem converts input velocities into this tick's movement delta.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameClock(w).Delta
	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, v *component.Velocity, mv *component.Movement) {
		mv.Delta = v.Scale(dt)
	})
}

// MovementSystem applies movement deltas straight to transforms. It is the
// collision-free counterpart of PhysicsSystem.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, t *component.Transform, mv *component.Movement) {
		t.Translate(mv.Delta)
	})
}
