package entity

import (
	"fmt"

	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

// Spawn places a prefab in the world. Space is the grid of the level the
// entity spawns in and is used to fix the anchor cell.
type Spawn struct {
	Prefab   string
	Position nav.Vec
	LevelID  string
	Space    nav.GridSpace
}

func place(w *ecs.World, e ecs.Entity, s Spawn) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.X = s.Position.X
	t.Y = s.Position.Y
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.GridCoordsComponent.Kind(), &component.GridCoords{}); err != nil {
		return fmt.Errorf("add grid coords: %w", err)
	}
	if err := ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{}); err != nil {
		return fmt.Errorf("add movement: %w", err)
	}
	return nil
}
