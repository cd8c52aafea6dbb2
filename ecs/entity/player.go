package entity

import (
	"fmt"

	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/prefabs"
)

// NewPlayer spawns the followed entity. It belongs to no single level.
func NewPlayer(w *ecs.World, s Spawn) (ecs.Entity, error) {
	if s.Prefab == "" {
		s.Prefab = prefabs.PlayerPrefab
	}
	e, err := BuildEntity(w, s.Prefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: add player tag: %w", err)
		}
	}
	if err := place(w, e, s); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	return e, nil
}
