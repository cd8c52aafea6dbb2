package entity

import (
	"fmt"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/prefabs"
)

// NewEnemy spawns an idle agent that follows target. Its anchor is the cell
// it spawns in.
func NewEnemy(w *ecs.World, s Spawn, target ecs.Entity) (ecs.Entity, error) {
	if s.Prefab == "" {
		s.Prefab = prefabs.EnemyPrefab
	}
	e, err := BuildEntity(w, s.Prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := addEnemyRuntime(w, e, s, target); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: %w", err)
	}
	return e, nil
}

func addEnemyRuntime(w *ecs.World, e ecs.Entity, s Spawn, target ecs.Entity) error {
	if !ecs.Has(w, e, component.AITagComponent.Kind()) {
		if err := ecs.Add(w, e, component.AITagComponent.Kind(), &component.AITag{}); err != nil {
			return fmt.Errorf("add ai tag: %w", err)
		}
	}
	if !ecs.Has(w, e, component.PursuerComponent.Kind()) {
		return fmt.Errorf("prefab %q has no pursuer", s.Prefab)
	}
	if err := place(w, e, s); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.LevelMemberComponent.Kind(), &component.LevelMember{LevelID: s.LevelID}); err != nil {
		return fmt.Errorf("add level member: %w", err)
	}
	if err := ecs.Add(w, e, component.AnchorComponent.Kind(), &component.Anchor{Cell: s.Space.CellOf(s.Position)}); err != nil {
		return fmt.Errorf("add anchor: %w", err)
	}
	if err := ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{Entity: uint64(target)}); err != nil {
		return fmt.Errorf("add target: %w", err)
	}
	if err := ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{Current: ai.Idle{}}); err != nil {
		return fmt.Errorf("add ai state: %w", err)
	}
	return nil
}
