package system

import (
	"log/slog"

	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

func loggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

func frameClock(w *ecs.World) component.Clock {
	if _, c, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		return *c
	}
	return component.Clock{}
}

func activeLevel(w *ecs.World) *component.ActiveLevel {
	if _, lvl, ok := ecs.First(w, component.ActiveLevelComponent.Kind()); ok {
		return lvl
	}
	return nil
}

// onLevel reports whether e takes part in the simulation of the given level.
// Entities without a LevelMember belong to every level.
func onLevel(w *ecs.World, e ecs.Entity, levelID string) bool {
	m, ok := ecs.Get(w, e, component.LevelMemberComponent.Kind())
	if !ok {
		return true
	}
	return m.LevelID == levelID
}

// targetPosition resolves a raw entity reference to a live world position.
func targetPosition(w *ecs.World, ref uint64) (nav.Vec, bool) {
	target := ecs.Entity(ref)
	if !target.Valid() || !ecs.IsAlive(w, target) {
		return nav.Vec{}, false
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return nav.Vec{}, false
	}
	return t.Vec(), true
}
