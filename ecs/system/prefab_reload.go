package system

import (
	"log/slog"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/ecs/entity"
	"github.com/milk9111/npcnav/prefabs"
)

// PrefabSource yields the names of prefabs that changed since the last call.
type PrefabSource interface {
	Poll() []string
}

// PrefabReloadSystem retunes live agents when their prefab changes on disk.
// Behavior state is kept; only tuning and triggers are replaced.
type PrefabReloadSystem struct {
	source PrefabSource
	log    *slog.Logger
}

func NewPrefabReloadSystem(source PrefabSource, log *slog.Logger) *PrefabReloadSystem {
	return &PrefabReloadSystem{source: source, log: loggerOr(log)}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil || w == nil {
		return
	}
	if src, ok := s.source.(interface{ Err() error }); ok {
		if err := src.Err(); err != nil {
			s.log.Warn("prefab: watch error", "error", err)
		}
	}
	for _, name := range s.source.Poll() {
		s.reload(w, name)
	}
}

func (s *PrefabReloadSystem) reload(w *ecs.World, name string) {
	spec, err := prefabs.LoadEntityBuildSpec(name)
	if err != nil {
		s.log.Warn("prefab: reload failed", "prefab", name, "error", err)
		return
	}
	if _, ok := spec.Components["pursuer"]; !ok {
		return
	}
	ps, err := prefabs.Component[prefabs.PursuerComponentSpec](spec, "pursuer")
	if err != nil {
		s.log.Warn("prefab: reload failed", "prefab", name, "error", err)
		return
	}
	tuned, err := entity.NewPursuer(name, ps)
	if err != nil {
		s.log.Warn("prefab: reload failed", "prefab", name, "error", err)
		return
	}

	count := 0
	ecs.ForEach(w, component.PursuerComponent.Kind(), func(e ecs.Entity, p *component.Pursuer) {
		if p.Prefab != name {
			return
		}
		*p = *tuned
		if state, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok {
			if f, ok := state.Current.(ai.Follow); ok {
				f.Speed = p.FollowSpeed
				state.Current = f
			}
		}
		count++
	})
	s.log.Info("prefab: reloaded", "prefab", name, "agents", count)
}
