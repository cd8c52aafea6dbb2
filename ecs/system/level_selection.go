package system

import (
	"log/slog"

	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/levels"
	"github.com/milk9111/npcnav/nav"
)

type levelGrid struct {
	grid *nav.Grid
	err  error
}

// LevelSelectionSystem makes the level the player stands in the active one.
// Obstacle grids are extracted once per level and cached. While the player
// is outside every level the previous selection is kept.
type LevelSelectionSystem struct {
	project *levels.Project
	log     *slog.Logger
	grids   map[string]levelGrid
}

func NewLevelSelectionSystem(project *levels.Project, log *slog.Logger) *LevelSelectionSystem {
	return &LevelSelectionSystem{
		project: project,
		log:     loggerOr(log),
		grids:   make(map[string]levelGrid),
	}
}

func (s *LevelSelectionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.project == nil {
		return
	}

	active := activeLevel(w)
	if active == nil {
		e := ecs.CreateEntity(w)
		active = &component.ActiveLevel{}
		if err := ecs.Add(w, e, component.ActiveLevelComponent.Kind(), active); err != nil {
			s.log.Error("level: create active level", "error", err)
			return
		}
	}
	active.Changed = false

	player, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	lvl, ok := s.project.LevelAt(t.Vec())
	if !ok || lvl.Identifier == active.ID {
		return
	}

	prev := active.ID
	cached := s.gridFor(lvl)
	active.ID = lvl.Identifier
	active.Grid = cached.grid
	active.Space = lvl.Space()
	active.Err = cached.err
	active.Changed = true

	if cached.err != nil {
		w.PhysicsWorld().SetWalls(nil, active.Space)
		s.log.Warn("level: map data missing", "level", lvl.Identifier, "error", cached.err)
	} else {
		walls := w.PhysicsWorld().SetWalls(cached.grid, active.Space)
		s.log.Info("level: active", "level", lvl.Identifier, "from", prev,
			"cols", cached.grid.Width, "rows", cached.grid.Height, "walls", walls)
	}
	w.Events().Push(ecs.Event{
		Type: EventLevelChanged,
		Data: LevelChanged{From: prev, To: lvl.Identifier, Err: cached.err},
	})
}

func (s *LevelSelectionSystem) gridFor(lvl *levels.Level) levelGrid {
	if cached, ok := s.grids[lvl.Identifier]; ok {
		return cached
	}
	g, err := lvl.Grid()
	cached := levelGrid{grid: g, err: err}
	s.grids[lvl.Identifier] = cached
	return cached
}
