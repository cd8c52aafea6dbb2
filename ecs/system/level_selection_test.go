package system

import (
	"errors"
	"testing"

	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/levels"
	"github.com/milk9111/npcnav/nav"
)

const twoLevelProject = `{
  "levels": [
    {"identifier": "A", "world_x": 0, "world_y": 0, "px_wid": 64, "px_hei": 64, "grid_size": 16,
     "layers": [{"identifier": "Walls", "tiles": [{"px": [0, 0]}, {"px": [16, 0]}]}]},
    {"identifier": "B", "world_x": 64, "world_y": 0, "px_wid": 64, "px_hei": 64,
     "layers": [{"identifier": "Floor", "tiles": []}]}
  ]
}`

func TestLevelSelectionSystem(t *testing.T) {
	project, err := levels.Parse([]byte(twoLevelProject))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	player := ecs.CreateEntity(w)
	mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	pt := &component.Transform{X: 10, Y: 10}
	mustAdd(t, w, player, component.TransformComponent.Kind(), pt)

	sys := NewLevelSelectionSystem(project, nil)
	active := func() *component.ActiveLevel {
		_, lvl, ok := ecs.First(w, component.ActiveLevelComponent.Kind())
		if !ok {
			t.Fatalf("no active level singleton")
		}
		return lvl
	}
	levelEvents := func() []LevelChanged {
		var out []LevelChanged
		for _, evt := range w.Events().Drain() {
			if lc, ok := evt.Data.(LevelChanged); ok {
				out = append(out, lc)
			}
		}
		return out
	}

	sys.Update(w)
	lvl := active()
	if lvl.ID != "A" || !lvl.Ready() || !lvl.Changed {
		t.Fatalf("expected A to become active, got %+v", lvl)
	}
	if lvl.Grid.Width != 4 || lvl.Grid.Height != 4 || lvl.Grid.Obstacles.Len() != 2 {
		t.Fatalf("unexpected grid %+v", lvl.Grid)
	}
	if !lvl.Space.YUp || lvl.Space.Rows != 4 {
		t.Fatalf("unexpected space %+v", lvl.Space)
	}
	if w.PhysicsWorld().WallCount() != 1 {
		t.Fatalf("expected one merged wall box, got %d", w.PhysicsWorld().WallCount())
	}
	if ev := levelEvents(); len(ev) != 1 || ev[0].To != "A" || ev[0].From != "" {
		t.Fatalf("unexpected events %+v", ev)
	}
	gridA := lvl.Grid

	sys.Update(w)
	if active().Changed || len(levelEvents()) != 0 {
		t.Fatalf("staying inside A should not change anything")
	}

	pt.X = 80
	sys.Update(w)
	lvl = active()
	if lvl.ID != "B" || lvl.Ready() {
		t.Fatalf("expected B active but not ready, got %+v", lvl)
	}
	if !errors.Is(lvl.Err, nav.ErrMapDataMissing) {
		t.Fatalf("expected ErrMapDataMissing, got %v", lvl.Err)
	}
	if w.PhysicsWorld().WallCount() != 0 {
		t.Fatalf("walls of A should be cleared")
	}
	if ev := levelEvents(); len(ev) != 1 || ev[0].Err == nil {
		t.Fatalf("expected a failed level change event, got %+v", ev)
	}

	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"shared_edge_keeps_selection", 64, "B"},
		{"outside_keeps_selection", 500, "B"},
		{"back_to_a", 20, "A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pt.X = tc.x
			sys.Update(w)
			if got := active().ID; got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
	if active().Grid != gridA {
		t.Fatalf("grid of A should come from the cache")
	}
}

func TestGridCoordSystem(t *testing.T) {
	h := newHarness(t, 4, 4)
	inside := h.spawnTarget(t, nav.Vec{X: 2.5, Y: 1.5})
	mustAdd(t, h.w, inside, component.GridCoordsComponent.Kind(), &component.GridCoords{})
	outside := h.spawnTarget(t, nav.Vec{X: 7.5, Y: 1.5})
	mustAdd(t, h.w, outside, component.GridCoordsComponent.Kind(), &component.GridCoords{})
	elsewhere := h.spawnAgent(t, agentOpts{pos: nav.Vec{X: 1.5, Y: 1.5}, level: "Other"})

	NewGridCoordSystem().Update(h.w)

	gc, _ := ecs.Get(h.w, inside, component.GridCoordsComponent.Kind())
	if !gc.Valid || gc.Cell != (nav.Cell{X: 2, Y: 1}) {
		t.Fatalf("unexpected coords %+v", gc)
	}
	gc, _ = ecs.Get(h.w, outside, component.GridCoordsComponent.Kind())
	if gc.Valid {
		t.Fatalf("out of bounds position should be invalid: %+v", gc)
	}
	gc, _ = ecs.Get(h.w, elsewhere, component.GridCoordsComponent.Kind())
	if gc.Valid {
		t.Fatalf("entity on another level should be invalid: %+v", gc)
	}
}

func TestCellOfReadsGridCoords(t *testing.T) {
	h := newHarness(t, 4, 4)
	pos := nav.Vec{X: 1.5, Y: 1.5}
	e := h.spawnTarget(t, pos)
	gc := &component.GridCoords{Cell: nav.Cell{X: 3, Y: 3}, Valid: true, Level: testLevel, From: pos}
	mustAdd(t, h.w, e, component.GridCoordsComponent.Kind(), gc)

	if got := cellOf(h.w, e, h.level, pos); got != (nav.Cell{X: 3, Y: 3}) {
		t.Fatalf("matching cache should be used, got %v", got)
	}

	moved := nav.Vec{X: 2.5, Y: 0.5}
	if got := cellOf(h.w, e, h.level, moved); got != (nav.Cell{X: 2, Y: 0}) {
		t.Fatalf("stale cache should be recomputed, got %v", got)
	}
	if gc.From != moved || gc.Cell != (nav.Cell{X: 2, Y: 0}) || !gc.Valid {
		t.Fatalf("cache not refreshed: %+v", gc)
	}

	bare := h.spawnTarget(t, pos)
	if got := cellOf(h.w, bare, h.level, pos); got != (nav.Cell{X: 1, Y: 1}) {
		t.Fatalf("entity without coords should use the space, got %v", got)
	}
}
