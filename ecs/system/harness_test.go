package system

import (
	"testing"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

const testLevel = "Test"

// unitSpace maps one world unit to one cell with rows growing with Y.
var unitSpace = nav.GridSpace{TileSize: 1, Rows: 10}

type harness struct {
	w     *ecs.World
	clock *component.Clock
	level *component.ActiveLevel
}

func newHarness(t *testing.T, width, height int, walls ...nav.Cell) *harness {
	t.Helper()
	g, err := nav.NewGrid(width, height, nav.NewObstacleSet(walls...))
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	space := unitSpace
	space.Rows = height

	w := ecs.NewWorld()
	h := &harness{
		w:     w,
		clock: &component.Clock{Delta: 0.1},
		level: &component.ActiveLevel{ID: testLevel, Grid: g, Space: space},
	}
	mustAdd(t, w, ecs.CreateEntity(w), component.ClockComponent.Kind(), h.clock)
	mustAdd(t, w, ecs.CreateEntity(w), component.ActiveLevelComponent.Kind(), h.level)
	return h
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add: %v", err)
	}
}

func (h *harness) spawnTarget(t *testing.T, pos nav.Vec) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(h.w)
	mustAdd(t, h.w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, h.w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y})
	return e
}

type agentOpts struct {
	pos     nav.Vec
	anchor  nav.Cell
	target  ecs.Entity
	state   ai.Behavior
	follow  float64
	ret     float64
	rng     float64
	trigger ai.Condition
	level   string
}

func (h *harness) spawnAgent(t *testing.T, o agentOpts) ecs.Entity {
	t.Helper()
	if o.state == nil {
		o.state = ai.Idle{}
	}
	if o.follow == 0 {
		o.follow = 2
	}
	if o.rng == 0 {
		o.rng = 3
	}
	if o.level == "" {
		o.level = testLevel
	}
	w := h.w
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.AITagComponent.Kind(), &component.AITag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: o.pos.X, Y: o.pos.Y})
	mustAdd(t, w, e, component.GridCoordsComponent.Kind(), &component.GridCoords{})
	mustAdd(t, w, e, component.MovementComponent.Kind(), &component.Movement{})
	mustAdd(t, w, e, component.AnchorComponent.Kind(), &component.Anchor{Cell: o.anchor})
	mustAdd(t, w, e, component.TargetComponent.Kind(), &component.Target{Entity: uint64(o.target)})
	mustAdd(t, w, e, component.AIStateComponent.Kind(), &component.AIState{Current: o.state})
	mustAdd(t, w, e, component.LevelMemberComponent.Kind(), &component.LevelMember{LevelID: o.level})
	mustAdd(t, w, e, component.PursuerComponent.Kind(), &component.Pursuer{
		FollowSpeed: o.follow,
		ReturnSpeed: o.ret,
		FollowRange: o.rng,
		Trigger:     o.trigger,
	})
	return e
}

func (h *harness) state(t *testing.T, e ecs.Entity) ai.Behavior {
	t.Helper()
	s, ok := ecs.Get(h.w, e, component.AIStateComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no ai state", e)
	}
	return s.Current
}

func (h *harness) movement(t *testing.T, e ecs.Entity) *component.Movement {
	t.Helper()
	mv, ok := ecs.Get(h.w, e, component.MovementComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no movement", e)
	}
	return mv
}

func (h *harness) moveTo(t *testing.T, e ecs.Entity, pos nav.Vec) {
	t.Helper()
	tr, ok := ecs.Get(h.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	tr.X, tr.Y = pos.X, pos.Y
}

func behaviorEvents(events []ecs.Event) []BehaviorChanged {
	var out []BehaviorChanged
	for _, evt := range events {
		if bc, ok := evt.Data.(BehaviorChanged); ok && evt.Type == EventBehaviorChanged {
			out = append(out, bc)
		}
	}
	return out
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
