package system

import (
	"testing"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

func TestSteeringSystemDeltas(t *testing.T) {
	tests := []struct {
		name     string
		agent    nav.Vec
		target   nav.Vec
		state    func(target ecs.Entity) ai.Behavior
		ret      float64
		want     nav.Vec
		waypoint bool
	}{
		{
			name:     "follow_up_the_column",
			agent:    nav.Vec{X: 0.5, Y: 0.5},
			target:   nav.Vec{X: 0.5, Y: 3.5},
			state:    func(e ecs.Entity) ai.Behavior { return ai.Follow{Target: uint64(e), Speed: 2} },
			want:     nav.Vec{X: 0, Y: 0.2},
			waypoint: true,
		},
		{
			name:     "return_uses_return_speed",
			agent:    nav.Vec{X: 0.5, Y: 0.5},
			target:   nav.Vec{X: 9.5, Y: 9.5},
			state:    func(ecs.Entity) ai.Behavior { return ai.Returning{Anchor: nav.Cell{X: 3, Y: 0}} },
			ret:      5,
			want:     nav.Vec{X: 0.5, Y: 0},
			waypoint: true,
		},
		{
			name:     "return_defaults_to_follow_speed",
			agent:    nav.Vec{X: 0.5, Y: 0.5},
			target:   nav.Vec{X: 9.5, Y: 9.5},
			state:    func(ecs.Entity) ai.Behavior { return ai.Returning{Anchor: nav.Cell{X: 3, Y: 0}} },
			want:     nav.Vec{X: 0.2, Y: 0},
			waypoint: true,
		},
		{
			name:   "idle_stands_still",
			agent:  nav.Vec{X: 0.5, Y: 0.5},
			target: nav.Vec{X: 0.5, Y: 3.5},
			state:  func(ecs.Entity) ai.Behavior { return ai.Idle{} },
		},
		{
			name:   "already_on_target_cell",
			agent:  nav.Vec{X: 2.2, Y: 2.2},
			target: nav.Vec{X: 2.8, Y: 2.8},
			state:  func(e ecs.Entity) ai.Behavior { return ai.Follow{Target: uint64(e), Speed: 2} },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, 10, 10)
			target := h.spawnTarget(t, tc.target)
			agent := h.spawnAgent(t, agentOpts{pos: tc.agent, target: target, state: tc.state(target), ret: tc.ret})

			NewSteeringSystem(nil).Update(h.w)
			mv := h.movement(t, agent)
			if !near(mv.Delta.X, tc.want.X) || !near(mv.Delta.Y, tc.want.Y) {
				t.Fatalf("expected delta %v, got %v", tc.want, mv.Delta)
			}
			if mv.HasWaypoint != tc.waypoint {
				t.Fatalf("expected waypoint=%v, got %+v", tc.waypoint, mv)
			}
			if mv.NoRoute {
				t.Fatalf("unexpected no-route flag")
			}
		})
	}
}

func TestSteeringSystemDetoursAroundWall(t *testing.T) {
	// Wall across row 1 with a gap at x=4.
	var walls []nav.Cell
	for x := 0; x < 10; x++ {
		if x != 4 {
			walls = append(walls, nav.Cell{X: x, Y: 1})
		}
	}
	h := newHarness(t, 10, 10, walls...)
	target := h.spawnTarget(t, nav.Vec{X: 0.5, Y: 3.5})
	agent := h.spawnAgent(t, agentOpts{
		pos:    nav.Vec{X: 0.5, Y: 0.5},
		target: target,
		state:  ai.Follow{Target: uint64(target), Speed: 2},
	})

	NewSteeringSystem(nil).Update(h.w)
	mv := h.movement(t, agent)
	if mv.Waypoint != (nav.Cell{X: 1, Y: 0}) {
		t.Fatalf("expected detour through (1,0), got %v", mv.Waypoint)
	}
	if len(mv.Path) != 12 {
		t.Fatalf("expected 12-cell detour, got %d: %v", len(mv.Path), mv.Path)
	}
	for _, c := range mv.Path {
		if h.level.Grid.Blocked(c) {
			t.Fatalf("path crosses wall at %v", c)
		}
	}
}

func TestReturningAgentWalksHome(t *testing.T) {
	h := newHarness(t, 10, 10)
	target := h.spawnTarget(t, nav.Vec{X: 9.5, Y: 9.5})
	anchor := nav.Cell{X: 3, Y: 0}
	agent := h.spawnAgent(t, agentOpts{
		pos:    nav.Vec{X: 0.5, Y: 0.5},
		anchor: anchor,
		target: target,
		state:  ai.Returning{Anchor: anchor},
	})

	sched := ecs.NewScheduler(NewClockSystem(), NewGridCoordSystem(), NewAISystem(nil), NewSteeringSystem(nil), NewMovementSystem())
	for i := 0; i < 40; i++ {
		sched.Update(h.w)
	}

	if _, ok := h.state(t, agent).(ai.Idle); !ok {
		t.Fatalf("expected Idle at anchor, got %#v", h.state(t, agent))
	}
	gc, _ := ecs.Get(h.w, agent, component.GridCoordsComponent.Kind())
	if !gc.Valid || gc.Cell != anchor {
		t.Fatalf("expected agent on anchor cell, got %+v", gc)
	}
	if h.clock.Tick != 40 {
		t.Fatalf("expected 40 ticks, got %d", h.clock.Tick)
	}
}
