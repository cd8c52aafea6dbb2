package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

// AISystem runs the behavior state machine of every agent once per tick.
// Agents whose level is not active, or whose level has no wall data, keep
// their state untouched.
type AISystem struct {
	log *slog.Logger
}

func NewAISystem(log *slog.Logger) *AISystem {
	return &AISystem{log: loggerOr(log)}
}

func (s *AISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	lvl := activeLevel(w)
	if !lvl.Ready() {
		return
	}
	clock := frameClock(w)

	ecs.ForEach4(w,
		component.PursuerComponent.Kind(),
		component.AIStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.AnchorComponent.Kind(),
		func(e ecs.Entity, p *component.Pursuer, state *component.AIState, t *component.Transform, anchor *component.Anchor) {
			if !ecs.Has(w, e, component.AITagComponent.Kind()) || !onLevel(w, e, lvl.ID) {
				return
			}

			var ref uint64
			if target, ok := ecs.Get(w, e, component.TargetComponent.Kind()); ok {
				ref = target.Entity
			}
			targetPos, found := targetPosition(w, ref)
			if !found {
				if state.Kind() != ai.KindIdle {
					err := fmt.Errorf("target %s: %w", ecs.Entity(ref), nav.ErrTargetMissing)
					s.log.Info("ai: dropping to idle", "entity", e, "from", state.Kind(), "error", err)
					s.set(w, e, state, ai.Idle{}, clock.Tick, "target missing")
				}
				return
			}

			trigger := p.Trigger
			if trigger == nil {
				trigger = ai.Near{}
			}
			in := ai.Inputs{
				Near: trigger.Eval(ai.Context{
					Agent:       t.Vec(),
					Target:      targetPos,
					TargetFound: true,
					Range:       p.FollowRange,
				}),
			}
			if state.Kind() == ai.KindReturning {
				in.PathComplete = returnComplete(lvl, cellOf(w, e, lvl, t.Vec()), anchor.Cell)
			}

			next := ai.Next(state.Current, in, ai.Params{
				Target:      ref,
				FollowSpeed: p.FollowSpeed,
				Anchor:      anchor.Cell,
			})
			if ai.KindOf(next) == state.Kind() {
				state.Current = next
				return
			}
			reason := "lost target"
			switch {
			case in.Near:
				reason = "target near"
			case in.PathComplete:
				reason = "reached anchor"
			}
			s.set(w, e, state, next, clock.Tick, reason)
		})
}

func (s *AISystem) set(w *ecs.World, e ecs.Entity, state *component.AIState, next ai.Behavior, tick uint64, reason string) {
	from := state.Kind()
	state.Current = next
	state.Since = tick
	s.log.Debug("ai: transition", "entity", e, "from", from, "to", ai.KindOf(next), "reason", reason)
	w.Events().Push(ecs.Event{
		Type: EventBehaviorChanged,
		Data: BehaviorChanged{Entity: e, From: from, To: ai.KindOf(next), Tick: tick, Reason: reason},
	})
}

// returnComplete reports whether the route home has no waypoint left. An
// unreachable anchor never completes.
func returnComplete(lvl *component.ActiveLevel, current, anchor nav.Cell) bool {
	path, ok := nav.FindPath(lvl.Grid, current, anchor)
	if !ok {
		return false
	}
	return nav.PathComplete(path, current)
}
