package system

import (
	"errors"
	"log/slog"

	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
	"github.com/milk9111/npcnav/nav"
)

// SteeringSystem turns each agent's behavior into this tick's movement
// delta. Idle agents, agents off the active level and agents without a
// route emit a zero delta.
type SteeringSystem struct {
	log *slog.Logger
}

func NewSteeringSystem(log *slog.Logger) *SteeringSystem {
	return &SteeringSystem{log: loggerOr(log)}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	lvl := activeLevel(w)
	clock := frameClock(w)

	ecs.ForEach4(w,
		component.PursuerComponent.Kind(),
		component.AIStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, p *component.Pursuer, state *component.AIState, t *component.Transform, mv *component.Movement) {
			*mv = component.Movement{}
			if !lvl.Ready() || !onLevel(w, e, lvl.ID) {
				return
			}

			var (
				goal  nav.Cell
				speed float64
			)
			switch b := state.Current.(type) {
			case ai.Follow:
				targetPos, ok := targetPosition(w, b.Target)
				if !ok {
					return
				}
				goal = cellOf(w, ecs.Entity(b.Target), lvl, targetPos)
				speed = b.Speed
				if speed <= 0 {
					speed = p.FollowSpeed
				}
			case ai.Returning:
				goal = b.Anchor
				speed = p.ReturnSpeed
				if speed <= 0 {
					speed = p.FollowSpeed
				}
			default:
				return
			}

			res, err := nav.SteerAlongPath(nav.SteerRequest{
				Grid:     lvl.Grid,
				Space:    lvl.Space,
				Position: t.Vec(),
				Cell:     cellOf(w, e, lvl, t.Vec()),
				HasCell:  true,
				Goal:     goal,
				Speed:    speed,
				Dt:       clock.Delta,
			})
			if err != nil {
				mv.NoRoute = errors.Is(err, nav.ErrNoPathFound)
				s.log.Debug("steer: no path", "entity", e, "state", state.Kind(), "goal", goal, "error", err)
				return
			}
			mv.Delta = res.Delta
			mv.Path = res.Path
			mv.Waypoint = res.Waypoint
			mv.HasWaypoint = res.HasWaypoint
		})
}
