package system

import (
	"github.com/milk9111/npcnav/ecs"
	"github.com/milk9111/npcnav/ecs/component"
)

// ClockSystem advances the tick counter of the singleton clock. Delta is set
// by whoever drives the world.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, c, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		c.Tick++
	}
}
