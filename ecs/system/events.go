package system

import (
	"github.com/milk9111/npcnav/ai"
	"github.com/milk9111/npcnav/ecs"
)

const (
	EventBehaviorChanged = "ai.behavior_changed"
	EventLevelChanged    = "level.changed"
)

// BehaviorChanged is pushed whenever an agent switches behavior kind.
type BehaviorChanged struct {
	Entity ecs.Entity
	From   ai.Kind
	To     ai.Kind
	Tick   uint64
	Reason string
}

// LevelChanged is pushed when the player enters a different level.
type LevelChanged struct {
	From string
	To   string
	Err  error
}
