package component

import "github.com/milk9111/npcnav/ai"

// Pursuer holds the tuning of a following agent.
type Pursuer struct {
	Prefab      string
	FollowSpeed float64
	ReturnSpeed float64
	FollowRange float64
	Trigger     ai.Condition
}

var PursuerComponent = NewComponent[Pursuer]()
