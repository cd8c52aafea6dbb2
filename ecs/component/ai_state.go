package component

import "github.com/milk9111/npcnav/ai"

// AIState stores the current behavior of an agent and the tick it was entered.
type AIState struct {
	Current ai.Behavior
	Since   uint64
}

func (s AIState) Kind() ai.Kind {
	return ai.KindOf(s.Current)
}

var AIStateComponent = NewComponent[AIState]()
