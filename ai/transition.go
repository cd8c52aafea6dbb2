package ai

import "github.com/milk9111/npcnav/nav"

// Inputs are the trigger results sampled for one agent this tick.
type Inputs struct {
	// Near is the agent's pursuit trigger evaluated against fresh positions.
	Near bool
	// PathComplete is true when the agent stands on its anchor cell. It is
	// only consulted while Returning.
	PathComplete bool
}

// Params carries the data new variants are built from.
type Params struct {
	Target      uint64
	FollowSpeed float64
	Anchor      nav.Cell
}

// Next applies the transition table once. Rows are checked in order and the
// first match wins:
//
//	Idle      --Near-->          Follow
//	Follow    --!Near-->         Returning
//	Returning --Near-->          Follow
//	Returning --PathComplete-->  Idle
//
// Feeding the result back in with unchanged inputs settles within two steps.
func Next(cur Behavior, in Inputs, p Params) Behavior {
	switch cur := cur.(type) {
	case nil, Idle:
		if in.Near {
			return Follow{Target: p.Target, Speed: p.FollowSpeed}
		}
		return Idle{}
	case Follow:
		if !in.Near {
			return Returning{Anchor: p.Anchor}
		}
		return cur
	case Returning:
		if in.Near {
			return Follow{Target: p.Target, Speed: p.FollowSpeed}
		}
		if in.PathComplete {
			return Idle{}
		}
		return cur
	default:
		return Idle{}
	}
}
