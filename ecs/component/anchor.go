package component

import "github.com/milk9111/npcnav/nav"

// Anchor is the home cell an agent returns to. It is fixed at spawn.
type Anchor struct {
	Cell nav.Cell
}

var AnchorComponent = NewComponent[Anchor]()
