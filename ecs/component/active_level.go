package component

import "github.com/milk9111/npcnav/nav"

// ActiveLevel is the singleton describing the level the player stands in.
// Err is set when the level has no usable wall data; agents on such a level
// are left untouched.
type ActiveLevel struct {
	ID      string
	Grid    *nav.Grid
	Space   nav.GridSpace
	Err     error
	Changed bool
}

func (l *ActiveLevel) Ready() bool {
	return l != nil && l.ID != "" && l.Err == nil && l.Grid != nil
}

var ActiveLevelComponent = NewComponent[ActiveLevel]()
