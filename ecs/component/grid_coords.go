package component

import "github.com/milk9111/npcnav/nav"

// GridCoords caches the cell an entity occupies in the active level. Level
// and From record what the cell was computed for; a cache whose Level or
// From no longer match is stale.
type GridCoords struct {
	Cell  nav.Cell
	Valid bool
	Level string
	From  nav.Vec
}

var GridCoordsComponent = NewComponent[GridCoords]()
