package component

import "github.com/milk9111/npcnav/nav"

// Movement is the per-tick steering output of an agent.
type Movement struct {
	Delta       nav.Vec
	Path        nav.Path
	Waypoint    nav.Cell
	HasWaypoint bool
	NoRoute     bool
}

var MovementComponent = NewComponent[Movement]()
