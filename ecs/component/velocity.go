package component

import "github.com/milk9111/npcnav/nav"

// Velocity is a world-space speed in units per second, used for entities
// moved by input rather than by steering.
type Velocity struct {
	nav.Vec
}

var VelocityComponent = NewComponent[Velocity]()
