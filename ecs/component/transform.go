package component

import "github.com/milk9111/npcnav/nav"

// Transform is the world-space position of an entity.
type Transform struct {
	X float64
	Y float64
}

func (t Transform) Vec() nav.Vec {
	return nav.Vec{X: t.X, Y: t.Y}
}

func (t *Transform) Translate(d nav.Vec) {
	t.X += d.X
	t.Y += d.Y
}

var TransformComponent = NewComponent[Transform]()
