package component

// Body gives an entity a circle collider in the physics space.
type Body struct {
	Radius float64
}

var BodyComponent = NewComponent[Body]()
