package component

// Mover is the top speed of an input-driven entity.
type Mover struct {
	Speed float64
}

var MoverComponent = NewComponent[Mover]()
