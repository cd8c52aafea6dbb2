package component

// PlayerTag marks the entity whose position picks the active level.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// AITag marks agents driven by the behavior state machine.
type AITag struct{}

var AITagComponent = NewComponent[AITag]()
