package component

// Target names the entity an agent follows. Entity is a raw ecs handle and
// may go stale when the target despawns.
type Target struct {
	Entity uint64
}

var TargetComponent = NewComponent[Target]()
