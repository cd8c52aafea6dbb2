package component

// LevelMember ties an entity to the level it was spawned in. Entities without
// it are treated as members of every level.
type LevelMember struct {
	LevelID string
}

var LevelMemberComponent = NewComponent[LevelMember]()
