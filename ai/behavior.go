package ai

import (
	"fmt"

	"github.com/milk9111/npcnav/nav"
)

// Kind names a behavior variant.
type Kind uint8

const (
	KindIdle Kind = iota
	KindFollow
	KindReturning
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindFollow:
		return "follow"
	case KindReturning:
		return "returning"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Behavior is the current state of a pursuing agent. It is one of Idle,
// Follow or Returning and is replaced whole on every transition.
type Behavior interface {
	Kind() Kind
	isBehavior()
}

// Idle agents do nothing.
type Idle struct{}

// Follow agents pursue Target at Speed.
type Follow struct {
	Target uint64
	Speed  float64
}

// Returning agents walk back to their spawn anchor.
type Returning struct {
	Anchor nav.Cell
}

func (Idle) Kind() Kind      { return KindIdle }
func (Follow) Kind() Kind    { return KindFollow }
func (Returning) Kind() Kind { return KindReturning }

func (Idle) isBehavior()      {}
func (Follow) isBehavior()    {}
func (Returning) isBehavior() {}

// KindOf returns the kind of b, treating nil as Idle.
func KindOf(b Behavior) Kind {
	if b == nil {
		return KindIdle
	}
	return b.Kind()
}
