package component

// Clock is the singleton frame clock. Delta is in seconds.
type Clock struct {
	Delta float64
	Tick  uint64
}

var ClockComponent = NewComponent[Clock]()
