package ecs

import "fmt"

// System advances one concern of the world per tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs systems in the order they were added. The order is the tick
// pipeline, so later systems see what earlier ones wrote this tick.
type Scheduler struct {
	systems []System
}

// NewScheduler skips nil entries so optional systems can be passed inline.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.systems = append(s.systems, sys)
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Systems returns a copy of the pipeline.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}

// Names describes the pipeline for logs: a system's String if it has one,
// its type otherwise.
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		if str, ok := sys.(fmt.Stringer); ok {
			names[i] = str.String()
			continue
		}
		names[i] = fmt.Sprintf("%T", sys)
	}
	return names
}
