package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc lets a plain function run as a System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// Scheduler runs systems in the order they were added. A system added while
// the scheduler is running starts on the next frame.
type Scheduler struct {
	systems []System
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	if f, ok := system.(SystemFunc); ok && f == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}
