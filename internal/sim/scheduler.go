package sim

// FrameFunc runs once per display frame with the frame delta in seconds.
type FrameFunc func(dt float64)

// Task is a registered per-frame callback. Cancel is idempotent and may
// be called from inside the callback itself; a cancelled task is skipped
// on the current tick if it has not run yet and dropped afterwards.
type Task struct {
	fn        FrameFunc
	cancelled bool
}

func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

func (t *Task) Cancelled() bool { return t == nil || t.cancelled }

// Scheduler is the central frame dispatcher. Animated subsystems
// register against it instead of the host's native frame callback, which
// keeps "what happens this frame" separate from "how frames are driven"
// and lets tests pump frames by hand.
//
// Single-threaded by design: Register, Cancel and Tick must all happen
// on the loop goroutine.
type Scheduler struct {
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(fn FrameFunc) *Task {
	t := &Task{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick runs every live task in registration order and compacts out
// cancelled ones. Tasks registered during a tick start on the next tick.
func (s *Scheduler) Tick(dt float64) {
	running := s.tasks
	n := len(running)
	for i := 0; i < n; i++ {
		if !running[i].cancelled {
			running[i].fn(dt)
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
}

// Active reports how many tasks remain registered.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
