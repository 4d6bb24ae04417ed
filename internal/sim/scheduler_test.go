package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rajpdus/quad-tok/internal/sim"
)

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	sched := sim.NewScheduler()
	var order []string
	sched.Register(func(dt float64) { order = append(order, "a") })
	sched.Register(func(dt float64) { order = append(order, "b") })

	sched.Tick(frameDt)
	sched.Tick(frameDt)
	require.Equal(t, []string{"a", "b", "a", "b"}, order)
}

func TestCancelledTaskDoesNotRun(t *testing.T) {
	sched := sim.NewScheduler()
	runs := 0
	task := sched.Register(func(dt float64) { runs++ })

	sched.Tick(frameDt)
	task.Cancel()
	task.Cancel() // idempotent
	sched.Tick(frameDt)

	require.Equal(t, 1, runs)
	require.Zero(t, sched.Active())
}

func TestCancelFromInsideCallback(t *testing.T) {
	sched := sim.NewScheduler()
	runs := 0
	var task *sim.Task
	task = sched.Register(func(dt float64) {
		runs++
		task.Cancel()
	})

	sched.Tick(frameDt)
	sched.Tick(frameDt)
	require.Equal(t, 1, runs)
}

func TestRegisterDuringTickStartsNextTick(t *testing.T) {
	sched := sim.NewScheduler()
	lateRuns := 0
	registered := false
	sched.Register(func(dt float64) {
		if !registered {
			registered = true
			sched.Register(func(dt float64) { lateRuns++ })
		}
	})

	sched.Tick(frameDt)
	require.Zero(t, lateRuns, "a task registered mid-tick waits for the next frame")
	sched.Tick(frameDt)
	require.Equal(t, 1, lateRuns)
}
