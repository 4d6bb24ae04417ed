package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rajpdus/quad-tok/internal/sim"
)

const frameDt = 1.0 / 60

func newHover(t *testing.T, startY float64) (*sim.HoverOscillator, *sim.Node, *sim.Scheduler) {
	t.Helper()
	vehicle := sim.NewQuadcopterNode()
	vehicle.Position.Y = startY
	sched := sim.NewScheduler()
	return sim.NewHoverOscillator(vehicle, sched, sim.DefaultHoverConfig()), vehicle, sched
}

func floatPtr(v float64) *float64 { return &v }

func TestStopRestoresCapturedBase(t *testing.T) {
	hover, vehicle, sched := newHover(t, 50)
	hover.Start()
	for i := 0; i < 25; i++ {
		sched.Tick(frameDt)
	}
	require.NotEqual(t, 50.0, vehicle.Position.Y, "oscillation should have displaced Y")

	hover.Stop()
	require.Equal(t, 50.0, vehicle.Position.Y, "stop settles back on the captured base exactly")
	require.Zero(t, sched.Active())
}

func TestSetBaseHeightAfterStart(t *testing.T) {
	hover, vehicle, sched := newHover(t, 50)
	hover.Start()
	hover.SetBaseHeight(62)
	sched.Tick(frameDt)
	hover.Stop()
	require.Equal(t, 62.0, vehicle.Position.Y)
}

func TestStartIdempotentKeepsBase(t *testing.T) {
	hover, vehicle, sched := newHover(t, 50)
	hover.Start()
	vehicle.Position.Y = 80
	hover.Start() // no-op: base must not be recaptured at 80
	sched.Tick(frameDt)
	hover.Stop()
	require.Equal(t, 50.0, vehicle.Position.Y)
}

func TestStopWhileInactiveIsNoOp(t *testing.T) {
	hover, vehicle, _ := newHover(t, 50)
	hover.Stop()
	require.Equal(t, 50.0, vehicle.Position.Y)
}

func TestLateralSwayAccumulatesOnX(t *testing.T) {
	hover, vehicle, sched := newHover(t, 50)
	hover.Start()
	sched.Tick(frameDt)
	afterOne := vehicle.Position.X
	require.NotZero(t, afterOne, "X gets an incremental nudge every frame")

	// Stopping removes the Y offset but leaves the accumulated X drift;
	// the sway is additive by design.
	hover.Stop()
	require.Equal(t, afterOne, vehicle.Position.X)
}

func TestUpdateConfigMergesPartially(t *testing.T) {
	hover, _, _ := newHover(t, 50)
	base := hover.Config()

	hover.UpdateConfig(sim.HoverOverrides{Amplitude: floatPtr(1.2)})
	got := hover.Config()
	require.Equal(t, 1.2, got.Amplitude)
	require.Equal(t, base.Frequency, got.Frequency)
	require.Equal(t, base.LateralAmount, got.LateralAmount)

	hover.UpdateConfig(sim.HoverOverrides{
		Frequency:     floatPtr(3),
		LateralAmount: floatPtr(0.05),
	})
	got = hover.Config()
	require.Equal(t, 1.2, got.Amplitude, "untouched field keeps the earlier override")
	require.Equal(t, 3.0, got.Frequency)
	require.Equal(t, 0.05, got.LateralAmount)
}

func TestUpdateConfigWhileActive(t *testing.T) {
	hover, vehicle, sched := newHover(t, 50)
	hover.Start()
	hover.UpdateConfig(sim.HoverOverrides{Amplitude: floatPtr(0)})
	sched.Tick(frameDt)
	require.Equal(t, 50.0, vehicle.Position.Y, "zero amplitude holds Y on the base")
}
