package sim_test

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rajpdus/quad-tok/internal/sim"
)

type tiltSpy struct{ calls []string }

func (s *tiltSpy) TiltForward()       { s.calls = append(s.calls, "forward") }
func (s *tiltSpy) TiltBackward()      { s.calls = append(s.calls, "backward") }
func (s *tiltSpy) TiltLeft()          { s.calls = append(s.calls, "left") }
func (s *tiltSpy) TiltRight()         { s.calls = append(s.calls, "right") }
func (s *tiltSpy) TiltForwardLeft()   { s.calls = append(s.calls, "forwardLeft") }
func (s *tiltSpy) TiltForwardRight()  { s.calls = append(s.calls, "forwardRight") }
func (s *tiltSpy) TiltBackwardLeft()  { s.calls = append(s.calls, "backwardLeft") }
func (s *tiltSpy) TiltBackwardRight() { s.calls = append(s.calls, "backwardRight") }
func (s *tiltSpy) Stabilize()         { s.calls = append(s.calls, "stabilize") }

func (s *tiltSpy) count(name string) int {
	n := 0
	for _, c := range s.calls {
		if c == name {
			n++
		}
	}
	return n
}

type driveSpy struct{ accel, decel int }

func (d *driveSpy) Accelerate() { d.accel++ }
func (d *driveSpy) Decelerate() { d.decel++ }

func newIntegrator(startY float64) (*sim.MovementIntegrator, *sim.Node, *tiltSpy, *driveSpy) {
	vehicle := sim.NewQuadcopterNode()
	vehicle.Position.Y = startY
	tilt := &tiltSpy{}
	drive := &driveSpy{}
	return sim.NewMovementIntegrator(vehicle, tilt, drive), vehicle, tilt, drive
}

func TestClimbScenario(t *testing.T) {
	integ, vehicle, tilt, drive := newIntegrator(50)

	prevY := vehicle.Position.Y
	for i := 0; i < 10; i++ {
		integ.Advance(sim.InputSnapshot{Up: true})
		require.Greater(t, vehicle.Position.Y, prevY, "frame %d must climb", i)
		prevY = vehicle.Position.Y
	}
	require.Equal(t, 10, drive.accel)
	require.Equal(t, 10, tilt.count("forward"))
	require.Zero(t, drive.decel)
	require.Zero(t, tilt.count("stabilize"))
}

func TestUpAndDownCancelOut(t *testing.T) {
	integ, vehicle, _, drive := newIntegrator(50)

	integ.Advance(sim.InputSnapshot{Up: true, Down: true})
	require.Equal(t, 50.0, vehicle.Position.Y, "net-neutral input leaves altitude alone")
	require.Equal(t, 1, drive.decel)
	require.Zero(t, drive.accel)
}

func TestDiagonalOverridesSingleAxisTilt(t *testing.T) {
	integ, _, tilt, _ := newIntegrator(50)

	integ.Advance(sim.InputSnapshot{Up: true, Left: true})
	require.Equal(t, []string{"forwardLeft"}, tilt.calls)

	tilt.calls = nil
	integ.Advance(sim.InputSnapshot{Down: true, Right: true})
	require.Equal(t, []string{"backwardRight"}, tilt.calls)
}

func TestForwardStepAlwaysApplies(t *testing.T) {
	integ, vehicle, _, _ := newIntegrator(50)

	start := vehicle.Position
	integ.Advance(sim.InputSnapshot{})
	moved := vehicle.Position.Sub(start)
	require.InDelta(t, 0.4, math.Hypot(moved.X, moved.Z), 1e-9)

	start = vehicle.Position
	integ.Advance(sim.InputSnapshot{SpeedMode: true})
	moved = vehicle.Position.Sub(start)
	require.InDelta(t, 1.0, math.Hypot(moved.X, moved.Z), 1e-9)
}

func TestTransitionSuppressesControl(t *testing.T) {
	integ, vehicle, tilt, drive := newIntegrator(50)
	integ.InTransition = true

	start := vehicle.Position
	integ.Advance(sim.InputSnapshot{Up: true, Left: true})
	require.NotEqual(t, start, vehicle.Position, "forward step still applies")
	require.Equal(t, 50.0, vehicle.Position.Y)
	require.Empty(t, tilt.calls)
	require.Zero(t, drive.accel+drive.decel)
}

func TestRepositioningGatesDescentOnly(t *testing.T) {
	integ, vehicle, tilt, _ := newIntegrator(50)
	integ.Repositioning = true

	integ.Advance(sim.InputSnapshot{Down: true})
	require.Equal(t, 50.0, vehicle.Position.Y, "descent vetoed while repositioning")
	require.Zero(t, tilt.count("backward"))

	integ.Advance(sim.InputSnapshot{Up: true})
	require.Greater(t, vehicle.Position.Y, 50.0, "climb unaffected")
}

func TestAltitudeEnvelope(t *testing.T) {
	integ, vehicle, _, _ := newIntegrator(90)
	integ.Advance(sim.InputSnapshot{Up: true})
	require.Equal(t, 90.0, vehicle.Position.Y, "no climb at the ceiling")

	integ, vehicle, _, _ = newIntegrator(27)
	integ.Advance(sim.InputSnapshot{Down: true})
	require.Equal(t, 27.0, vehicle.Position.Y, "no descent at the floor")
}

func TestYawRampAndSpeedModeCap(t *testing.T) {
	integ, vehicle, tilt, _ := newIntegrator(50)

	prevYaw := 0.0
	prevDelta := 0.0
	for i := 0; i < 30; i++ {
		integ.Advance(sim.InputSnapshot{Left: true})
		delta := vehicle.Rotation.Y - prevYaw
		require.Greater(t, delta, 0.0)
		require.GreaterOrEqual(t, delta, prevDelta, "turn rate ramps up")
		require.LessOrEqual(t, delta, 0.01+1e-12, "normal-mode cap")
		prevYaw = vehicle.Rotation.Y
		prevDelta = delta
	}
	require.Equal(t, 30, tilt.count("left"))

	for i := 0; i < 40; i++ {
		integ.Advance(sim.InputSnapshot{Left: true, SpeedMode: true})
	}
	delta := vehicle.Rotation.Y
	integ.Advance(sim.InputSnapshot{Left: true, SpeedMode: true})
	require.InDelta(t, 0.02, vehicle.Rotation.Y-delta, 1e-12, "speed mode doubles the cap")
}

func TestStabilizeGatedOnOtherAxis(t *testing.T) {
	integ, _, tilt, drive := newIntegrator(50)

	// Turning without vertical input: vertical decay branch fires the
	// decelerate but must not fight the active horizontal tilt.
	integ.Advance(sim.InputSnapshot{Left: true})
	require.Equal(t, 1, drive.decel)
	require.Zero(t, tilt.count("stabilize"))
	require.Equal(t, 1, tilt.count("left"))

	// Fully idle: both axis decay branches stabilize.
	tilt.calls = nil
	integ.Advance(sim.InputSnapshot{})
	require.Equal(t, 2, tilt.count("stabilize"))
}

func TestNoInputDecayTowardNeutral(t *testing.T) {
	vehicle := sim.NewQuadcopterNode()
	vehicle.Position.Y = 50
	sched := sim.NewScheduler()
	attitude := sim.NewAttitudeController(vehicle)
	drive := sim.NewPropellerDrive(vehicle, sched, nil, zerolog.Nop())
	integ := sim.NewMovementIntegrator(vehicle, attitude, drive)

	for i := 0; i < 20; i++ {
		integ.Advance(sim.InputSnapshot{Up: true})
	}
	require.Greater(t, attitude.CurrentTilt().Pitch, 0.0)
	require.Greater(t, drive.Speed(), sim.SpeedIdle)

	prevPitch := attitude.CurrentTilt().Pitch
	prevSpeed := drive.Speed()
	for i := 0; i < 100; i++ {
		integ.Advance(sim.InputSnapshot{})
		pitch := attitude.CurrentTilt().Pitch
		require.Less(t, pitch, prevPitch)
		require.Greater(t, pitch, 0.0, "decay never hard-zeroes the tilt")
		require.LessOrEqual(t, drive.Speed(), prevSpeed)
		require.GreaterOrEqual(t, drive.Speed(), sim.SpeedIdle)
		prevPitch = pitch
		prevSpeed = drive.Speed()
	}
}
