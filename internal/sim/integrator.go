package sim

import "math"

// TiltController is the attitude surface the integrator drives.
// Satisfied by *AttitudeController.
type TiltController interface {
	TiltForward()
	TiltBackward()
	TiltLeft()
	TiltRight()
	TiltForwardLeft()
	TiltForwardRight()
	TiltBackwardLeft()
	TiltBackwardRight()
	Stabilize()
}

// RotorDrive is the propeller surface the integrator drives. Satisfied
// by *PropellerDrive.
type RotorDrive interface {
	Accelerate()
	Decelerate()
}

// Movement tuning. Distances are world units per frame, like the rest of
// the visual layer.
const (
	forwardStep      = 0.4
	forwardStepSpeed = 1.0

	minAltitude = 27.0
	maxAltitude = 90.0

	verticalRamp = 0.02
	verticalCap  = 0.3

	rotationRamp     = 0.0005
	rotationCap      = 0.01
	rotationCapSpeed = 0.02
)

// MovementIntegrator advances the vehicle from the per-frame input
// snapshot and feeds the attitude and drive subsystems accordingly. It
// is called synchronously at the top of every frame, before the
// scheduler ticks the self-animating subsystems.
type MovementIntegrator struct {
	vehicle  *Node
	attitude TiltController
	drive    RotorDrive

	// Ramping accumulators: held keys build speed gradually, releasing
	// them bleeds it off at the same rate.
	verticalSpeed float64
	rotationSpeed float64

	// InTransition suppresses all control for the frame after the
	// forward step (scripted fly-in). Repositioning gates only the
	// descend branch while an external system is pulling the vehicle
	// back into range.
	InTransition  bool
	Repositioning bool
}

func NewMovementIntegrator(vehicle *Node, attitude TiltController, drive RotorDrive) *MovementIntegrator {
	return &MovementIntegrator{vehicle: vehicle, attitude: attitude, drive: drive}
}

// Advance runs one frame of movement. Forward travel always happens;
// everything else reacts to the snapshot.
func (m *MovementIntegrator) Advance(in InputSnapshot) {
	m.stepForward(in.SpeedMode)
	if m.InTransition {
		return
	}

	vert := m.verticalDirection(in)
	horiz := m.horizontalDirection(in)

	if vert != 0 {
		m.verticalSpeed = clamp(m.verticalSpeed+verticalRamp, 0, verticalCap)
		m.vehicle.Position.Y += m.verticalSpeed * float64(vert)
		m.drive.Accelerate()
	} else {
		m.verticalSpeed = clamp(m.verticalSpeed-verticalRamp, 0, verticalCap)
		m.drive.Decelerate()
		if horiz == 0 {
			m.attitude.Stabilize()
		}
	}

	if horiz != 0 {
		limit := rotationCap
		if in.SpeedMode {
			limit = rotationCapSpeed
		}
		m.rotationSpeed = clamp(m.rotationSpeed+rotationRamp, 0, limit)
		m.vehicle.Rotation.Y += m.rotationSpeed * float64(horiz)
	} else {
		m.rotationSpeed = clamp(m.rotationSpeed-rotationRamp, 0, rotationCapSpeed)
		if vert == 0 {
			m.attitude.Stabilize()
		}
	}

	m.applyTilt(vert, horiz)
}

// stepForward advances along the current yaw heading. The integrator
// also steers yaw, so forward follows the nose rather than a fixed
// world axis.
func (m *MovementIntegrator) stepForward(speedMode bool) {
	step := forwardStep
	if speedMode {
		step = forwardStepSpeed
	}
	yaw := m.vehicle.Rotation.Y
	m.vehicle.Position.X += math.Sin(yaw) * step
	m.vehicle.Position.Z += math.Cos(yaw) * step
}

// verticalDirection returns +1 climbing, -1 descending, 0 neutral.
// Holding both up and down cancels out, and the altitude envelope or an
// active repositioning pull can veto a branch.
func (m *MovementIntegrator) verticalDirection(in InputSnapshot) int {
	up := in.Up && !in.Down && m.vehicle.Position.Y < maxAltitude
	down := in.Down && !in.Up && m.vehicle.Position.Y > minAltitude && !m.Repositioning
	switch {
	case up:
		return 1
	case down:
		return -1
	}
	return 0
}

// horizontalDirection returns +1 turning left, -1 turning right, 0
// neutral. Left and right together cancel like the vertical pair.
func (m *MovementIntegrator) horizontalDirection(in InputSnapshot) int {
	switch {
	case in.Left && !in.Right:
		return 1
	case in.Right && !in.Left:
		return -1
	}
	return 0
}

// applyTilt issues exactly one attitude call for the frame's active
// directions. Diagonals use the compound helpers so both axes get their
// targets from a single call instead of two fighting single-axis steps.
func (m *MovementIntegrator) applyTilt(vert, horiz int) {
	switch {
	case vert > 0 && horiz > 0:
		m.attitude.TiltForwardLeft()
	case vert > 0 && horiz < 0:
		m.attitude.TiltForwardRight()
	case vert < 0 && horiz > 0:
		m.attitude.TiltBackwardLeft()
	case vert < 0 && horiz < 0:
		m.attitude.TiltBackwardRight()
	case vert > 0:
		m.attitude.TiltForward()
	case vert < 0:
		m.attitude.TiltBackward()
	case horiz > 0:
		m.attitude.TiltLeft()
	case horiz < 0:
		m.attitude.TiltRight()
	}
}
