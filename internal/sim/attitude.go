package sim

// Tilt bounds in radians, per direction. The smoothing step interpolates
// toward these fixed targets and therefore can never overshoot them.
const (
	maxTiltForward  = 0.2
	maxTiltBackward = -0.1
	maxTiltLeft     = 0.15
	maxTiltRight    = -0.15

	tiltFactor   = 0.1
	returnFactor = 0.05

	// Diagonal compounds use reduced targets on both axes so the
	// combined lean stays comparable to a single-axis tilt.
	diagonalScale = 0.7
)

// Tilt is the current attitude offset: pitch leans the nose, roll leans
// a side.
type Tilt struct {
	Pitch float64
	Roll  float64
}

// AttitudeController leans the vehicle body in response to directional
// input. Each call performs one exponential smoothing step toward the
// direction's bound and writes the result straight into the vehicle's
// rotation, so callers drive it once per frame per held direction.
//
// Single-axis calls leave the other axis untouched; use the diagonal
// compounds to set both axes from one input frame without the second
// call clobbering the first's target.
type AttitudeController struct {
	vehicle *Node
	tilt    Tilt
}

func NewAttitudeController(vehicle *Node) *AttitudeController {
	return &AttitudeController{vehicle: vehicle}
}

func (a *AttitudeController) TiltForward()  { a.stepPitch(maxTiltForward) }
func (a *AttitudeController) TiltBackward() { a.stepPitch(maxTiltBackward) }
func (a *AttitudeController) TiltLeft()     { a.stepRoll(maxTiltLeft) }
func (a *AttitudeController) TiltRight()    { a.stepRoll(maxTiltRight) }

func (a *AttitudeController) TiltForwardLeft() {
	a.stepPitch(maxTiltForward * diagonalScale)
	a.stepRoll(maxTiltLeft * diagonalScale)
}

func (a *AttitudeController) TiltForwardRight() {
	a.stepPitch(maxTiltForward * diagonalScale)
	a.stepRoll(maxTiltRight * diagonalScale)
}

func (a *AttitudeController) TiltBackwardLeft() {
	a.stepPitch(maxTiltBackward * diagonalScale)
	a.stepRoll(maxTiltLeft * diagonalScale)
}

func (a *AttitudeController) TiltBackwardRight() {
	a.stepPitch(maxTiltBackward * diagonalScale)
	a.stepRoll(maxTiltRight * diagonalScale)
}

// Stabilize decays both axes one step toward level. Pure multiplicative
// decay: it converges on zero but never lands exactly there, which keeps
// the return-to-level motion from ending in a visible snap.
func (a *AttitudeController) Stabilize() {
	a.tilt.Pitch *= 1 - returnFactor
	a.tilt.Roll *= 1 - returnFactor
	a.apply()
}

// ResetTilt hard-zeroes the attitude. Only meant for (re)initialization,
// never mid-flight.
func (a *AttitudeController) ResetTilt() {
	a.tilt = Tilt{}
	a.apply()
}

func (a *AttitudeController) CurrentTilt() Tilt { return a.tilt }

func (a *AttitudeController) stepPitch(target float64) {
	a.tilt.Pitch += (target - a.tilt.Pitch) * tiltFactor
	a.apply()
}

func (a *AttitudeController) stepRoll(target float64) {
	a.tilt.Roll += (target - a.tilt.Roll) * tiltFactor
	a.apply()
}

func (a *AttitudeController) apply() {
	a.vehicle.Rotation.X = a.tilt.Pitch
	a.vehicle.Rotation.Z = a.tilt.Roll
}
