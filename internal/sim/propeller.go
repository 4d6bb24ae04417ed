package sim

import "github.com/rs/zerolog"

// Speed presets in radians of blade yaw per frame. Idle and fast double
// as the hard clamp bounds for Accelerate/Decelerate.
const (
	SpeedIdle   = 0.1
	SpeedSlow   = 0.15
	SpeedMedium = 0.25
	SpeedFast   = 0.4

	accelFactor = 1.2
	decelFactor = 0.8
)

var speedPresets = map[string]float64{
	"idle":   SpeedIdle,
	"slow":   SpeedSlow,
	"medium": SpeedMedium,
	"fast":   SpeedFast,
}

// PropellerDrive spins a vehicle's rotor blades. Adjacent rotors spin in
// opposite directions, like the CW/CCW pairing on a real quad, purely
// for the visual; there is no torque model behind it.
type PropellerDrive struct {
	rotors []*Node
	speed  float64

	sched  *Scheduler
	task   *Task
	active bool
	log    zerolog.Logger
}

// NewPropellerDrive resolves the rotor set under vehicle and starts out
// inactive at idle speed. A vehicle with no discoverable rotors is fine;
// the drive just has nothing to turn.
func NewPropellerDrive(vehicle *Node, sched *Scheduler, rotorNames []string, log zerolog.Logger) *PropellerDrive {
	return &PropellerDrive{
		rotors: FindRotors(vehicle, rotorNames, log),
		speed:  SpeedIdle,
		sched:  sched,
		log:    log,
	}
}

// Start begins the per-frame spin. Calling it while already active is a
// no-op.
func (d *PropellerDrive) Start() {
	if d.active {
		return
	}
	d.active = true
	d.task = d.sched.Register(d.step)
}

// Stop cancels the pending frame callback. Safe to call repeatedly and
// while inactive.
func (d *PropellerDrive) Stop() {
	if !d.active {
		return
	}
	d.active = false
	d.task.Cancel()
	d.task = nil
}

// SetSpeed switches to a named preset. Unknown names are ignored.
func (d *PropellerDrive) SetSpeed(preset string) {
	v, ok := speedPresets[preset]
	if !ok {
		d.log.Debug().Str("preset", preset).Msg("ignoring unknown speed preset")
		return
	}
	d.speed = v
}

// Accelerate nudges the spin rate up, capped at the fast preset.
func (d *PropellerDrive) Accelerate() {
	d.speed = clamp(d.speed*accelFactor, SpeedIdle, SpeedFast)
}

// Decelerate nudges the spin rate down, floored at the idle preset.
func (d *PropellerDrive) Decelerate() {
	d.speed = clamp(d.speed*decelFactor, SpeedIdle, SpeedFast)
}

func (d *PropellerDrive) Speed() float64 { return d.speed }

func (d *PropellerDrive) Active() bool { return d.active }

// step advances each blade by the current speed, alternating direction
// by rotor index parity.
func (d *PropellerDrive) step(dt float64) {
	if !d.active {
		return
	}
	for i, r := range d.rotors {
		dir := 1.0
		if i%2 == 1 {
			dir = -1.0
		}
		r.Rotation.Y += d.speed * dir
	}
}
