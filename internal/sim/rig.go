package sim

import "github.com/rs/zerolog"

// Rig bundles a vehicle node with its animation subsystems and fixes
// the per-frame execution order. It is the composition shared by the
// windowed viewer and the headless runner.
type Rig struct {
	Vehicle    *Node
	Scheduler  *Scheduler
	Attitude   *AttitudeController
	Drive      *PropellerDrive
	Hover      *HoverOscillator
	Integrator *MovementIntegrator
}

// NewRig assembles the subsystems around a fresh quadcopter node. The
// propellers start spinning immediately; hover stays off until the
// caller starts it at a settled altitude.
func NewRig(cfg Config, log zerolog.Logger) *Rig {
	vehicle := NewQuadcopterNode()
	vehicle.Position.Y = cfg.StartAltitude

	sched := NewScheduler()
	attitude := NewAttitudeController(vehicle)
	drive := NewPropellerDrive(vehicle, sched, cfg.RotorNames, log)
	hover := NewHoverOscillator(vehicle, sched, cfg.Hover)

	attitude.ResetTilt()
	drive.Start()

	return &Rig{
		Vehicle:    vehicle,
		Scheduler:  sched,
		Attitude:   attitude,
		Drive:      drive,
		Hover:      hover,
		Integrator: NewMovementIntegrator(vehicle, attitude, drive),
	}
}

// Step runs one frame in the documented order: the integrator first,
// synchronously, then the scheduled subsystems (propellers, then hover)
// in registration order. Hover writes Y last, so while it is active its
// absolute base+offset wins over the integrator's vertical movement for
// the frame.
func (r *Rig) Step(in InputSnapshot, dt float64) {
	r.Integrator.Advance(in)
	r.Scheduler.Tick(dt)
}
