package sim

import "math"

// HoverConfig tunes the idle-air disturbance wobble.
type HoverConfig struct {
	Amplitude     float64 // vertical peak offset, meters
	Frequency     float64 // phase multiplier
	LateralAmount float64 // sideways sway strength
}

// DefaultHoverConfig returns the stock wobble.
func DefaultHoverConfig() HoverConfig {
	return HoverConfig{Amplitude: 0.4, Frequency: 1.5, LateralAmount: 0.3}
}

// HoverOverrides carries optional replacement fields for UpdateConfig.
// Nil fields keep their previous values.
type HoverOverrides struct {
	Amplitude     *float64
	Frequency     *float64
	LateralAmount *float64
}

// mergeHoverConfig applies the non-nil override fields onto base.
func mergeHoverConfig(base HoverConfig, o HoverOverrides) HoverConfig {
	if o.Amplitude != nil {
		base.Amplitude = *o.Amplitude
	}
	if o.Frequency != nil {
		base.Frequency = *o.Frequency
	}
	if o.LateralAmount != nil {
		base.LateralAmount = *o.LateralAmount
	}
	return base
}

// Lateral sway is an accumulating nudge rather than an absolute offset,
// scaled way down so the drift stays visually negligible.
const lateralNudgeScale = 0.01

// hoverFrameTime is the nominal display frame; phase advances by this
// amount per tick regardless of the real delta.
const hoverFrameTime = 1.0 / 60.0

// HoverOscillator superimposes a small periodic wobble on the vehicle
// while it idles in the air.
//
// The two axes are deliberately asymmetric, matching the behavior this
// was ported from: Y is recomputed from the captured base every frame
// (self-correcting), while X accumulates tiny nudges with no bound
// beyond their ~1% magnitude. Known imprecision, kept for the visual.
type HoverOscillator struct {
	vehicle *Node
	config  HoverConfig

	phase  float64
	baseY  float64
	sched  *Scheduler
	task   *Task
	active bool
}

func NewHoverOscillator(vehicle *Node, sched *Scheduler, config HoverConfig) *HoverOscillator {
	return &HoverOscillator{vehicle: vehicle, sched: sched, config: config}
}

// Start captures the current altitude as the oscillation base and begins
// per-frame updates. No-op while already active; in particular the base
// is not recaptured.
func (h *HoverOscillator) Start() {
	if h.active {
		return
	}
	h.baseY = h.vehicle.Position.Y
	h.active = true
	h.task = h.sched.Register(h.step)
}

// Stop cancels the update and settles the vehicle back on the base
// altitude instead of freezing it mid-wave. Idempotent.
func (h *HoverOscillator) Stop() {
	if !h.active {
		return
	}
	h.active = false
	h.task.Cancel()
	h.task = nil
	h.vehicle.Position.Y = h.baseY
}

// SetBaseHeight overrides the oscillation base without touching the
// active state.
func (h *HoverOscillator) SetBaseHeight(y float64) {
	h.baseY = y
}

// UpdateConfig merges the given overrides into the live configuration.
func (h *HoverOscillator) UpdateConfig(o HoverOverrides) {
	h.config = mergeHoverConfig(h.config, o)
}

func (h *HoverOscillator) Config() HoverConfig { return h.config }

func (h *HoverOscillator) Active() bool { return h.active }

func (h *HoverOscillator) step(dt float64) {
	if !h.active {
		return
	}
	h.phase += hoverFrameTime
	h.vehicle.Position.Y = h.baseY + math.Sin(h.phase*h.config.Frequency)*h.config.Amplitude
	h.vehicle.Position.X += math.Cos(h.phase*h.config.Frequency*0.7) * h.config.LateralAmount * lateralNudgeScale
}
