package sim

// InputSnapshot is the set of directional inputs held during one frame,
// plus the speed-mode flag. The input layer rebuilds it every frame; the
// integrator treats it as read-only.
type InputSnapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	SpeedMode bool
}

// Idle reports whether no directional input is held at all.
func (in InputSnapshot) Idle() bool {
	return !in.Up && !in.Down && !in.Left && !in.Right
}
