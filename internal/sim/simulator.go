//go:build !test
// +build !test

package sim

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

// Simulator is the windowed front end: it owns the rig plus everything
// that needs a GL context or a speaker.
type Simulator struct {
	rig      *Rig
	cfg      Config
	camera   *Camera
	renderer *Renderer
	input    *InputHandler
	audio    *RotorAudio
	log      zerolog.Logger

	fps float64
}

func NewSimulator(cfg Config, log zerolog.Logger) *Simulator {
	return &Simulator{
		rig:      NewRig(cfg, log),
		cfg:      cfg,
		camera:   NewCamera(),
		renderer: NewRenderer(),
		input:    NewInputHandler(),
		log:      log,
	}
}

func (s *Simulator) Run(window *glfw.Window) {
	s.input.SetupCallbacks(window)
	s.initAudio()
	if s.audio != nil {
		defer s.audio.Close()
	}
	s.rig.Hover.Start()
	s.camera.Update(s.rig.Vehicle)

	s.log.Info().
		Float64("altitude", s.rig.Vehicle.Position.Y).
		Msg("viewer running: arrows steer, shift = speed mode, H hover, 1-4 presets, C camera, R level, Esc quit")

	// Fixed timestep with an accumulator, clamped so a stall cannot
	// spiral into an unbounded catch-up burst.
	target := time.Second / 60
	acc := time.Duration(0)
	prev := time.Now()
	telemetry := 0.0

	for !window.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		if frame > time.Second/4 {
			frame = time.Second / 4
		}
		acc += frame

		dtFrame := frame.Seconds()
		if dtFrame > 0 {
			s.fps = s.fps*0.9 + 0.1/dtFrame
		}

		s.processInput(window)

		steps := 0
		for acc >= target && steps < 5 {
			s.update(target.Seconds())
			acc -= target
			steps++
		}

		s.render(window)

		telemetry += dtFrame
		if telemetry >= s.cfg.TelemetryInterval {
			s.logTelemetry()
			telemetry = 0
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (s *Simulator) initAudio() {
	if !s.cfg.AudioEnabled {
		return
	}
	audio, err := NewRotorAudio()
	if err != nil {
		// Audio is a garnish; a machine without a sound device still
		// gets a working viewer.
		s.log.Warn().Err(err).Msg("audio disabled")
		return
	}
	s.audio = audio
	audio.SetActive(true)
}

func (s *Simulator) processInput(window *glfw.Window) {
	if s.input.WasKeyPressed(glfw.KeyEscape) {
		window.SetShouldClose(true)
	}
	if s.input.WasKeyPressed(glfw.KeyH) {
		if s.rig.Hover.Active() {
			s.rig.Hover.Stop()
		} else {
			s.rig.Hover.Start()
		}
	}
	if s.input.WasKeyPressed(glfw.KeyP) {
		if s.rig.Drive.Active() {
			s.rig.Drive.Stop()
		} else {
			s.rig.Drive.Start()
		}
	}
	if s.input.WasKeyPressed(glfw.KeyR) {
		s.rig.Attitude.ResetTilt()
	}
	if s.input.WasKeyPressed(glfw.KeyC) {
		s.camera.CycleMode()
	}
	for key, preset := range map[glfw.Key]string{
		glfw.Key1: "idle",
		glfw.Key2: "slow",
		glfw.Key3: "medium",
		glfw.Key4: "fast",
	} {
		if s.input.WasKeyPressed(key) {
			s.rig.Drive.SetSpeed(preset)
		}
	}
}

func (s *Simulator) update(dt float64) {
	s.rig.Step(s.input.Snapshot(), dt)
	s.camera.Update(s.rig.Vehicle)

	if s.audio != nil {
		s.audio.SetSpeed(s.rig.Drive.Speed())
		s.audio.SetActive(s.rig.Drive.Active())
	}
}

func (s *Simulator) render(window *glfw.Window) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	s.renderer.SetCamera(s.camera.Position)
	s.renderer.DrawScene(s.rig.Vehicle, s.camera.ViewMatrix(), s.camera.ProjectionMatrix(width, height))
}

func (s *Simulator) logTelemetry() {
	v := s.rig.Vehicle
	tilt := s.rig.Attitude.CurrentTilt()
	s.log.Info().
		Float64("x", v.Position.X).
		Float64("y", v.Position.Y).
		Float64("z", v.Position.Z).
		Float64("yaw", v.Rotation.Y).
		Float64("pitch", tilt.Pitch).
		Float64("roll", tilt.Roll).
		Float64("rotorSpeed", s.rig.Drive.Speed()).
		Bool("hover", s.rig.Hover.Active()).
		Float64("fps", s.fps).
		Msg("telemetry")
}
