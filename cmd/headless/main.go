package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rajpdus/quad-tok/internal/sim"
)

// Scripted input phases for exercising the rig without a window: climb,
// then turn while climbing, then idle out and watch everything decay.
func scriptedInput(frame, steps int) sim.InputSnapshot {
	switch {
	case frame < steps/3:
		return sim.InputSnapshot{Up: true}
	case frame < 2*steps/3:
		return sim.InputSnapshot{Up: true, Left: true, SpeedMode: true}
	}
	return sim.InputSnapshot{}
}

func main() {
	steps := flag.Int("steps", 600, "Number of fixed updates to run")
	ups := flag.Int("ups", 60, "Fixed updates per second")
	configPath := flag.String("config", "", "Optional JSON config file")
	hover := flag.Bool("hover", true, "Start the hover oscillator")
	transition := flag.Bool("transition", false, "Run with the fly-in transition flag set")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	rig := sim.NewRig(cfg, log)
	if *hover {
		rig.Hover.Start()
	}
	rig.Integrator.InTransition = *transition

	if *ups < 1 {
		*ups = 60
	}
	dt := 1.0 / float64(*ups)
	for frame := 0; frame < *steps; frame++ {
		rig.Step(scriptedInput(frame, *steps), dt)
	}

	v := rig.Vehicle
	tilt := rig.Attitude.CurrentTilt()
	log.Info().
		Int("steps", *steps).
		Float64("x", v.Position.X).
		Float64("y", v.Position.Y).
		Float64("z", v.Position.Z).
		Float64("yaw", v.Rotation.Y).
		Float64("pitch", tilt.Pitch).
		Float64("roll", tilt.Roll).
		Float64("rotorSpeed", rig.Drive.Speed()).
		Msg("run complete")
}
