package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/rajpdus/quad-tok/internal/sim"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Optional JSON config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := glfw.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize GLFW")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1024, 768, "Quadcopter Stage", nil, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create window")
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize OpenGL")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.5, 0.7, 0.9, 1.0) // sky
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("context ready")

	sim.NewSimulator(cfg, log).Run(window)
}
