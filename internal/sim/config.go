package sim

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config collects the runtime tunables. Everything has a default; a
// config file only needs the keys it wants to change.
type Config struct {
	Hover      HoverConfig
	RotorNames []string

	// Initial altitude the vehicle spawns at, inside the 27..90 flight
	// envelope the integrator enforces.
	StartAltitude float64

	TelemetryInterval float64 // seconds between telemetry lines
	AudioEnabled      bool
}

// LoadConfig reads defaults and, when path is non-empty, merges a JSON
// config file over them. A missing file at an explicit path is an error;
// unknown keys in the file are ignored.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("hover.amplitude", 0.4)
	v.SetDefault("hover.frequency", 1.5)
	v.SetDefault("hover.lateralAmount", 0.3)
	v.SetDefault("rotorNames", DefaultRotorNames)
	v.SetDefault("startAltitude", 50.0)
	v.SetDefault("telemetryInterval", 2.0)
	v.SetDefault("audioEnabled", true)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Config{
		Hover: HoverConfig{
			Amplitude:     v.GetFloat64("hover.amplitude"),
			Frequency:     v.GetFloat64("hover.frequency"),
			LateralAmount: v.GetFloat64("hover.lateralAmount"),
		},
		RotorNames:        v.GetStringSlice("rotorNames"),
		StartAltitude:     v.GetFloat64("startAltitude"),
		TelemetryInterval: v.GetFloat64("telemetryInterval"),
		AudioEnabled:      v.GetBool("audioEnabled"),
	}, nil
}
