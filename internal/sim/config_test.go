package sim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rajpdus/quad-tok/internal/sim"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := sim.LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, sim.DefaultHoverConfig(), cfg.Hover)
	require.Equal(t, sim.DefaultRotorNames, cfg.RotorNames)
	require.Equal(t, 50.0, cfg.StartAltitude)
	require.True(t, cfg.AudioEnabled)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage.json")
	err := os.WriteFile(path, []byte(`{
  "hover": {"amplitude": 0.9},
  "startAltitude": 35,
  "audioEnabled": false
}`), 0644)
	require.NoError(t, err)

	cfg, err := sim.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 0.9, cfg.Hover.Amplitude)
	require.Equal(t, sim.DefaultHoverConfig().Frequency, cfg.Hover.Frequency, "unset keys keep defaults")
	require.Equal(t, 35.0, cfg.StartAltitude)
	require.False(t, cfg.AudioEnabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := sim.LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
