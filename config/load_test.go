package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "sim.toml", `
frame_rate = 60
max_points = 250
default_mass = 0.25
gravitational_constant = 0.05
velocity_mode = "reset"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, 250, cfg.MaxPoints)
	assert.Equal(t, 0.25, cfg.DefaultMass)
	assert.Equal(t, 0.05, cfg.GravitationalConstant)
	assert.Equal(t, VelocityReset, cfg.VelocityMode)
	// untouched keys keep defaults
	assert.Equal(t, 1.0, cfg.DefaultSize)
	assert.Equal(t, 750, cfg.Width)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "sim.yaml", `
max_points: 42
fill: "#ff8800"
width: 100
height: 80
seed: 9
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.MaxPoints)
	assert.Equal(t, "#ff8800", cfg.FillColor)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 120, cfg.FrameRate)
}

func TestLoadFile_INI(t *testing.T) {
	path := writeFile(t, "sim.ini", `
[simulation]
frame-rate = 30
default-size = 2.5
velocity-mode = inertial
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 2.5, cfg.DefaultSize)
	assert.Equal(t, VelocityInertial, cfg.VelocityMode)
	assert.Equal(t, 1000, cfg.MaxPoints)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "sim.json", `{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, "bad.toml", "frame_rate = ["))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 77
	cfg.VelocityMode = VelocityReset

	data, err := Encode(cfg)
	require.NoError(t, err)

	back, err := Decode(data, ".toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
