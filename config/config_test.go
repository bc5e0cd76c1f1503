package config

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 120, cfg.FrameRate)
	assert.Equal(t, 1000, cfg.MaxPoints)
	assert.Equal(t, 1e-2, cfg.GravitationalConstant)
	assert.Equal(t, "#555555", cfg.FillColor)
	assert.Equal(t, VelocityInertial, cfg.VelocityMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationConfig)
		want   error
	}{
		{"zero frame rate", func(c *SimulationConfig) { c.FrameRate = 0 }, ErrInvalidFrameRate},
		{"negative points", func(c *SimulationConfig) { c.MaxPoints = -1 }, ErrInvalidMaxPoints},
		{"zero mass", func(c *SimulationConfig) { c.DefaultMass = 0 }, ErrInvalidMass},
		{"negative size", func(c *SimulationConfig) { c.DefaultSize = -2 }, ErrInvalidSize},
		{"zero width", func(c *SimulationConfig) { c.Width = 0 }, ErrInvalidBounds},
		{"field over cell cap", func(c *SimulationConfig) { c.Width, c.Height = 1<<13, 1<<12 }, ErrInvalidBounds},
		{"cell count wraps to a small product", func(c *SimulationConfig) {
			c.Width, c.Height, c.MaxPoints = math.MaxInt/2+2, 4, 3
		}, ErrInvalidBounds},
		{"more points than cells", func(c *SimulationConfig) {
			c.Width, c.Height, c.MaxPoints = 10, 10, 200
		}, ErrTooManyPoints},
		{"unknown mode", func(c *SimulationConfig) { c.VelocityMode = "sticky" }, ErrInvalidVelocityMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidate_ExactlyFullField(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height, cfg.MaxPoints = 10, 10, 100
	assert.NoError(t, cfg.Validate())

	cfg.MaxPoints = 50
	assert.NoError(t, cfg.Validate())
}

func TestValidate_SmallSizeAccepted(t *testing.T) {
	cfg := Default()
	cfg.DefaultSize = 0.3
	assert.NoError(t, cfg.Validate(), "any positive size is valid even when the initial volume is negative")
}

func TestValidate_CellCapBoundary(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 1<<12, 1<<12
	assert.NoError(t, cfg.Validate())
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = 100
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval())

	cfg.FrameRate = 0
	assert.Zero(t, cfg.TickInterval())
}

func TestVolumeMultiplier(t *testing.T) {
	cfg := Default()
	cfg.DefaultMass, cfg.DefaultSize = 0.25, 1
	assert.Equal(t, 4.0, cfg.VolumeMultiplier())
}

func TestVelocityMode_UnmarshalText(t *testing.T) {
	var m VelocityMode
	require.NoError(t, m.UnmarshalText([]byte("  Reset ")))
	assert.Equal(t, VelocityReset, m)

	for _, bad := range []string{"", "sticky", "inertia"} {
		err := m.UnmarshalText([]byte(bad))
		assert.ErrorIs(t, err, ErrInvalidVelocityMode, "%q", bad)
		assert.Equal(t, VelocityReset, m, "a rejected name leaves the mode unchanged")
	}
}
