package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/stellar/parameter"
)

var (
	ErrInvalidFrameRate    = errors.New("frame rate must be positive")
	ErrInvalidMaxPoints    = errors.New("max points must be positive")
	ErrInvalidMass         = errors.New("default mass must be positive")
	ErrInvalidSize         = errors.New("default size must be positive")
	ErrInvalidBounds       = errors.New("field bounds must be positive")
	ErrTooManyPoints       = errors.New("max points exceeds field cells")
	ErrInvalidGravity      = errors.New("gravitational constant must be finite")
	ErrInvalidVelocityMode = errors.New("unknown velocity mode")
)

// VelocityMode selects whether velocity persists across ticks
type VelocityMode string

const (
	VelocityInertial VelocityMode = parameter.VelocityInertial
	VelocityReset    VelocityMode = parameter.VelocityReset
)

// UnmarshalText accepts mode names case-insensitively and rejects unknown ones
func (m *VelocityMode) UnmarshalText(text []byte) error {
	mode := VelocityMode(strings.ToLower(strings.TrimSpace(string(text))))
	switch mode {
	case VelocityInertial, VelocityReset:
		*m = mode
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVelocityMode, string(text))
}

// MarshalText implements encoding.TextMarshaler
func (m VelocityMode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// SimulationConfig is immutable for the duration of a run
type SimulationConfig struct {
	FrameRate             int          `toml:"frame_rate" yaml:"frame_rate" gcfg:"frame-rate"`
	MaxPoints             int          `toml:"max_points" yaml:"max_points" gcfg:"max-points"`
	DefaultMass           float64      `toml:"default_mass" yaml:"default_mass" gcfg:"default-mass"`
	DefaultSize           float64      `toml:"default_size" yaml:"default_size" gcfg:"default-size"`
	GravitationalConstant float64      `toml:"gravitational_constant" yaml:"gravitational_constant" gcfg:"gravitational-constant"`
	FillColor             string       `toml:"fill" yaml:"fill" gcfg:"fill"`
	Width                 int          `toml:"width" yaml:"width" gcfg:"width"`
	Height                int          `toml:"height" yaml:"height" gcfg:"height"`
	Seed                  int64        `toml:"seed" yaml:"seed" gcfg:"seed"`
	VelocityMode          VelocityMode `toml:"velocity_mode" yaml:"velocity_mode" gcfg:"velocity-mode"`
}

// Default returns the stock configuration
func Default() SimulationConfig {
	return SimulationConfig{
		FrameRate:             parameter.DefaultFrameRate,
		MaxPoints:             parameter.DefaultMaxPoints,
		DefaultMass:           parameter.DefaultMass,
		DefaultSize:           parameter.DefaultSize,
		GravitationalConstant: parameter.DefaultGravitationalConstant,
		FillColor:             parameter.DefaultFill,
		Width:                 parameter.DefaultFieldWidth,
		Height:                parameter.DefaultFieldHeight,
		VelocityMode:          VelocityInertial,
	}
}

// Validate rejects configurations that cannot start a run
func (c SimulationConfig) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, c.FrameRate)
	}
	if c.MaxPoints <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxPoints, c.MaxPoints)
	}
	if !(c.DefaultMass > 0) || math.IsInf(c.DefaultMass, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidMass, c.DefaultMass)
	}
	if !(c.DefaultSize > 0) || math.IsInf(c.DefaultSize, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, c.DefaultSize)
	}
	if math.IsNaN(c.GravitationalConstant) || math.IsInf(c.GravitationalConstant, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidGravity, c.GravitationalConstant)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, c.Width, c.Height)
	}
	// Division keeps the check free of int overflow
	if c.Width > parameter.MaxFieldCells/c.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidBounds, c.Width, c.Height, parameter.MaxFieldCells)
	}
	if cells := c.Width * c.Height; c.MaxPoints > cells {
		return fmt.Errorf("%w: %d points, %dx%d field has %d cells", ErrTooManyPoints, c.MaxPoints, c.Width, c.Height, cells)
	}
	switch c.VelocityMode {
	case VelocityInertial, VelocityReset:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVelocityMode, c.VelocityMode)
	}
	return nil
}

// TickInterval returns the fixed tick period, 1000/frameRate milliseconds
func (c SimulationConfig) TickInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// VolumeMultiplier returns defaultSize / defaultMass
func (c SimulationConfig) VolumeMultiplier() float64 {
	return c.DefaultSize / c.DefaultMass
}

// String summarizes the physics-relevant fields for logging
func (c SimulationConfig) String() string {
	return fmt.Sprintf("fps=%d points=%d mass=%g size=%g G=%g field=%dx%d seed=%d mode=%s",
		c.FrameRate, c.MaxPoints, c.DefaultMass, c.DefaultSize, c.GravitationalConstant,
		c.Width, c.Height, c.Seed, c.VelocityMode)
}
