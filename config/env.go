package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognised by ApplyEnv
const (
	EnvFrameRate    = "STELLAR_FRAME_RATE"
	EnvMaxPoints    = "STELLAR_MAX_POINTS"
	EnvDefaultMass  = "STELLAR_DEFAULT_MASS"
	EnvDefaultSize  = "STELLAR_DEFAULT_SIZE"
	EnvGravity      = "STELLAR_GRAVITATIONAL_CONSTANT"
	EnvFill         = "STELLAR_FILL"
	EnvWidth        = "STELLAR_WIDTH"
	EnvHeight       = "STELLAR_HEIGHT"
	EnvSeed         = "STELLAR_SEED"
	EnvVelocityMode = "STELLAR_VELOCITY_MODE"
)

// LoadDotEnv loads variables from the given .env files into the process environment
// Missing files are skipped; already-set variables win
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays STELLAR_* variables on cfg
func ApplyEnv(cfg SimulationConfig) (SimulationConfig, error) {
	var err error
	if cfg.FrameRate, err = envInt(EnvFrameRate, cfg.FrameRate); err != nil {
		return cfg, err
	}
	if cfg.MaxPoints, err = envInt(EnvMaxPoints, cfg.MaxPoints); err != nil {
		return cfg, err
	}
	if cfg.DefaultMass, err = envFloat(EnvDefaultMass, cfg.DefaultMass); err != nil {
		return cfg, err
	}
	if cfg.DefaultSize, err = envFloat(EnvDefaultSize, cfg.DefaultSize); err != nil {
		return cfg, err
	}
	if cfg.GravitationalConstant, err = envFloat(EnvGravity, cfg.GravitationalConstant); err != nil {
		return cfg, err
	}
	if cfg.Width, err = envInt(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, perr)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvFill); ok {
		cfg.FillColor = v
	}
	if v, ok := os.LookupEnv(EnvVelocityMode); ok && v != "" {
		if err := cfg.VelocityMode.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvVelocityMode, err)
		}
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
