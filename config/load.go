package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for configuration files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported config format")

// iniFile is the gcfg layout: all keys live under [simulation]
type iniFile struct {
	Simulation SimulationConfig
}

// LoadFile reads path over the defaults; the format is chosen by extension
// Keys absent from the file keep their default values
func LoadFile(path string) (SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext (".toml", ".yaml", ".ini", ...) over the defaults
func Decode(data []byte, ext string) (SimulationConfig, error) {
	cfg := Default()

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return SimulationConfig{}, fmt.Errorf("parse toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SimulationConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	case "ini", "gcfg", "conf":
		file := iniFile{Simulation: cfg}
		if err := gcfg.ReadStringInto(&file, string(data)); err != nil {
			return SimulationConfig{}, fmt.Errorf("parse ini: %w", err)
		}
		cfg = file.Simulation
	default:
		return SimulationConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}

// Encode renders cfg as TOML, the format written by the front-end's -dump flag
func Encode(cfg SimulationConfig) ([]byte, error) {
	return toml.Marshal(cfg)
}
