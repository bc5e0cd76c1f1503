package config

// Source supplies a configuration for a new run
type Source interface {
	Load() (SimulationConfig, error)
}

// Static is a Source returning a fixed configuration
type Static SimulationConfig

// Load implements Source
func (s Static) Load() (SimulationConfig, error) {
	return SimulationConfig(s), nil
}

// File is a Source reading a configuration file on every Load
type File string

// Load implements Source
func (f File) Load() (SimulationConfig, error) {
	return LoadFile(string(f))
}

// Layered resolves defaults, then an optional file, then .env files and the environment
// Overrides are applied last, e.g. from command-line flags; an error aborts the load
type Layered struct {
	Path      string
	EnvFiles  []string
	Overrides func(*SimulationConfig) error
}

// Load implements Source
func (l Layered) Load() (SimulationConfig, error) {
	cfg := Default()
	if l.Path != "" {
		var err error
		if cfg, err = LoadFile(l.Path); err != nil {
			return SimulationConfig{}, err
		}
	}

	if err := LoadDotEnv(l.EnvFiles...); err != nil {
		return SimulationConfig{}, err
	}
	cfg, err := ApplyEnv(cfg)
	if err != nil {
		return SimulationConfig{}, err
	}

	if l.Overrides != nil {
		if err := l.Overrides(&cfg); err != nil {
			return SimulationConfig{}, err
		}
	}
	return cfg, nil
}
