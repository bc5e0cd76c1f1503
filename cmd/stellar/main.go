package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar/audio"
	"github.com/lixenwraith/stellar/config"
	"github.com/lixenwraith/stellar/core"
	"github.com/lixenwraith/stellar/engine"
	"github.com/lixenwraith/stellar/input"
	"github.com/lixenwraith/stellar/render"
	"github.com/lixenwraith/stellar/status"
	"github.com/lixenwraith/stellar/view"
)

var (
	configFlag   = flag.String("config", "", "Configuration file: .toml, .yaml or .ini")
	envFlag      = flag.String("env", ".env", "Comma-separated .env files; missing files are skipped")
	keymapFlag   = flag.String("keymap", "", "Keymap TOML file merged over the default bindings")
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/stellar.log")
	soundFlag    = flag.Bool("sound", false, "Enable merge sounds")
	seedFlag     = flag.Int64("seed", 0, "Field placement seed; 0 picks a random seed")
	pointsFlag   = flag.Int("points", 0, "Override max points")
	fpsFlag      = flag.Int("fps", 0, "Override frame rate")
	velocityFlag = flag.String("velocity", "", "Velocity mode: inertial or reset")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stellar: %v\n", err)
		os.Exit(1)
	}
}

// flagOverrides applies only the flags given on the command line
func flagOverrides(cfg *config.SimulationConfig) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "points":
			cfg.MaxPoints = *pointsFlag
		case "fps":
			cfg.FrameRate = *fpsFlag
		case "velocity":
			if verr := cfg.VelocityMode.UnmarshalText([]byte(*velocityFlag)); verr != nil {
				err = fmt.Errorf("-velocity: %w", verr)
			}
		}
	})
	return err
}

func envFiles(list string) []string {
	var files []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

func run() error {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	level := "info"
	if *debugFlag {
		level = "debug"
	}
	logger := NewLogger(level)

	source := config.Layered{
		Path:      *configFlag,
		EnvFiles:  envFiles(*envFlag),
		Overrides: flagOverrides,
	}
	cfg, err := source.Load()
	if err != nil {
		return err
	}
	// Fail before touching the terminal
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Infof("configuration: %s", cfg)

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		if keys, err = input.LoadKeyConfigFile(*keymapFlag); err != nil {
			return err
		}
	}

	audioCfg := audio.LoadAudioConfig()
	if *soundFlag {
		audioCfg.Enabled = true
	}
	sound := audio.NewSoundManager(audioCfg)
	if audioCfg.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warnf("audio unavailable, continuing silent: %v", err)
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before a crash report reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTELLAR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app, err := newApp(screen, cfg, keys, sound, logger)
	if err != nil {
		return err
	}
	return app.loop(source)
}

// app owns the terminal front-end for one process; runs come and go on restart
type app struct {
	screen   tcell.Screen
	view     *view.State
	registry *status.Registry
	renderer *render.TerminalRenderer
	machine  *input.Machine
	router   *input.Router
	sound    *audio.SoundManager
	logger   *Logger
	sim      *engine.Simulation
}

func newApp(screen tcell.Screen, cfg config.SimulationConfig, keys *input.KeyTable, sound *audio.SoundManager, logger *Logger) (*app, error) {
	v := view.New(cfg.Width, cfg.Height)
	reg := status.NewRegistry()
	renderer, err := render.NewTerminalRenderer(screen, v, reg, cfg.FillColor)
	if err != nil {
		return nil, err
	}

	a := &app{
		screen:   screen,
		view:     v,
		registry: reg,
		renderer: renderer,
		machine:  input.NewMachineWithTable(keys),
		router:   input.NewRouter(v, renderer),
		sound:    sound,
		logger:   logger,
	}
	if err := a.start(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// start begins a new run over cfg and attaches it to the router
func (a *app) start(cfg config.SimulationConfig) error {
	sim, err := engine.Start(cfg, a.renderer,
		engine.WithLogger(a.logger),
		engine.WithRegistry(a.registry),
		engine.WithObserver(a.sound.OnReport),
		engine.WithViewHook(func() (int, int, float64) {
			a.view.Reset()
			return a.view.Cursor()
		}),
		engine.WithCursorListener(a.renderer.SetCursor),
	)
	if err != nil {
		return err
	}
	a.sim = sim
	a.router.SetController(sim)
	return nil
}

// restart stops the current run and starts another from a fresh configuration load
// On a load or start error the old run stays stopped and detached; the front-end keeps going
func (a *app) restart(source config.Source) error {
	a.sim.Stop()
	a.router.SetController(nil)

	cfg, err := source.Load()
	if err != nil {
		return fmt.Errorf("reload configuration: %w", err)
	}
	a.view.Resize(cfg.Width, cfg.Height)
	return a.start(cfg)
}

func (a *app) loop(source config.Source) error {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}, func(err error) {
		a.logger.Errorf("event poller: %v", err)
	})

	done := a.sim.Done()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				a.sim.Stop()
				return nil
			}
			intent := a.machine.Process(ev)
			if intent.Type == input.IntentResize {
				a.screen.Sync()
			}

			outcome, err := a.router.Handle(intent)
			if err != nil {
				a.logger.Errorf("%s: %v", intent.Type, err)
			}
			switch outcome {
			case input.OutcomeQuit:
				a.sim.Stop()
				return a.sim.Err()
			case input.OutcomeRestart:
				if err := a.restart(source); err != nil {
					a.logger.Errorf("restart failed, press R to retry: %v", err)
					done = nil
					continue
				}
				done = a.sim.Done()
			case input.OutcomeToggleMute:
				a.logger.Infof("sound muted: %t", a.sound.ToggleMute())
			}

		case <-done:
			// The run ended on its own; keep the last frame until quit or restart
			done = nil
			if err := a.sim.Err(); err != nil {
				a.sound.OnFault()
				if errors.Is(err, engine.ErrTickFault) {
					a.logger.Errorf("run faulted after %d ticks: %v", a.sim.TickCount(), err)
				}
			}
		}
	}
}
