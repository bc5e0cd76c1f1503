package main

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stellar/audio"
	"github.com/lixenwraith/stellar/config"
	"github.com/lixenwraith/stellar/engine"
	"github.com/lixenwraith/stellar/input"
)

func TestEnvFiles(t *testing.T) {
	assert.Equal(t, []string{".env", "local.env"}, envFiles(" .env, local.env ,,"))
	assert.Nil(t, envFiles(""))
}

func TestFlagOverridesOnlyVisited(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, flagOverrides(&cfg))
	assert.Equal(t, config.Default(), cfg, "no flags set on the test command line")
}

func TestFlagOverridesRejectsUnknownVelocity(t *testing.T) {
	require.NoError(t, flag.Set("velocity", "sticky"))
	t.Cleanup(func() { _ = flag.Set("velocity", "inertial") })

	cfg := config.Default()
	err := flagOverrides(&cfg)
	assert.ErrorIs(t, err, config.ErrInvalidVelocityMode)
	assert.ErrorContains(t, err, "-velocity")

	_, err = config.Layered{Overrides: flagOverrides}.Load()
	assert.ErrorIs(t, err, config.ErrInvalidVelocityMode)
}

func TestLayeredWithOverrides(t *testing.T) {
	source := config.Layered{
		Overrides: func(c *config.SimulationConfig) error {
			c.MaxPoints = 10
			c.Seed = 7
			return nil
		},
	}
	cfg, err := source.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxPoints)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

// failingSource stands in for a config file that no longer parses
type failingSource struct{}

func (failingSource) Load() (config.SimulationConfig, error) {
	return config.SimulationConfig{}, errors.New("bad config file")
}

func testAppConfig() config.SimulationConfig {
	cfg := config.Default()
	cfg.Width, cfg.Height = 20, 20
	cfg.MaxPoints = 5
	cfg.FrameRate = 1
	cfg.Seed = 1
	return cfg
}

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	sound := audio.NewSoundManager(audio.DefaultAudioConfig())
	a, err := newApp(screen, testAppConfig(), input.DefaultKeyTable(), sound, NewLogger("error"))
	require.NoError(t, err)
	t.Cleanup(func() { a.sim.Stop() })
	return a, screen
}

func TestRestartFailureKeepsStoppedRun(t *testing.T) {
	a, _ := newTestApp(t)
	old := a.sim

	err := a.restart(failingSource{})
	assert.ErrorContains(t, err, "bad config file")
	assert.Same(t, old, a.sim)
	assert.Equal(t, engine.StateStopped, old.State())

	// Detached router still handles input
	outcome, err := a.router.Handle(input.Intent{Type: input.IntentTogglePause})
	require.NoError(t, err)
	assert.Equal(t, input.OutcomeContinue, outcome)

	// A fixed source restarts normally
	require.NoError(t, a.restart(config.Static(testAppConfig())))
	assert.NotSame(t, old, a.sim)
	assert.Equal(t, engine.StateRunning, a.sim.State())
}

func TestLoopSurvivesFailedRestart(t *testing.T) {
	a, screen := newTestApp(t)

	result := make(chan error, 1)
	go func() { result <- a.loop(failingSource{}) }()

	screen.InjectKey(tcell.KeyRune, 'R', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-result:
		assert.NoError(t, err, "quit after a failed restart ends cleanly")
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not return")
	}
	assert.Equal(t, engine.StateStopped, a.sim.State())
}
