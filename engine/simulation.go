package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stellar/config"
	"github.com/lixenwraith/stellar/core"
	"github.com/lixenwraith/stellar/physics"
	"github.com/lixenwraith/stellar/render"
	"github.com/lixenwraith/stellar/status"
)

var (
	// ErrStopped is returned by operations on a run that has ended
	ErrStopped = errors.New("simulation stopped")

	// ErrNotPaused is returned by StepOnce while the clock is running
	ErrNotPaused = errors.New("simulation not paused")
)

// State is the lifecycle state of a run
type State int32

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// ViewHook resets the view collaborator's transform and returns the new cursor readout
type ViewHook func() (x, y int, k float64)

// CursorListener receives cursor readouts forwarded through OnCursorUpdate
type CursorListener func(x, y int, k float64)

// Option configures a Simulation at Start
type Option func(*Simulation)

// WithLogger sets the run's logger
func WithLogger(l Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithObserver receives a report after every tick, outside the state lock
func WithObserver(fn func(physics.Report)) Option {
	return func(s *Simulation) { s.observer = fn }
}

// WithRegistry publishes run metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(s *Simulation) { s.registry = reg }
}

// WithViewHook installs the handler behind ResetView
func WithViewHook(h ViewHook) Option {
	return func(s *Simulation) { s.viewHook = h }
}

// WithCursorListener forwards cursor readouts, e.g. to a HUD
func WithCursorListener(fn CursorListener) Option {
	return func(s *Simulation) { s.cursorListener = fn }
}

// WithTimeProvider replaces the wall clock used for run-time accounting
func WithTimeProvider(p TimeProvider) Option {
	return func(s *Simulation) { s.timeProvider = p }
}

// WithRand replaces the placement random source; otherwise it is derived from the config seed
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// Simulation is one run: a particle field advanced by a fixed-rate clock
// All particle mutation happens under mu, either on the scheduler goroutine or in StepOnce
// stepMu is taken before mu and pairs each step with its report, so observers see ticks in order
type Simulation struct {
	stepMu    sync.Mutex
	mu        sync.Mutex
	cfg       config.SimulationConfig
	params    physics.Params
	particles []physics.Particle
	state     State
	ticks     uint64
	err       error

	renderer  render.Renderer
	scheduler *ClockScheduler
	clock     *PausableClock

	logger         Logger
	observer       func(physics.Report)
	registry       *status.Registry
	viewHook       ViewHook
	cursorListener CursorListener
	timeProvider   TimeProvider
	rng            *rand.Rand

	done     chan struct{}
	doneOnce sync.Once

	statTicks     *atomic.Int64
	statLive      *atomic.Int64
	statMerges    *atomic.Int64
	statRuns      *atomic.Int64
	statMass      *status.AtomicFloat
	statMaxMass   *status.AtomicFloat
	statTickMicro *status.AtomicFloat
	statPaused    *atomic.Bool
	statState     *status.AtomicString
}

// Start validates cfg, places the field, publishes the initial frame and starts ticking
// Configuration errors are returned before any state is created
func Start(cfg config.SimulationConfig, renderer render.Renderer, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if renderer == nil {
		renderer = render.Discard{}
	}

	s := &Simulation{
		cfg:      cfg,
		renderer: renderer,
		logger:   NewNoOpLogger(),
		done:     make(chan struct{}),
		params: physics.Params{
			G:             cfg.GravitationalConstant,
			Model:         physics.NewVolumeModel(cfg.DefaultMass, cfg.DefaultSize),
			ResetVelocity: cfg.VelocityMode == config.VelocityReset,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = seededRand(cfg.Seed)
	}
	if s.registry == nil {
		s.registry = status.NewRegistry()
	}
	s.bindMetrics()

	particles, err := physics.NewField(cfg.Width, cfg.Height, cfg.MaxPoints, cfg.DefaultMass, s.params.Model, s.rng)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	s.particles = particles

	s.mu.Lock()
	s.publishLocked()
	s.state = StateRunning
	s.updateStateMetricsLocked()
	s.mu.Unlock()

	s.statRuns.Add(1)
	s.statMerges.Store(0)
	s.statMaxMass.Set(cfg.DefaultMass)
	s.recordReport(physics.Report{Live: len(particles), TotalMass: physics.TotalMass(particles)})

	s.clock = NewPausableClock(s.timeProvider)
	s.scheduler = NewClockScheduler(cfg.TickInterval(), s.tick, s.fault)
	s.scheduler.Start()

	s.logger.Infof("simulation started: %s", cfg)
	return s, nil
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

func (s *Simulation) bindMetrics() {
	r := s.registry
	s.statTicks = r.Ints.Get(status.KeyTicks)
	s.statLive = r.Ints.Get(status.KeyLive)
	s.statMerges = r.Ints.Get(status.KeyMerges)
	s.statRuns = r.Ints.Get(status.KeyRuns)
	s.statMass = r.Floats.Get(status.KeyTotalMass)
	s.statMaxMass = r.Floats.Get(status.KeyMaxMass)
	s.statTickMicro = r.Floats.Get(status.KeyTickMicros)
	s.statPaused = r.Bools.Get(status.KeyPaused)
	s.statState = r.Strings.Get(status.KeyState)
}

// tick runs on the scheduler goroutine
func (s *Simulation) tick() error {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	report, ran, err := s.advance(StateRunning)
	if err != nil {
		return err
	}
	if ran {
		s.recordReport(report)
	}
	return nil
}

// advance runs one step if the run is in the wanted state
// The lock is released by defer so a panicking step cannot leave it held
func (s *Simulation) advance(want State) (physics.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != want {
		return physics.Report{}, false, nil
	}
	report, err := s.stepLocked()
	return report, true, err
}

// stepLocked advances one tick and publishes; caller holds mu
func (s *Simulation) stepLocked() (physics.Report, error) {
	started := time.Now()

	particles, report, err := physics.Step(s.particles, s.params)
	if err != nil {
		return physics.Report{}, err
	}
	s.particles = particles
	s.ticks++
	report.Tick = s.ticks

	if report.Merges > 0 {
		for i := range particles {
			s.statMaxMass.StoreMax(particles[i].Mass)
		}
	}

	s.publishLocked()
	s.statTickMicro.Set(float64(time.Since(started).Microseconds()))
	return report, nil
}

func (s *Simulation) recordReport(report physics.Report) {
	s.statTicks.Store(int64(report.Tick))
	s.statLive.Store(int64(report.Live))
	s.statMass.Set(report.TotalMass)
	s.statMerges.Add(int64(report.Merges))

	if report.Tick > 0 && report.Tick%uint64(s.cfg.FrameRate) == 0 {
		s.logger.Debugf("tick %d: live=%d mass=%g merges=%d", report.Tick, report.Live, report.TotalMass, s.statMerges.Load())
	}
	if s.observer != nil && report.Tick > 0 {
		s.observer(report)
	}
}

// publishLocked draws every live particle: clear first, then one square each
func (s *Simulation) publishLocked() {
	s.renderer.Clear()
	for i := range s.particles {
		p := &s.particles[i]
		if p.Alive {
			s.renderer.DrawSquare(p.X, p.Y, p.Volume)
		}
	}
	s.renderer.Present()
}

// fault is the scheduler's onFault: the run is stopped and the error kept for Err
func (s *Simulation) fault(err error) {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	s.err = err
	s.state = StateStopped
	s.particles = nil
	s.updateStateMetricsLocked()
	s.mu.Unlock()

	s.logger.Errorf("simulation stopped: %v", err)
	s.closeDone()
}

func (s *Simulation) closeDone() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Simulation) updateStateMetricsLocked() {
	s.statPaused.Store(s.state == StatePaused)
	s.statState.Store(s.state.String())
}

// Stop cancels ticking and discards the field; idempotent
func (s *Simulation) Stop() {
	s.mu.Lock()
	wasActive := s.state != StateStopped
	s.state = StateStopped
	s.updateStateMetricsLocked()
	s.mu.Unlock()

	s.scheduler.Stop()

	s.mu.Lock()
	s.particles = nil
	s.mu.Unlock()

	if wasActive {
		s.logger.Infof("simulation stopped after %d ticks (%s run time)", s.TickCount(), s.clock.Elapsed().Round(time.Millisecond))
	}
	s.closeDone()
}

// Pause stops ticks after the one in flight; no-op unless running
func (s *Simulation) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.scheduler.Pause()
	s.clock.Pause()
	s.updateStateMetricsLocked()
	s.logger.Infof("simulation paused at tick %d", s.ticks)
}

// Resume restarts ticking; no-op unless paused
func (s *Simulation) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return
	}
	s.state = StateRunning
	s.clock.Resume()
	s.scheduler.Resume()
	s.updateStateMetricsLocked()
	s.logger.Infof("simulation resumed at tick %d", s.ticks)
}

// Toggle flips between running and paused and returns the new state
func (s *Simulation) Toggle() State {
	switch s.State() {
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
	return s.State()
}

// StepOnce advances a paused run by exactly one tick on the caller's goroutine
// A failing step stops the run like a failing scheduled tick
func (s *Simulation) StepOnce() error {
	switch s.State() {
	case StateStopped:
		return ErrStopped
	case StateRunning:
		return ErrNotPaused
	}

	var (
		report physics.Report
		ran    bool
	)
	s.stepMu.Lock()
	err := core.RunSafe(func() error {
		var err error
		report, ran, err = s.advance(StatePaused)
		return err
	})
	if err == nil && ran {
		s.recordReport(report)
	}
	// Released before the fault path: stopping the scheduler waits for an in-flight tick
	s.stepMu.Unlock()

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTickFault, err)
		s.fault(err)
		s.scheduler.Stop()
		return err
	}
	if !ran {
		return ErrNotPaused
	}
	return nil
}

// OnCursorUpdate is called by the view collaborator when pan or zoom changes
// The readout is forwarded; while paused the current state is re-published
func (s *Simulation) OnCursorUpdate(x, y int, k float64) {
	if s.cursorListener != nil {
		s.cursorListener(x, y, k)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePaused {
		s.publishLocked()
	}
}

// ResetView asks the view collaborator to re-centre, then reports the new cursor
func (s *Simulation) ResetView() {
	if s.viewHook == nil {
		return
	}
	x, y, k := s.viewHook()
	s.OnCursorUpdate(x, y, k)
}

// State returns the lifecycle state
func (s *Simulation) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Config returns the run's configuration
func (s *Simulation) Config() config.SimulationConfig {
	return s.cfg
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Elapsed returns run time excluding pauses
func (s *Simulation) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Snapshot copies the live particles at a tick boundary; nil once stopped
func (s *Simulation) Snapshot() []physics.Particle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.particles == nil {
		return nil
	}
	out := make([]physics.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Registry returns the metrics registry the run publishes into
func (s *Simulation) Registry() *status.Registry {
	return s.registry
}

// Err returns the fault that ended the run, or nil
func (s *Simulation) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed when the run ends, by Stop or by a fault
func (s *Simulation) Done() <-chan struct{} {
	return s.done
}
