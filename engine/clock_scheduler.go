package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stellar/core"
)

// ErrTickFault wraps any error or panic raised by a tick; the scheduler stops on it
var ErrTickFault = errors.New("tick failed")

// ClockScheduler fires a tick function at a fixed period on a single goroutine
// Ticks never overlap; pause and stop take effect between ticks
type ClockScheduler struct {
	interval time.Duration
	tick     func() error
	onFault  func(error)

	paused  atomic.Bool
	running atomic.Bool
	ticks   atomic.Uint64

	// Drift correction: next deadline advances by interval, resynced when far behind
	nextDeadline time.Time

	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	mu  sync.Mutex
	err error
}

// NewClockScheduler creates a stopped scheduler
// onFault is called once, on the scheduler goroutine, after the loop has exited due to a failed tick
func NewClockScheduler(interval time.Duration, tick func() error, onFault func(error)) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		tick:     tick,
		onFault:  onFault,
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop; subsequent calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		go cs.loop()
	}
}

// Stop ends the loop and waits for an in-flight tick to finish; idempotent
// Safe to call from onFault
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	if cs.running.Load() {
		<-cs.done
	}
}

// Pause suspends ticking after the current tick
func (cs *ClockScheduler) Pause() {
	cs.paused.Store(true)
}

// Resume restarts ticking; the next tick fires one interval later
func (cs *ClockScheduler) Resume() {
	if cs.paused.CompareAndSwap(true, false) {
		select {
		case cs.wake <- struct{}{}:
		default:
		}
	}
}

// IsPaused reports the pause flag
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.ticks.Load()
}

// Done is closed when the loop exits
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.done
}

// Err returns the fault that stopped the loop, nil after a clean stop
func (cs *ClockScheduler) Err() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.err
}

func (cs *ClockScheduler) loop() {
	var fault error
	defer func() {
		close(cs.done)
		if fault != nil && cs.onFault != nil {
			cs.onFault(fault)
		}
	}()

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()
	cs.nextDeadline = time.Now().Add(cs.interval)

	for {
		if cs.paused.Load() {
			select {
			case <-cs.wake:
				cs.nextDeadline = time.Now().Add(cs.interval)
				resetTimer(timer, cs.interval)
				continue
			case <-cs.stopChan:
				return
			}
		}

		select {
		case <-cs.stopChan:
			return
		case <-cs.wake:
			continue
		case <-timer.C:
		}

		if cs.paused.Load() {
			continue
		}

		if err := core.RunSafe(cs.tick); err != nil {
			fault = fmt.Errorf("%w after %d ticks: %w", ErrTickFault, cs.ticks.Load(), err)
			cs.mu.Lock()
			cs.err = fault
			cs.mu.Unlock()
			return
		}
		cs.ticks.Add(1)

		now := time.Now()
		cs.nextDeadline = cs.nextDeadline.Add(cs.interval)
		if now.Sub(cs.nextDeadline) > 2*cs.interval {
			cs.nextDeadline = now.Add(cs.interval)
		}
		resetTimer(timer, max(cs.nextDeadline.Sub(now), 0))
	}
}

// resetTimer rearms a fired or stopped timer without leaving a stale value in its channel
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
