package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testInterval = time.Millisecond
	waitFor      = 2 * time.Second
	pollEvery    = time.Millisecond
)

func TestClockSchedulerTicks(t *testing.T) {
	var n atomic.Int64
	cs := NewClockScheduler(testInterval, func() error {
		n.Add(1)
		return nil
	}, nil)
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return n.Load() >= 5 }, waitFor, pollEvery)
	assert.GreaterOrEqual(t, cs.TickCount(), uint64(5))
}

func TestClockSchedulerStopIsIdempotent(t *testing.T) {
	cs := NewClockScheduler(testInterval, func() error { return nil }, nil)
	cs.Start()
	cs.Stop()
	cs.Stop()

	select {
	case <-cs.Done():
	default:
		t.Fatal("done not closed after Stop")
	}
	assert.NoError(t, cs.Err())
}

func TestClockSchedulerStopWithoutStart(t *testing.T) {
	cs := NewClockScheduler(testInterval, func() error { return nil }, nil)
	assert.NotPanics(t, cs.Stop)
}

func TestClockSchedulerNoTicksAfterStop(t *testing.T) {
	var n atomic.Int64
	cs := NewClockScheduler(testInterval, func() error {
		n.Add(1)
		return nil
	}, nil)
	cs.Start()
	require.Eventually(t, func() bool { return n.Load() > 0 }, waitFor, pollEvery)
	cs.Stop()

	after := n.Load()
	time.Sleep(10 * testInterval)
	assert.Equal(t, after, n.Load())
}

func TestClockSchedulerPauseResume(t *testing.T) {
	var n atomic.Int64
	cs := NewClockScheduler(testInterval, func() error {
		n.Add(1)
		return nil
	}, nil)
	cs.Start()
	defer cs.Stop()

	require.Eventually(t, func() bool { return n.Load() > 0 }, waitFor, pollEvery)
	cs.Pause()
	assert.True(t, cs.IsPaused())

	// One tick may already be in flight when Pause lands
	time.Sleep(5 * testInterval)
	paused := n.Load()
	time.Sleep(10 * testInterval)
	assert.Equal(t, paused, n.Load(), "no ticks while paused")

	cs.Resume()
	assert.False(t, cs.IsPaused())
	require.Eventually(t, func() bool { return n.Load() > paused }, waitFor, pollEvery)
}

func TestClockSchedulerErrorFaults(t *testing.T) {
	boom := errors.New("boom")
	faults := make(chan error, 1)

	cs := NewClockScheduler(testInterval, func() error { return boom }, func(err error) {
		faults <- err
	})
	cs.Start()

	select {
	case err := <-faults:
		assert.ErrorIs(t, err, ErrTickFault)
		assert.ErrorIs(t, err, boom)
	case <-time.After(waitFor):
		t.Fatal("onFault not called")
	}

	<-cs.Done()
	assert.ErrorIs(t, cs.Err(), boom)
	assert.Zero(t, cs.TickCount())
}

func TestClockSchedulerPanicFaults(t *testing.T) {
	faults := make(chan error, 1)
	cs := NewClockScheduler(testInterval, func() error { panic("kaboom") }, func(err error) {
		faults <- err
	})
	cs.Start()

	select {
	case err := <-faults:
		assert.ErrorIs(t, err, ErrTickFault)
		assert.ErrorContains(t, err, "kaboom")
	case <-time.After(waitFor):
		t.Fatal("onFault not called")
	}
}

func TestClockSchedulerStopFromOnFault(t *testing.T) {
	var cs *ClockScheduler
	stopped := make(chan struct{})
	cs = NewClockScheduler(testInterval, func() error { return errors.New("x") }, func(error) {
		cs.Stop()
		close(stopped)
	})
	cs.Start()

	select {
	case <-stopped:
	case <-time.After(waitFor):
		t.Fatal("Stop from onFault deadlocked")
	}
}
