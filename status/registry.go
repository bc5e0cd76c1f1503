package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the simulation engine
const (
	KeyTicks      = "sim.ticks"
	KeyLive       = "sim.live"
	KeyMerges     = "sim.merges"
	KeyRuns       = "sim.runs"
	KeyTotalMass  = "sim.mass"
	KeyMaxMass    = "sim.mass_max"
	KeyTickMicros = "sim.tick_us"
	KeyPaused     = "sim.paused"
	KeyState      = "sim.state"
)

// Registry is the metrics facade shared by the engine and the HUD
// Writers cache pointers at construction; per-tick updates are plain atomic stores
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot returns every metric formatted as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = fmt.Sprintf("%.4g", v.Get())
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	return out
}
