package input

import (
	"errors"

	"github.com/lixenwraith/stellar/engine"
	"github.com/lixenwraith/stellar/view"
)

// Controller is the slice of engine.Simulation the router drives
type Controller interface {
	Toggle() engine.State
	StepOnce() error
	OnCursorUpdate(x, y int, k float64)
	ResetView()
}

// SurfaceMapper converts a screen cell to view surface units
type SurfaceMapper interface {
	ScreenToSurface(col, row int) (float64, float64)
}

// Outcome tells the caller's event loop what to do after an intent
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
	OutcomeRestart
	OutcomeToggleMute
)

// Router applies intents to the view and the running simulation
type Router struct {
	view   *view.State
	mapper SurfaceMapper
	sim    Controller
}

// NewRouter creates a router; mapper may be nil, in which case wheel zoom anchors at the centre
func NewRouter(v *view.State, mapper SurfaceMapper) *Router {
	return &Router{view: v, mapper: mapper}
}

// SetController attaches the current run; nil detaches it between restarts
func (r *Router) SetController(c Controller) {
	r.sim = c
}

// Handle applies one intent
// Step requests on a running simulation are ignored
func (r *Router) Handle(in Intent) (Outcome, error) {
	switch in.Type {
	case IntentQuit:
		return OutcomeQuit, nil
	case IntentRestart:
		return OutcomeRestart, nil
	case IntentToggleMute:
		return OutcomeToggleMute, nil

	case IntentPan:
		r.view.Pan(in.DX, in.DY)
		r.notifyCursor()
	case IntentZoom:
		r.view.Zoom(in.Factor)
		r.notifyCursor()
	case IntentZoomAt:
		if r.mapper == nil {
			r.view.Zoom(in.Factor)
		} else {
			px, py := r.mapper.ScreenToSurface(in.X, in.Y)
			r.view.ZoomAt(px, py, in.Factor)
		}
		r.notifyCursor()
	case IntentResize:
		r.notifyCursor()

	case IntentResetView:
		if r.sim != nil {
			r.sim.ResetView()
		} else {
			r.view.Reset()
		}
	case IntentTogglePause:
		if r.sim != nil {
			r.sim.Toggle()
		}
	case IntentStep:
		if r.sim == nil {
			return OutcomeContinue, nil
		}
		if err := r.sim.StepOnce(); err != nil && !errors.Is(err, engine.ErrNotPaused) {
			return OutcomeContinue, err
		}
	}
	return OutcomeContinue, nil
}

func (r *Router) notifyCursor() {
	if r.sim == nil {
		return
	}
	r.sim.OnCursorUpdate(r.view.Cursor())
}
