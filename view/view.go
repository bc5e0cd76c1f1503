// Package view holds the pan/zoom transform applied when drawing the field
// The simulation never reads it; the front-end owns it and reports changes
// through Simulation.OnCursorUpdate
package view

import (
	"math"
	"sync"

	"github.com/lixenwraith/stellar/parameter"
	"github.com/lixenwraith/stellar/vmath"
)

// State is a translation (tx, ty) and scale k over a surface of fixed size
// A field point p is drawn at p*k + t in surface units
type State struct {
	mu            sync.RWMutex
	tx, ty, k     float64
	width, height float64
}

// New creates an identity view over a width x height surface
func New(width, height int) *State {
	return &State{k: 1, width: float64(width), height: float64(height)}
}

// Pan shifts the translation by (dx, dy) surface units
func (s *State) Pan(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx += dx
	s.ty += dy
}

// Zoom scales about the surface centre
func (s *State) Zoom(factor float64) {
	s.ZoomAt(s.width/2, s.height/2, factor)
}

// ZoomAt scales by factor keeping the surface point (px, py) fixed; k is clamped to [ZoomMin, ZoomMax]
func (s *State) ZoomAt(px, py, factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := vmath.Clamp(s.k*factor, parameter.ZoomMin, parameter.ZoomMax)
	if k == s.k {
		return
	}
	ratio := k / s.k
	s.tx = px - (px-s.tx)*ratio
	s.ty = py - (py-s.ty)*ratio
	s.k = k
}

// Reset centres the view for the current scale
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx = scaledOffset(s.width, s.k)
	s.ty = scaledOffset(s.height, s.k)
}

// Set replaces the transform; k is clamped
func (s *State) Set(tx, ty, k float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx, s.ty = tx, ty
	s.k = vmath.Clamp(k, parameter.ZoomMin, parameter.ZoomMax)
}

// Transform returns the current translation and scale
func (s *State) Transform() (tx, ty, k float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tx, s.ty, s.k
}

// Apply maps a field point to surface coordinates
func (s *State) Apply(x, y float64) (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return x*s.k + s.tx, y*s.k + s.ty
}

// Cursor returns the readout shown to the user: the field position at the
// centred origin, floor(offset(L) - t), and the scale
func (s *State) Cursor() (x, y int, k float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x = int(math.Floor(scaledOffset(s.width, s.k) - s.tx))
	y = int(math.Floor(scaledOffset(s.height, s.k) - s.ty))
	return x, y, s.k
}

// Resize changes the surface dimensions and keeps the transform
func (s *State) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = float64(width), float64(height)
}

// Size returns the surface dimensions
func (s *State) Size() (width, height float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// scaledOffset is the translation that keeps a surface of length l centred at scale k
func scaledOffset(l, k float64) float64 {
	return (l - l*k) / 2
}
