package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stellar/vmath"
)

// ErrNonFinite is returned when integration leaves a particle with a NaN or infinite component
var ErrNonFinite = errors.New("non-finite particle state")

// Params holds the per-run constants the tick body needs
type Params struct {
	G             float64
	Model         VolumeModel
	ResetVelocity bool
}

// Report summarizes one tick
type Report struct {
	Tick      uint64
	Merges    int
	Live      int
	TotalMass float64

	// HeaviestMerge is the largest survivor mass produced this tick, 0 without merges
	HeaviestMerge float64
}

// Step runs one tick body: coalesce, accumulate gravity, integrate
// It depends only on params and the particle state, so it can be driven without timers
func Step(ps []Particle, params Params) ([]Particle, Report, error) {
	var heaviest float64
	ps, merges := Coalesce(ps, params.Model, func(m Merge) {
		heaviest = max(heaviest, m.Mass)
	})

	if params.ResetVelocity {
		ResetVelocity(ps)
	}
	Gravitate(ps, params.G)
	Integrate(ps)

	if err := CheckFinite(ps); err != nil {
		return ps, Report{}, err
	}

	return ps, Report{
		Merges:        merges,
		Live:          len(ps),
		TotalMass:     TotalMass(ps),
		HeaviestMerge: heaviest,
	}, nil
}

// CheckFinite returns ErrNonFinite naming the first corrupted particle
func CheckFinite(ps []Particle) error {
	for i := range ps {
		p := &ps[i]
		if !vmath.IsFinite(p.X) || !vmath.IsFinite(p.Y) || !vmath.IsFinite(p.VX) || !vmath.IsFinite(p.VY) {
			return fmt.Errorf("%w: particle %d at (%g, %g) velocity (%g, %g)", ErrNonFinite, i, p.X, p.Y, p.VX, p.VY)
		}
	}
	return nil
}
