package physics

import (
	"math"

	"github.com/lixenwraith/stellar/vmath"
)

// Merge records one coalescence event
type Merge struct {
	Survivor int // index in the pre-compaction slice
	Absorbed int
	Mass     float64 // survivor mass after the merge
}

// Overlaps reports whether two particles are within merge distance: d <= sqrt(va*vb)/2
func Overlaps(a, b *Particle) bool {
	d := vmath.Distance(b.X-a.X, b.Y-a.Y)
	return d <= math.Sqrt(a.Volume*b.Volume)/2
}

// Absorb merges b into a: mass and volume are reconciled, b is tombstoned, and a's
// velocity is reduced along each axis by the velocity transfer heuristic
func Absorb(a, b *Particle, model VolumeModel) {
	a.Mass += b.Mass
	a.Volume = model.Volume(a.Mass)
	b.Alive = false

	a.VX += VelocityTransfer(a.Mass, a.VX, b.Mass, b.VX)
	a.VY += VelocityTransfer(a.Mass, a.VY, b.Mass, b.VY)
}

// VelocityTransfer is the per-axis slowdown applied to a survivor:
// sqrt(mb*vb^2/ma) * sign(va) * -1
// This is a deliberate approximation of an elastic collision, not an exact solution;
// ma is the survivor's mass after absorbing mb
func VelocityTransfer(ma, va, mb, vb float64) float64 {
	return math.Sqrt(mb*vb*vb/ma) * vmath.Sign(va) * -1
}

// Coalesce merges every overlapping pair of live particles and compacts the dead ones out
// Pairs are visited once in index order; the heavier particle absorbs, ties go to the lower index.
// A particle absorbed earlier in the pass takes no further part in it.
// The returned slice shares ps's backing array
func Coalesce(ps []Particle, model VolumeModel, onMerge func(Merge)) ([]Particle, int) {
	merges := 0
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			a, b := &ps[i], &ps[j]
			if !a.Alive {
				break
			}
			if !b.Alive || !Overlaps(a, b) {
				continue
			}

			survivor, absorbed := i, j
			if a.Mass < b.Mass {
				survivor, absorbed = j, i
			}
			Absorb(&ps[survivor], &ps[absorbed], model)
			merges++

			if onMerge != nil {
				onMerge(Merge{Survivor: survivor, Absorbed: absorbed, Mass: ps[survivor].Mass})
			}
		}
	}

	return Compact(ps), merges
}

// Compact removes tombstoned particles in place, preserving order
func Compact(ps []Particle) []Particle {
	live := ps[:0]
	for i := range ps {
		if ps[i].Alive {
			live = append(live, ps[i])
		}
	}
	clear(ps[len(live):])
	return live
}
