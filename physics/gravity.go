package physics

import "github.com/lixenwraith/stellar/vmath"

// Gravitate accumulates inverse-square attraction into every live particle's velocity
// Each ordered pair (a, b) adds G*ma*mb/d^2 along the unit vector a->b to a; iterating both
// orders gives equal and opposite impulses. Coincident pairs (d == 0) are skipped
func Gravitate(ps []Particle, g float64) {
	for i := range ps {
		a := &ps[i]
		if !a.Alive {
			continue
		}
		for j := range ps {
			if i == j || !ps[j].Alive {
				continue
			}
			b := &ps[j]

			ux, uy, d := vmath.Normalize(b.X-a.X, b.Y-a.Y)
			if d == 0 {
				continue
			}

			force := g * a.Mass * b.Mass / (d * d)
			a.VX += ux * force
			a.VY += uy * force
		}
	}
}

// ResetVelocity zeroes every live particle's velocity
func ResetVelocity(ps []Particle) {
	for i := range ps {
		if ps[i].Alive {
			ps[i].VX = 0
			ps[i].VY = 0
		}
	}
}
