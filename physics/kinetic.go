package physics

// Integrate advances every live particle by its velocity: one tick is one unit of time
// Explicit Euler; no damping or timestep scaling
func Integrate(ps []Particle) {
	for i := range ps {
		p := &ps[i]
		if !p.Alive {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
	}
}
