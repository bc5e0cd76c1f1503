package physics

import "math"

// Particle is a point mass in the field's coordinate frame
// Alive is a tombstone: cleared once when the particle is absorbed, compacted out at the end of the pass
type Particle struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
	Volume float64
	Alive  bool
}

// VolumeModel maps mass to interaction and display size
// volume(mass) = ln(mass * multiplier * e), multiplier = defaultSize / defaultMass
type VolumeModel struct {
	multiplier float64
}

// NewVolumeModel fixes the volume multiplier from the initial mass and size
func NewVolumeModel(defaultMass, defaultSize float64) VolumeModel {
	return VolumeModel{multiplier: defaultSize / defaultMass}
}

// Multiplier returns the configured size-to-mass ratio
func (m VolumeModel) Multiplier() float64 {
	return m.multiplier
}

// Volume returns the size for mass; defined for mass > 0 and monotonically increasing
func (m VolumeModel) Volume(mass float64) float64 {
	return math.Log(mass * m.multiplier * math.E)
}

// TotalMass sums mass over live particles
func TotalMass(ps []Particle) float64 {
	total := 0.0
	for i := range ps {
		if ps[i].Alive {
			total += ps[i].Mass
		}
	}
	return total
}

// CountAlive returns the number of live particles
func CountAlive(ps []Particle) int {
	n := 0
	for i := range ps {
		if ps[i].Alive {
			n++
		}
	}
	return n
}
