package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravitate_Symmetry(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0, Mass: 2, Alive: true},
		{X: 3, Y: 4, Mass: 5, Alive: true},
	}

	Gravitate(ps, 0.1)

	// F = 0.1 * 2 * 5 / 25 = 0.04 along (0.6, 0.8)
	assert.InDelta(t, 0.024, ps[0].VX, 1e-12)
	assert.InDelta(t, 0.032, ps[0].VY, 1e-12)
	assert.InDelta(t, -ps[0].VX, ps[1].VX, 1e-15)
	assert.InDelta(t, -ps[0].VY, ps[1].VY, 1e-15)
}

func TestGravitate_Accumulates(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0, VX: 1, VY: -1, Mass: 1, Alive: true},
		{X: 10, Y: 0, Mass: 1, Alive: true},
	}

	Gravitate(ps, 1)
	Gravitate(ps, 1)

	assert.InDelta(t, 1.02, ps[0].VX, 1e-12)
	assert.InDelta(t, -1.0, ps[0].VY, 1e-12)
	assert.InDelta(t, -0.02, ps[1].VX, 1e-12)
}

func TestGravitate_CoincidentPairSkipped(t *testing.T) {
	ps := []Particle{
		{X: 5, Y: 5, Mass: 1, Alive: true},
		{X: 5, Y: 5, Mass: 1, Alive: true},
	}

	Gravitate(ps, 1)

	for _, p := range ps {
		assert.False(t, math.IsNaN(p.VX) || math.IsInf(p.VX, 0))
		assert.Zero(t, p.VX)
		assert.Zero(t, p.VY)
	}
}

func TestGravitate_IgnoresDead(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0, Mass: 1, Alive: true},
		{X: 1, Y: 0, Mass: 100, Alive: false},
	}

	Gravitate(ps, 1)

	assert.Zero(t, ps[0].VX)
	assert.Zero(t, ps[1].VX)
}

func TestGravitate_NetForceCancels(t *testing.T) {
	// Particle in the middle of a symmetric pair feels no net pull
	ps := []Particle{
		{X: -2, Y: 0, Mass: 1, Alive: true},
		{X: 0, Y: 0, Mass: 1, Alive: true},
		{X: 2, Y: 0, Mass: 1, Alive: true},
	}

	Gravitate(ps, 1)

	assert.InDelta(t, 0, ps[1].VX, 1e-15)
	assert.InDelta(t, 0, ps[1].VY, 1e-15)
}

func TestResetVelocity(t *testing.T) {
	ps := []Particle{
		{VX: 1, VY: 2, Alive: true},
		{VX: 3, VY: 4, Alive: false},
	}

	ResetVelocity(ps)

	assert.Zero(t, ps[0].VX)
	assert.Zero(t, ps[0].VY)
	assert.Equal(t, 3.0, ps[1].VX)
}
