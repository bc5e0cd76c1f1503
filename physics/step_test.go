package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Order(t *testing.T) {
	model := NewVolumeModel(1, 1)
	ps := []Particle{
		particle(model, 0, 0, 1),
		particle(model, 0.4, 0, 3),
		particle(model, 10, 0, 1),
	}

	out, report, err := Step(ps, Params{G: 1, Model: model})
	require.NoError(t, err)

	// merge happens before gravity, so the survivor pulls with mass 4
	require.Len(t, out, 2)
	assert.Equal(t, 1, report.Merges)
	assert.Equal(t, 2, report.Live)
	assert.Equal(t, 5.0, report.TotalMass)
	assert.Equal(t, 4.0, report.HeaviestMerge)

	d := 10 - 0.4
	force := 4.0 / (d * d)
	assert.InDelta(t, 0.4+force, out[0].X, 1e-12)
	assert.InDelta(t, 10-force, out[1].X, 1e-12)
}

func TestStep_ResetVelocity(t *testing.T) {
	model := NewVolumeModel(1, 1)
	ps := []Particle{
		particle(model, 0, 0, 1),
		particle(model, 10, 0, 1),
	}
	ps[0].VX = 5

	inertial := append([]Particle(nil), ps...)
	inertial, _, err := Step(inertial, Params{G: 1, Model: model})
	require.NoError(t, err)

	reset, _, err := Step(ps, Params{G: 1, Model: model, ResetVelocity: true})
	require.NoError(t, err)

	assert.InDelta(t, 5.01, inertial[0].VX, 1e-12)
	assert.InDelta(t, 0.01, reset[0].VX, 1e-12)
}

func TestStep_FieldInvariants(t *testing.T) {
	model := NewVolumeModel(1, 1)
	ps, err := NewField(60, 60, 300, 1, model, newTestRand(5))
	require.NoError(t, err)
	params := Params{G: 1e-2, Model: model}

	mass := TotalMass(ps)
	live := len(ps)
	for tick := 0; tick < 40; tick++ {
		var report Report
		ps, report, err = Step(ps, params)
		require.NoError(t, err)

		assert.LessOrEqual(t, report.Live, live, "population never grows")
		assert.InDelta(t, mass, report.TotalMass, 1e-9)
		live = report.Live
	}
}

func TestCheckFinite(t *testing.T) {
	ps := []Particle{
		{X: 1, Y: 1, Alive: true},
		{X: math.NaN(), Y: 1, Alive: true},
	}

	err := CheckFinite(ps)
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.Contains(t, err.Error(), "particle 1")
	assert.NoError(t, CheckFinite(ps[:1]))
}
