package collide

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wildstyl3r/lxgata"

	"github.com/wildstyl3r/empic/internal/species"
)

func TestPickIndex(t *testing.T) {
	sigmas := []float64{1., 0., 3.}
	cases := []struct {
		r    float64
		want int
	}{
		{0., 0},
		{0.24, 0},
		{0.26, 2},
		{0.999, 2},
	}
	for i, c := range cases {
		assert.Equal(t, c.want, pickIndex(c.r, sigmas), "%d) r=%v", i, c.r)
	}
	assert.Equal(t, -1, pickIndex(0.5, []float64{0., 0.}))
	assert.Equal(t, -1, pickIndex(0.5, nil))
}

func TestProbability(t *testing.T) {
	c := &Collider{density: 1e20, dtSI: 1e-12}

	assert.Equal(t, 0., c.probability(0., 1.))
	assert.Equal(t, 0., c.probability(1e-19, 0.))

	// small rates reduce to ν·Δt
	u2 := 0.01
	total := 1e-22
	nu := c.density * total * speedSI(u2)
	assert.InEpsilon(t, nu*c.dtSI, c.probability(total, u2), 1e-3)

	// large cross sections saturate toward certainty
	assert.Greater(t, c.probability(1e-15, 1.), 0.99)
	assert.Less(t, c.probability(1e-15, 1.), 1.)
}

func TestApplyWithoutCrossSections(t *testing.T) {
	s := species.New("electrons", -1., -1., 8, 0.5, 0.1)
	s.Append(species.Particle{IX: 1, X: 0.25, UX: 0.3, UY: -0.1})
	s.Append(species.Particle{IX: 5, X: 0.5, UZ: 0.7})

	c := &Collider{
		sections: lxgata.Collisions{},
		density:  1e20,
		dtSI:     1e-10,
		chi:      IsotropicChi,
		rng:      rand.New(rand.NewSource(3)),
	}
	c.Apply(s)

	assert.Equal(t, 2, s.Np())
	assert.Equal(t, 0.3, s.Parts()[0].UX)
	assert.Equal(t, 0.7, s.Parts()[1].UZ)
}
