// Package collide applies Monte Carlo electron-neutral collisions on top
// of the collisionless particle advance. Cross sections come from LXCat
// swarm data files; the background gas is uniform and stationary.
package collide

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wildstyl3r/empic/internal/config"
	"github.com/wildstyl3r/empic/internal/constants"
	"github.com/wildstyl3r/empic/internal/species"
	"github.com/wildstyl3r/empic/internal/utils"
	"github.com/wildstyl3r/lxgata"
)

type Collider struct {
	sections lxgata.Collisions
	density  float64 // background gas number density [m^-3]
	dtSI     float64 // time step converted to seconds
	chi      ScatterSampler
	rng      *rand.Rand
}

// New loads a cross-section set and prepares a collider for a simulation
// with normalized time step dt. The reference density of the deck fixes
// the plasma frequency that converts dt back to seconds.
func New(params config.Collisions, dt float64) (*Collider, error) {
	sections, err := lxgata.LoadCrossSections(params.CrossSections)
	if err != nil {
		return nil, fmt.Errorf("loading cross sections %s: %w", params.CrossSections, err)
	}
	plasmaFrequency := math.Sqrt(params.ReferenceDensity/constants.FreeSpacePermittivityE0/
		constants.ElectronMass) * constants.ElectronCharge
	chi := IsotropicChi
	if params.Scattering == "surendra" {
		chi = SurendraChi
	}
	return &Collider{
		sections: sections,
		density:  params.Pressure / (constants.KBoltzmann * params.Temperature),
		dtSI:     dt / plasmaFrequency,
		chi:      chi,
		rng:      rand.New(rand.NewSource(params.Seed)),
	}, nil
}

// probability is the chance that a particle with squared proper velocity
// u2 collides during one step, given the total cross section at its energy.
func (c *Collider) probability(total, u2 float64) float64 {
	return -math.Expm1(-c.density * total * speedSI(u2) * c.dtSI)
}

// Apply runs one collision step over every particle of s. Each particle
// collides with probability 1-exp(-Nσv·Δt); the colliding ones lose energy
// to the process drawn in proportion to its cross section and scatter by
// the sampled angle. Ionization secondaries join s at the parent position.
func (c *Collider) Apply(s *species.Species) {
	parts := s.Parts()
	var spawned []species.Particle

	// Remove swaps from the tail inside the same backing array, so the
	// local slice stays valid; n tracks the live count.
	n := len(parts)
	for i := 0; i < n; {
		p := &parts[i]
		u2 := p.UX*p.UX + p.UY*p.UY + p.UZ*p.UZ
		en := energyEV(u2)
		sigmas := c.sections.CrossSectionsAt(en)
		if c.rng.Float64() >= c.probability(utils.SumSlice(sigmas), u2) {
			i++
			continue
		}
		k := pickIndex(c.rng.Float64(), sigmas)
		if k < 0 {
			i++
			continue
		}
		col := &c.sections[k]

		cosChi := c.chi(en, c.rng.Float64())
		phi := 2. * math.Pi * c.rng.Float64()
		d := direction(p)
		loss := col.Threshold

		switch col.Type {
		case lxgata.ELASTIC:
			loss = 2. * col.MassRatio * (1. - cosChi) * en
		case lxgata.EFFECTIVE:
			cosChi = IsotropicChi(en, c.rng.Float64())
			loss = 2. * col.MassRatio * (1. - cosChi) * en
		case lxgata.IONIZATION:
			avail := max(0., en-col.Threshold)
			eEjected, cosEjected, eScattered, cosScattered := ionizationSplit(avail, c.rng.Float64())

			ejected := *p
			setCourse(&ejected, eEjected, d, cosEjected, phi+math.Pi)
			spawned = append(spawned, ejected)

			setCourse(p, eScattered, d, cosScattered, phi)
			i++
			continue
		case lxgata.ATTACHMENT:
			s.Remove(i)
			n--
			continue
		}
		setCourse(p, max(0., en-loss), d, cosChi, phi)
		i++
	}

	for _, p := range spawned {
		s.Append(p)
	}
}

// pickIndex selects a process by partitioning [0, 1) in proportion to the
// given cross sections. It returns -1 when every cross section is zero.
func pickIndex(x float64, sigmas []float64) int {
	total := utils.SumSlice(sigmas)
	if total <= 0 {
		return -1
	}
	choice := x * total
	acc := 0.
	for i, sigma := range sigmas {
		acc += sigma
		if choice < acc {
			return i
		}
	}
	return len(sigmas) - 1
}
