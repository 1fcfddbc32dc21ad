package collide

import "math"

// ScatterSampler draws the cosine of the polar scattering angle for a
// collision at kinetic energy en [eV] from a uniform variate r in [0, 1).
type ScatterSampler func(en, r float64) float64

// IsotropicChi spreads scattering directions uniformly over the sphere.
func IsotropicChi(_, r float64) float64 {
	return 1. - 2.*r
}

// SurendraChi samples the screened-Coulomb angular distribution of
// Surendra et al., which favors forward scattering as the energy grows.
func SurendraChi(en, r float64) float64 {
	if en <= 0 {
		return 1. - 2.*r
	}
	return (2. + en - 2.*math.Pow(1.+en, r)) / en
}
