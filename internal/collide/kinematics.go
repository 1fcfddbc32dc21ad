package collide

import (
	"math"

	"github.com/wildstyl3r/empic/internal/constants"
	"github.com/wildstyl3r/empic/internal/species"
)

// energyEV converts squared proper velocity (in units of c) to kinetic
// energy in eV. The u²/(1+γ) form stays accurate for slow particles.
func energyEV(u2 float64) float64 {
	gamma := math.Sqrt(1. + u2)
	return u2 / (1. + gamma) * constants.ElectronRestEnergyEV
}

// uFromEnergyEV is the inverse of energyEV: the proper velocity magnitude
// of an electron with the given kinetic energy.
func uFromEnergyEV(en float64) float64 {
	eps := en / constants.ElectronRestEnergyEV
	return math.Sqrt(eps * (eps + 2.))
}

// speedSI returns the lab-frame speed in m/s for a squared proper velocity.
func speedSI(u2 float64) float64 {
	return math.Sqrt(u2/(1.+u2)) * constants.LightSpeed
}

// direction returns the unit vector along the momentum of p. The momentum
// must be non-zero.
func direction(p *species.Particle) [3]float64 {
	u := math.Sqrt(p.UX*p.UX + p.UY*p.UY + p.UZ*p.UZ)
	return [3]float64{p.UX / u, p.UY / u, p.UZ / u}
}

// scatter rotates the unit vector d by the polar angle χ, with the azimuth
// φ measured in the plane orthogonal to d.
func scatter(d [3]float64, cosChi, phi float64) [3]float64 {
	sinChi := math.Sqrt(max(0., math.FMA(cosChi, -cosChi, 1.)))

	var a [3]float64
	if math.Abs(d[0]) < 0.9 {
		a = [3]float64{0., d[2], -d[1]}
	} else {
		a = [3]float64{-d[2], 0., d[0]}
	}
	norm := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	e1 := [3]float64{a[0] / norm, a[1] / norm, a[2] / norm}
	e2 := [3]float64{
		d[1]*e1[2] - d[2]*e1[1],
		d[2]*e1[0] - d[0]*e1[2],
		d[0]*e1[1] - d[1]*e1[0],
	}

	sc, ss := sinChi*math.Cos(phi), sinChi*math.Sin(phi)
	return [3]float64{
		math.FMA(cosChi, d[0], math.FMA(sc, e1[0], ss*e2[0])),
		math.FMA(cosChi, d[1], math.FMA(sc, e1[1], ss*e2[1])),
		math.FMA(cosChi, d[2], math.FMA(sc, e1[2], ss*e2[2])),
	}
}

// setCourse points p along the rotation of d by (χ, φ) and rescales its
// momentum to the kinetic energy en.
func setCourse(p *species.Particle, en float64, d [3]float64, cosChi, phi float64) {
	u := uFromEnergyEV(en)
	nd := scatter(d, cosChi, phi)
	p.UX, p.UY, p.UZ = u*nd[0], u*nd[1], u*nd[2]
}

// ionizationSplit divides the post-threshold energy between the scattered
// and the ejected electron, the ejected share drawn uniformly. Both leave
// along cosχ = √(E'/E_avail), which here is √r and √(1−r).
func ionizationSplit(avail, r float64) (eEjected, cosEjected, eScattered, cosScattered float64) {
	eEjected = avail * r
	eScattered = avail - eEjected
	cosEjected = math.Sqrt(r)
	cosScattered = math.Sqrt(1. - r)
	return
}
