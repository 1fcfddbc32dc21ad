// Package species implements the particle populations of the simulation:
// the relativistic equations of motion under the sampled electromagnetic
// field, the charge-conserving current the particles deposit while moving,
// and the bookkeeping that keeps each population consistent with the box
// boundaries.
package species

// Particle is one macro-particle: the index of its cell, the offset inside
// that cell in [0, 1) cell units, and the proper velocity u = γv in units
// of c.
type Particle struct {
	IX         int
	X          float64
	UX, UY, UZ float64
}
