package species

import "github.com/wildstyl3r/empic/internal/grid"

// Boundary selects how particles leaving the box are treated.
type Boundary int

const (
	Periodic Boundary = iota
	Open
)

// Species is one particle population sharing charge, mass and step
// parameters. Particle order inside the population carries no meaning; the
// boundary pass and the periodic sort are free to rearrange it.
type Species struct {
	Name string

	Q  float64 // macro-particle charge
	QM float64 // charge-to-mass ratio q/m

	NX int
	DX float64 // [c/ω_p]
	DT float64 // [1/ω_p]

	Boundary     Boundary
	MovingWindow bool
	SortPeriod   int
	Threads      int

	Energy float64 // population kinetic energy after the last Advance
	Iter   int
	NMove  int // accumulated moving-window shifts, in cells

	parts []Particle

	grids   []*grid.VecGrid // private per-worker deposit grids
	partial []float64       // per-worker energy sums
	sortIdx []int
	sortTmp []Particle
}

// New creates an empty species on a box of nx cells of size dx, advanced
// with time step dt. Charge q and charge-to-mass ratio qm are per
// macro-particle, in normalized units.
func New(name string, q, qm float64, nx int, dx, dt float64) *Species {
	if nx <= 0 || dx <= 0 || dt <= 0 {
		panic("species: box parameters must be positive")
	}
	return &Species{
		Name:    name,
		Q:       q,
		QM:      qm,
		NX:      nx,
		DX:      dx,
		DT:      dt,
		Threads: 1,
	}
}

// Np returns the number of live particles.
func (s *Species) Np() int {
	return len(s.parts)
}

// Parts exposes the live particles for reads and in-place momentum updates.
// Use Append and Remove to change the population size.
func (s *Species) Parts() []Particle {
	return s.parts
}

// Append adds a particle to the population.
func (s *Species) Append(p Particle) {
	s.parts = append(s.parts, p)
}

// Remove drops particle i by moving the last live particle into its slot.
// A scan removing as it goes must not advance past i afterwards, since the
// moved-in particle has not been examined yet.
func (s *Species) Remove(i int) {
	last := len(s.parts) - 1
	s.parts[i] = s.parts[last]
	s.parts = s.parts[:last]
}
