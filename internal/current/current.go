// Package current accumulates the electric current density deposited by
// particle motion over one time step.
package current

import "github.com/wildstyl3r/empic/internal/grid"

// Current is the per-step current density grid, shared by every species
// advanced in the step. The step driver owns its lifecycle: Zero before the
// species advance, Fold after it on periodic runs.
type Current struct {
	J  *grid.VecGrid
	DX float64
}

func New(nx int, dx float64) *Current {
	if dx <= 0 {
		panic("current: cell size must be positive")
	}
	return &Current{J: grid.NewVecGrid(nx), DX: dx}
}

// Zero clears the grid for a new step.
func (c *Current) Zero() {
	c.J.Zero()
}

// Fold wraps the guard-cell deposits into the periodic interior.
func (c *Current) Fold() {
	c.J.FoldPeriodic()
}

// Smooth applies n binomial (1/4, 1/2, 1/4) passes along x to every
// component, reading neighbors through the periodic guard cells.
func (c *Current) Smooth(n int) {
	if n <= 0 {
		return
	}
	nx := c.J.Nx()
	tmp := make([]grid.Vec3, nx)
	for pass := 0; pass < n; pass++ {
		c.J.CopyPeriodicGuards()
		for i := 0; i < nx; i++ {
			l, m, r := c.J.At(i-1), c.J.At(i), c.J.At(i+1)
			tmp[i] = grid.Vec3{
				X: 0.25*l.X + 0.5*m.X + 0.25*r.X,
				Y: 0.25*l.Y + 0.5*m.Y + 0.25*r.Y,
				Z: 0.25*l.Z + 0.5*m.Z + 0.25*r.Z,
			}
		}
		for i := 0; i < nx; i++ {
			*c.J.At(i) = tmp[i]
		}
	}
	c.J.CopyPeriodicGuards()
}
