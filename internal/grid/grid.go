// Package grid provides 1-D cell arrays with guard cells on both ends, so
// interpolation and deposition stencils may reach one cell below and two
// cells above the box without wrapping logic of their own.
package grid

// Guard cell counts below cell 0 and above cell nx-1. The lower guard
// absorbs a leftward deposition from cell 0; the upper guards absorb the
// forward cell of a rightward crossing from cell nx-1.
const (
	GuardLo = 1
	GuardHi = 2
)

// Vec3 is a three-component cell value: a field sample or a current
// accumulator. X is the longitudinal (grid) direction.
type Vec3 struct {
	X, Y, Z float64
}

// VecGrid stores a vector quantity on nx cells, addressable from -GuardLo
// to nx+GuardHi-1.
type VecGrid struct {
	nx  int
	buf []Vec3
}

func NewVecGrid(nx int) *VecGrid {
	if nx <= 0 {
		panic("grid: cell count must be positive")
	}
	return &VecGrid{nx: nx, buf: make([]Vec3, nx+GuardLo+GuardHi)}
}

// Nx returns the number of interior cells.
func (g *VecGrid) Nx() int { return g.nx }

// At returns cell i; guard cells live at i in [-GuardLo, 0) and
// [nx, nx+GuardHi).
func (g *VecGrid) At(i int) *Vec3 {
	return &g.buf[i+GuardLo]
}

// Zero clears interior and guard cells.
func (g *VecGrid) Zero() {
	for i := range g.buf {
		g.buf[i] = Vec3{}
	}
}

// Accumulate adds o cell by cell, guards included. Merging several grids in
// a fixed call order fixes the floating-point rounding of the result.
func (g *VecGrid) Accumulate(o *VecGrid) {
	if o.nx != g.nx {
		panic("grid: size mismatch in accumulate")
	}
	for i, v := range o.buf {
		g.buf[i].X += v.X
		g.buf[i].Y += v.Y
		g.buf[i].Z += v.Z
	}
}

// FoldPeriodic adds every guard cell to its periodic image and mirrors the
// sums back, so cell i and cell i±nx hold the same folded value afterwards.
func (g *VecGrid) FoldPeriodic() {
	for i := -GuardLo; i < GuardHi; i++ {
		a, b := g.At(i), g.At(g.nx+i)
		a.X += b.X
		a.Y += b.Y
		a.Z += b.Z
	}
	for i := -GuardLo; i < GuardHi; i++ {
		*g.At(g.nx + i) = *g.At(i)
	}
}

// CopyPeriodicGuards fills the guard cells with copies of their periodic
// images, for read-only stencil access.
func (g *VecGrid) CopyPeriodicGuards() {
	for i := -GuardLo; i < 0; i++ {
		*g.At(i) = *g.At(g.nx + i)
	}
	for i := 0; i < GuardHi; i++ {
		*g.At(g.nx + i) = *g.At(i)
	}
}
