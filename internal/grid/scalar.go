package grid

// ScalarGrid stores a scalar quantity on nx cells with the same guard-cell
// addressing as VecGrid.
type ScalarGrid struct {
	nx  int
	buf []float64
}

func NewScalarGrid(nx int) *ScalarGrid {
	if nx <= 0 {
		panic("grid: cell count must be positive")
	}
	return &ScalarGrid{nx: nx, buf: make([]float64, nx+GuardLo+GuardHi)}
}

func (g *ScalarGrid) Nx() int { return g.nx }

func (g *ScalarGrid) At(i int) *float64 {
	return &g.buf[i+GuardLo]
}

// FoldPeriodic folds guard cells into the interior as VecGrid.FoldPeriodic
// does.
func (g *ScalarGrid) FoldPeriodic() {
	for i := -GuardLo; i < GuardHi; i++ {
		*g.At(i) += *g.At(g.nx + i)
	}
	for i := -GuardLo; i < GuardHi; i++ {
		*g.At(g.nx + i) = *g.At(i)
	}
}

// Interior returns the nx interior cells, cell 0 first. The slice aliases
// the grid storage.
func (g *ScalarGrid) Interior() []float64 {
	return g.buf[GuardLo : GuardLo+g.nx]
}
