// Package diag turns simulation state into tabular diagnostics.
package diag

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wildstyl3r/empic/internal/current"
	"github.com/wildstyl3r/empic/internal/grid"
	"github.com/wildstyl3r/empic/internal/species"
	"github.com/wildstyl3r/empic/internal/utils"
)

// History accumulates one row of species state per recorded step.
type History struct {
	dt       float64
	rows     utils.CSV
	energies []float64
}

func NewHistory(dt float64) *History {
	return &History{dt: dt}
}

// Record appends the current state of s.
func (h *History) Record(s *species.Species) {
	h.energies = append(h.energies, s.Energy)
	h.rows = append(h.rows, []string{
		fmt.Sprint(s.Iter),
		fmt.Sprint(float64(s.Iter) * h.dt),
		fmt.Sprint(s.Energy),
		fmt.Sprint(s.Np()),
	})
}

func (h *History) Columns() []string {
	return []string{"iter", "time", "energy", "particles"}
}

func (h *History) Rows() utils.CSV {
	return h.rows
}

// EnergyStats summarizes the recorded kinetic energy history.
func (h *History) EnergyStats() (mean, sigma float64) {
	if len(h.energies) == 0 {
		return 0, 0
	}
	mean = stat.Mean(h.energies, nil)
	if len(h.energies) > 1 {
		sigma = stat.StdDev(h.energies, nil)
	}
	return
}

// CurrentProfile reports the interior current density cell by cell.
func CurrentProfile(cur *current.Current) (utils.CSV, []string) {
	rows := make(utils.CSV, 0, cur.J.Nx())
	for ix := 0; ix < cur.J.Nx(); ix++ {
		j := cur.J.At(ix)
		rows = append(rows, []string{
			fmt.Sprint(ix),
			fmt.Sprint(j.X),
			fmt.Sprint(j.Y),
			fmt.Sprint(j.Z),
		})
	}
	return rows, []string{"cell", "jx", "jy", "jz"}
}

// CurrentSummary condenses a current profile: the per-component totals and
// the cell of the strongest longitudinal flow.
type CurrentSummary struct {
	TotalX, TotalY, TotalZ float64
	PeakCell               int
	PeakX                  float64
}

func SummarizeCurrent(cur *current.Current) CurrentSummary {
	nx := cur.J.Nx()
	jx := make([]float64, nx)
	jy := make([]float64, nx)
	jz := make([]float64, nx)
	abs := make([]float64, nx)
	for ix := 0; ix < nx; ix++ {
		j := cur.J.At(ix)
		jx[ix], jy[ix], jz[ix] = j.X, j.Y, j.Z
		abs[ix] = math.Abs(j.X)
	}
	peak := floats.MaxIdx(abs)
	return CurrentSummary{
		TotalX:   floats.Sum(jx),
		TotalY:   floats.Sum(jy),
		TotalZ:   floats.Sum(jz),
		PeakCell: peak,
		PeakX:    jx[peak],
	}
}

// DepositCharge spreads the charge of every particle of s over its cell
// and the next with linear weights. Periodic runs fold the guard cells
// back like the current deposit does.
func DepositCharge(s *species.Species, periodic bool) *grid.ScalarGrid {
	rho := grid.NewScalarGrid(s.NX)
	for _, p := range s.Parts() {
		*rho.At(p.IX) += (1. - p.X) * s.Q
		*rho.At(p.IX + 1) += p.X * s.Q
	}
	if periodic {
		rho.FoldPeriodic()
	}
	return rho
}

// ChargeProfile reports a deposited charge grid cell by cell.
func ChargeProfile(rho *grid.ScalarGrid) (utils.CSV, []string) {
	interior := rho.Interior()
	rows := make(utils.CSV, 0, len(interior))
	for ix, q := range interior {
		rows = append(rows, []string{fmt.Sprint(ix), fmt.Sprint(q)})
	}
	return rows, []string{"cell", "charge"}
}

// CellCounts tallies particles per cell and locates the densest cell.
func CellCounts(s *species.Species) (counts []int, busiest int) {
	counts = make([]int, s.NX)
	for _, p := range s.Parts() {
		if 0 <= p.IX && p.IX < s.NX {
			counts[p.IX]++
		}
	}
	busiest = utils.Argmax(counts)
	return
}

// DensityProfile reports the per-cell particle tallies cell by cell.
func DensityProfile(s *species.Species) (utils.CSV, []string) {
	counts, _ := CellCounts(s)
	rows := make(utils.CSV, 0, len(counts))
	for ix, n := range counts {
		rows = append(rows, []string{fmt.Sprint(ix), fmt.Sprint(n)})
	}
	return rows, []string{"cell", "count"}
}
