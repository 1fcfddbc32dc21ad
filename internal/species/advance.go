package species

import (
	"math"
	"sync"

	"github.com/wildstyl3r/empic/internal/current"
	"github.com/wildstyl3r/empic/internal/grid"
	"github.com/wildstyl3r/empic/internal/timer"
)

// FieldSampler yields the electromagnetic field acting on a particle at
// cell ix, in-cell offset x.
type FieldSampler interface {
	Sample(ix int, x float64) (e, b grid.Vec3)
}

// Advance pushes every particle through one time step and deposits the
// resulting current into cur. After the particle loop the population energy
// and the iteration counter are refreshed, leavers are wrapped or removed
// according to the boundary rules, the population is re-sorted by cell
// every SortPeriod steps, and the push count and wall time are added to st.
func (s *Species) Advance(fld FieldSampler, cur *current.Current, st *Stats) {
	t0 := timer.Ticks()
	pushed := len(s.parts)

	var energy float64
	if s.Threads > 1 {
		energy = s.advanceParallel(fld, cur)
	} else {
		energy = s.advanceRange(fld, cur.J, 0, len(s.parts))
	}

	s.Energy = s.Q * s.QM * energy * s.DX
	s.Iter++

	s.processBoundaries()

	if s.SortPeriod > 0 && s.Iter%s.SortPeriod == 0 {
		s.sortByCell()
	}

	st.Add(pushed, timer.IntervalSeconds(t0, timer.Ticks()))
}

// advanceRange pushes particles [lo, hi) and deposits their current into j.
// It returns the accumulated energy sum Σ u²/(1+γ), which Advance scales by
// q·(q/m)·dx.
func (s *Species) advanceRange(fld FieldSampler, j *grid.VecGrid, lo, hi int) float64 {
	tem := 0.5 * s.DT * s.QM
	dtDx := s.DT / s.DX
	qnx := s.Q * s.DX / s.DT

	var energy float64
	for i := lo; i < hi; i++ {
		p := &s.parts[i]

		e, b := fld.Sample(p.IX, p.X)

		ux, uy, uz, du := borisPush(p.UX, p.UY, p.UZ, e, b, tem)
		energy += du

		rg := 1 / math.Sqrt(1+ux*ux+uy*uy+uz*uz)
		dx := dtDx * rg * ux
		x1 := p.X + dx
		di := int(math.Floor(x1))

		depositZamb(j, p.IX, di, p.X, dx, qnx, s.Q*uy*rg, s.Q*uz*rg)

		p.UX, p.UY, p.UZ = ux, uy, uz
		p.X = x1 - float64(di)
		p.IX += di
	}
	return energy
}

// borisPush advances one momentum through the half electric kick, the
// magnetic rotation and the closing half kick, with tem = 0.5·dt·(q/m). It
// returns the new momentum and the energy term u²/(1+γ) taken between the
// kicks.
func borisPush(ux, uy, uz float64, e, b grid.Vec3, tem float64) (nux, nuy, nuz, ene float64) {
	ex := e.X * tem
	ey := e.Y * tem
	ez := e.Z * tem

	utx := ux + ex
	uty := uy + ey
	utz := uz + ez

	u2 := utx*utx + uty*uty + utz*utz
	gamma := math.Sqrt(1 + u2)
	ene = u2 / (1 + gamma)

	// rotation around b, in two half turns
	gtem := tem / gamma
	bx := b.X * gtem
	by := b.Y * gtem
	bz := b.Z * gtem

	px := utx + uty*bz - utz*by
	py := uty + utz*bx - utx*bz
	pz := utz + utx*by - uty*bx

	otsq := 2 / (1 + bx*bx + by*by + bz*bz)
	bx *= otsq
	by *= otsq
	bz *= otsq

	utx += py*bz - pz*by
	uty += pz*bx - px*bz
	utz += px*by - py*bx

	return utx + ex, uty + ey, utz + ez, ene
}

// advanceParallel splits the population into Threads contiguous chunks,
// each pushed by a worker into a private grid. Worker grids and energy
// partials merge in ascending worker order, so a run with a fixed
// population and thread count reproduces bit for bit.
func (s *Species) advanceParallel(fld FieldSampler, cur *current.Current) float64 {
	n := s.Threads
	if len(s.grids) < n {
		s.grids = make([]*grid.VecGrid, n)
		for w := range s.grids {
			s.grids[w] = grid.NewVecGrid(s.NX)
		}
		s.partial = make([]float64, n)
	}

	chunk := (len(s.parts) + n - 1) / n
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		lo := min(w*chunk, len(s.parts))
		hi := min(lo+chunk, len(s.parts))
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			g := s.grids[w]
			g.Zero()
			s.partial[w] = s.advanceRange(fld, g, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	var energy float64
	for w := 0; w < n; w++ {
		energy += s.partial[w]
		cur.J.Accumulate(s.grids[w])
	}
	return energy
}
