package species

import "github.com/wildstyl3r/empic/internal/grid"

// vparticle is one straight sub-trajectory confined to a single cell.
type vparticle struct {
	x0, x1   float64
	ix       int
	qvy, qvz float64
}

// depositZamb scatters the current of one particle motion onto j so that
// the longitudinal deposit exactly balances the charge the motion carries
// across cell faces. The motion starts at offset x0 of cell ix and covers
// dx cells, ending in cell ix+di; qnx scales the longitudinal element, qvy
// and qvz are the charge-weighted transverse velocities. A motion over a
// cell edge splits there into two single-cell segments, each deposited
// independently with its own average shape. The time step must keep every
// motion under one cell.
func depositZamb(j *grid.VecGrid, ix, di int, x0, dx, qnx, qvy, qvz float64) {
	var vp [2]vparticle
	n := 1
	vp[0] = vparticle{x0: x0, x1: x0 + dx, ix: ix, qvy: qvy, qvz: qvz}

	if di != 0 {
		if di < -1 || di > 1 {
			panic("species: particle crossed more than one cell in a single step")
		}
		// edge offset: 1 leaving right, 0 leaving left
		xint := 0.5 * float64(1+di)
		delta := (xint - x0) / dx

		vp[0].x1 = xint
		vp[0].qvy = qvy * delta
		vp[0].qvz = qvz * delta
		vp[1] = vparticle{
			x0:  xint - float64(di),
			x1:  x0 + dx - float64(di),
			ix:  ix + di,
			qvy: qvy * (1 - delta),
			qvz: qvz * (1 - delta),
		}
		n = 2
	}

	for k := 0; k < n; k++ {
		v := &vp[k]

		// average shape between the segment endpoints
		wp0 := 0.5 * ((1 - v.x0) + (1 - v.x1))
		wp1 := 0.5 * (v.x0 + v.x1)

		c := j.At(v.ix)
		c.X += qnx * (v.x1 - v.x0)
		c.Y += v.qvy * wp0
		c.Z += v.qvz * wp0

		f := j.At(v.ix + 1)
		f.Y += v.qvy * wp1
		f.Z += v.qvz * wp1
	}
}
