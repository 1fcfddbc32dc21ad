// Package emf holds the electromagnetic field acting on the particles and
// interpolates it to their positions.
package emf

import (
	"math"

	"github.com/wildstyl3r/empic/internal/grid"
)

// Field stores E and B on a staggered 1-D mesh: the Ex, By and Bz
// components live at half-integer positions (cell centers), Ey, Ez and Bx
// at integer positions (cell nodes).
type Field struct {
	E, B *grid.VecGrid
	DX   float64
}

func NewField(nx int, dx float64) *Field {
	if dx <= 0 {
		panic("emf: cell size must be positive")
	}
	return &Field{E: grid.NewVecGrid(nx), B: grid.NewVecGrid(nx), DX: dx}
}

// SetUniform fills the interior with constant field values and refreshes
// the guard cells.
func (f *Field) SetUniform(e0, b0 grid.Vec3) {
	for i := 0; i < f.E.Nx(); i++ {
		*f.E.At(i) = e0
		*f.B.At(i) = b0
	}
	f.UpdateGuards()
}

// UpdateGuards refreshes guard cells from the periodic interior. Call it
// after changing field values and before sampling.
func (f *Field) UpdateGuards() {
	f.E.CopyPeriodicGuards()
	f.B.CopyPeriodicGuards()
}

// Sample interpolates both fields linearly to cell ix, in-cell offset
// x in [0, 1). Staggered components use the half-shifted weight, node
// components the offset itself.
func (f *Field) Sample(ix int, x float64) (e, b grid.Vec3) {
	w := x
	ih, wh := ix, x-0.5
	if x < 0.5 {
		ih, wh = ix-1, x+0.5
	}

	e.X = math.FMA(f.E.At(ih).X, 1.-wh, f.E.At(ih+1).X*wh)
	e.Y = math.FMA(f.E.At(ix).Y, 1.-w, f.E.At(ix+1).Y*w)
	e.Z = math.FMA(f.E.At(ix).Z, 1.-w, f.E.At(ix+1).Z*w)

	b.X = math.FMA(f.B.At(ix).X, 1.-w, f.B.At(ix+1).X*w)
	b.Y = math.FMA(f.B.At(ih).Y, 1.-wh, f.B.At(ih+1).Y*wh)
	b.Z = math.FMA(f.B.At(ih).Z, 1.-wh, f.B.At(ih+1).Z*wh)
	return e, b
}

// Uniform samples a spatially constant field. It stands in for Field when
// the box carries only an external field, as in moving-window runs.
type Uniform struct {
	E0, B0 grid.Vec3
}

func (u Uniform) Sample(_ int, _ float64) (e, b grid.Vec3) {
	return u.E0, u.B0
}
