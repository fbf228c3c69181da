// Package surface owns the lattice of world-space query points handed to the
// wave field every tick, along with the result buffers the renderer reads.
package surface

import (
	"sync"

	"seastate/pkg/ocean"
)

// Grid is a regular lattice of query points. Its displacement and height
// buffers are allocated once at construction and overwritten in place on
// every Fill, so a steady-state tick performs no allocation.
type Grid struct {
	w, h    int
	spacing float64

	disp    []ocean.Displacement
	heights []float64
}

// NewGrid allocates a w×h lattice with the given world-space point spacing.
func NewGrid(w, h int, spacing float64) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if spacing <= 0 {
		spacing = 1
	}
	return &Grid{
		w: w, h: h, spacing: spacing,
		disp:    make([]ocean.Displacement, w*h),
		heights: make([]float64, w*h),
	}
}

// Size returns the lattice dimensions.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Heights exposes the vertical displacement buffer in row-major order.
// The slice is overwritten by the next Fill.
func (g *Grid) Heights() []float64 { return g.heights }

// Displacements exposes the full 3D result buffer in row-major order.
// The slice is overwritten by the next Fill.
func (g *Grid) Displacements() []ocean.Displacement { return g.disp }

// Index returns the linear buffer index for lattice coordinates (x, z).
func (g *Grid) Index(x, z int) int { return z*g.w + x }

// Fill samples the field at every lattice point for time t.
func (g *Grid) Fill(field *ocean.WaveField, t float64) {
	g.fillRows(field, t, 0, g.h)
}

// FillParallel splits the lattice rows across the given number of goroutines.
// The field is read-only during sampling and each worker writes a disjoint
// row range, so no locking is needed. workers < 2 falls back to Fill. The
// results are identical to Fill.
func (g *Grid) FillParallel(field *ocean.WaveField, t float64, workers int) {
	if workers > g.h {
		workers = g.h
	}
	if workers < 2 {
		g.Fill(field, t)
		return
	}

	rowsPer := (g.h + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < g.h; start += rowsPer {
		end := start + rowsPer
		if end > g.h {
			end = g.h
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			g.fillRows(field, t, start, end)
		}(start, end)
	}
	wg.Wait()
}

func (g *Grid) fillRows(field *ocean.WaveField, t float64, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		z := float64(row) * g.spacing
		base := row * g.w
		for col := 0; col < g.w; col++ {
			x := float64(col) * g.spacing
			d := field.Sample(t, x, z)
			g.disp[base+col] = d
			g.heights[base+col] = d.Y
		}
	}
}
