package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a single-channel H×W plane of float64 samples stored row-major.
type Grid struct {
	stride int
	values []float64
}

// NewGrid returns a zero-filled grid of the given width and height.
func NewGrid(w, h int) *Grid {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Grid{stride: w, values: make([]float64, w*h)}
}

func (g *Grid) Set(x, y int, v float64) { g.values[g.stride*y+x] = v }
func (g *Grid) Get(x, y int) float64    { return g.values[g.stride*y+x] }
func (g *Grid) Dx() int                 { return g.stride }

func (g *Grid) Dy() int {
	if g.stride == 0 {
		return 0
	}
	return len(g.values) / g.stride
}

// Row returns the backing slice of row y.
func (g *Grid) Row(y int) []float64 { return g.values[y*g.stride : (y+1)*g.stride] }

// Values returns the backing slice; callers must not modify it.
func (g *Grid) Values() []float64 { return g.values }

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return g.Dx() == o.Dx() && g.Dy() == o.Dy() }

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	c := &Grid{stride: g.stride, values: make([]float64, len(g.values))}
	copy(c.values, g.values)
	return c
}

// Mul returns the elementwise product g·o.
func (g *Grid) Mul(o *Grid) *Grid {
	out := &Grid{stride: g.stride, values: make([]float64, len(g.values))}
	floats.MulTo(out.values, g.values, o.values)
	return out
}

// Stats summarises the grid size and value range for log output.
func (g *Grid) Stats() string {
	if len(g.values) == 0 {
		return fmt.Sprintf("grid[%dx%d]", g.Dx(), g.Dy())
	}
	return fmt.Sprintf("grid[%dx%d, vals{%f,%f}]", g.Dx(), g.Dy(), floats.Min(g.values), floats.Max(g.values))
}

// RGBGrid is an H×W plane of interleaved R,G,B float64 samples.
type RGBGrid struct {
	Width, Height int
	Pix           []float64
}

// NewRGBGrid returns a zero-filled RGB grid.
func NewRGBGrid(w, h int) *RGBGrid {
	return &RGBGrid{Width: w, Height: h, Pix: make([]float64, 3*w*h)}
}

func (g *RGBGrid) At(x, y int) (r, gr, b float64) {
	i := 3 * (y*g.Width + x)
	return g.Pix[i], g.Pix[i+1], g.Pix[i+2]
}

func (g *RGBGrid) SetRGB(x, y int, r, gr, b float64) {
	i := 3 * (y*g.Width + x)
	g.Pix[i], g.Pix[i+1], g.Pix[i+2] = r, gr, b
}

// Channel extracts channel c (0=R, 1=G, 2=B) as a Grid.
func (g *RGBGrid) Channel(c int) *Grid {
	out := NewGrid(g.Width, g.Height)
	for i := range out.values {
		out.values[i] = g.Pix[3*i+c]
	}
	return out
}
