package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

const minGradientSize = 3

func checkGradientInput(g *Grid) error {
	if g.Dx() < minGradientSize || g.Dy() < minGradientSize {
		return fmt.Errorf("%w: %dx%d is below %dx%d", ErrImageTooSmall, g.Dx(), g.Dy(), minGradientSize, minGradientSize)
	}
	return nil
}

// AverageGradient is the mean of sqrt((dx²+dy²)/2), with central differences in
// the interior and one-sided differences on the border rows and columns.
func (c *calculator) AverageGradient(g *Grid) (float64, error) {
	if err := checkGradientInput(g); err != nil {
		return 0, err
	}
	w, h := g.Dx(), g.Dy()
	mags := NewGrid(w, h)

	c.parallelRows(h, func(start, end int) {
		for y := start; y < end; y++ {
			row, out := g.Row(y), mags.Row(y)
			for x := range row {
				var dx, dy float64
				switch x {
				case 0:
					dx = row[1] - row[0]
				case w - 1:
					dx = row[w-1] - row[w-2]
				default:
					dx = (row[x+1] - row[x-1]) / 2
				}
				switch y {
				case 0:
					dy = g.Get(x, 1) - g.Get(x, 0)
				case h - 1:
					dy = g.Get(x, h-1) - g.Get(x, h-2)
				default:
					dy = (g.Get(x, y+1) - g.Get(x, y-1)) / 2
				}
				out[x] = math.Sqrt((dx*dx + dy*dy) / 2)
			}
		}
	})

	return stat.Mean(mags.values, nil), nil
}

// EdgeIntensity is the mean 3×3 Sobel gradient magnitude. Borders are
// reflected without repeating the edge sample (…cb|abc…).
func (c *calculator) EdgeIntensity(g *Grid) (float64, error) {
	if err := checkGradientInput(g); err != nil {
		return 0, err
	}
	w, h := g.Dx(), g.Dy()
	mags := NewGrid(w, h)

	c.parallelRows(h, func(start, end int) {
		for y := start; y < end; y++ {
			up, mid, down := g.Row(reflect101(y-1, h)), g.Row(y), g.Row(reflect101(y+1, h))
			out := mags.Row(y)
			for x := range out {
				l, r := reflect101(x-1, w), reflect101(x+1, w)

				gx := (up[r] + 2*mid[r] + down[r]) - (up[l] + 2*mid[l] + down[l])
				gy := (down[l] + 2*down[x] + down[r]) - (up[l] + 2*up[x] + up[r])

				out[x] = math.Sqrt(gx*gx + gy*gy)
			}
		}
	})

	return stat.Mean(mags.values, nil), nil
}

func reflect101(i, n int) int {
	switch {
	case i < 0:
		return -i
	case i >= n:
		return 2*n - 2 - i
	default:
		return i
	}
}
