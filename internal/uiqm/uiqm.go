// Package uiqm implements the Underwater Image Quality Measure, a no-reference
// composite of colourfulness (UICM), sharpness (UISM) and contrast (UIConM).
package uiqm

import (
	"fmt"
	"math"
	"sort"

	"go-image-metrics/internal/metrics"

	"gonum.org/v1/gonum/floats"
)

const (
	uicmWeight   = 0.0282
	uismWeight   = 0.2953
	uiconmWeight = 3.5753

	trimLeft  = 0.1
	trimRight = 0.1

	blockSize = 10
)

// luma weights used to combine per-channel sharpness
var channelWeights = [3]float64{0.299, 0.587, 0.114}

// Scorer implements metrics.NoReferenceScorer.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

func (s *Scorer) Name() string { return "UIQM" }

// Score returns c1·UICM + c2·UISM + c3·UIConM. A channel with no edges at all
// yields NaN, which callers treat as an invalid result.
func (s *Scorer) Score(img *metrics.RGBGrid) (float64, error) {
	if img.Width < blockSize || img.Height < blockSize {
		return 0, fmt.Errorf("%w: %dx%d is below the %dx%d block", metrics.ErrImageTooSmall, img.Width, img.Height, blockSize, blockSize)
	}
	return uicmWeight*colorfulness(img) + uismWeight*sharpness(img) + uiconmWeight*contrast(img), nil
}

// colorfulness (UICM) from the RG and YB opponent channels
func colorfulness(img *metrics.RGBGrid) float64 {
	n := img.Width * img.Height
	rg := make([]float64, n)
	yb := make([]float64, n)
	for i := 0; i < n; i++ {
		r, g, b := img.Pix[3*i], img.Pix[3*i+1], img.Pix[3*i+2]
		rg[i] = r - g
		yb[i] = (r+g)/2 - b
	}

	muRG, muYB := trimmedMean(rg), trimmedMean(yb)
	l := math.Sqrt(muRG*muRG + muYB*muYB)
	r := math.Sqrt(spread(rg, muRG) + spread(yb, muYB))
	return -0.0268*l + 0.1586*r
}

// trimmedMean drops ceil(αL·K) low and floor(αR·K) high samples, plus one more
// sample on the low side, as the widely used UIQM implementation does.
func trimmedMean(x []float64) float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	k := len(sorted)
	lo := int(math.Ceil(trimLeft * float64(k)))
	hi := int(math.Floor(trimRight * float64(k)))
	weight := 1 / float64(k-lo-hi)

	start, end := lo+1, k-hi
	if start >= end {
		return 0
	}
	return weight * floats.Sum(sorted[start:end])
}

// spread is the mean squared deviation from mu
func spread(x []float64, mu float64) float64 {
	var s float64
	for _, v := range x {
		d := v - mu
		s += d * d
	}
	return s / float64(len(x))
}

// sharpness (UISM): per-channel EME of the Sobel edge map weighted by the channel
func sharpness(img *metrics.RGBGrid) float64 {
	var total float64
	for c := 0; c < 3; c++ {
		ch := img.Channel(c)
		edges := sobelMagnitude(ch).Mul(ch)
		total += channelWeights[c] * eme(edges)
	}
	return total
}

// sobelMagnitude returns hypot(gx, gy) rescaled so the maximum is 255. Borders
// use reflection with the edge sample repeated (…ba|abc…).
func sobelMagnitude(g *metrics.Grid) *metrics.Grid {
	w, h := g.Dx(), g.Dy()
	out := metrics.NewGrid(w, h)
	at := func(x, y int) float64 { return g.Get(reflect(x, w), reflect(y, h)) }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := (at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)) - (at(x-1, y-1) + 2*at(x-1, y) + at(x-1, y+1))
			gy := (at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)) - (at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1))
			out.Set(x, y, math.Hypot(gx, gy))
		}
	}

	// a flat channel has max 0 and scales to NaN
	values := out.Values()
	floats.Scale(255/floats.Max(values), values)
	return out
}

func reflect(i, n int) int {
	switch {
	case i < 0:
		return -i - 1
	case i >= n:
		return 2*n - 1 - i
	default:
		return i
	}
}

// eme is the measure of enhancement: 2/(k1·k2)·Σ log(max/min) over blocks,
// skipping blocks whose min or max is zero.
func eme(g *metrics.Grid) float64 {
	k1, k2 := g.Dx()/blockSize, g.Dy()/blockSize
	var val float64
	for by := 0; by < k2; by++ {
		for bx := 0; bx < k1; bx++ {
			lo, hi := blockRange(g, g, bx, by)
			if lo == 0 || hi == 0 {
				continue
			}
			val += math.Log(hi / lo)
		}
	}
	return 2 / float64(k1*k2) * val
}

// contrast (UIConM): PLIP-style log-AMEE over blocks spanning all three channels
func contrast(img *metrics.RGBGrid) float64 {
	lows := metrics.NewGrid(img.Width, img.Height)
	highs := metrics.NewGrid(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			lows.Set(x, y, math.Min(r, math.Min(g, b)))
			highs.Set(x, y, math.Max(r, math.Max(g, b)))
		}
	}

	k1, k2 := img.Width/blockSize, img.Height/blockSize
	var val float64
	for by := 0; by < k2; by++ {
		for bx := 0; bx < k1; bx++ {
			lo, hi := blockRange(lows, highs, bx, by)
			top, bot := hi-lo, hi+lo
			if math.IsNaN(top) || math.IsNaN(bot) || top == 0 || bot == 0 {
				continue
			}
			ratio := top / bot
			val += ratio * math.Log(ratio)
		}
	}
	return -1 / float64(k1*k2) * val
}

// blockRange returns min(lows) and max(highs) over block (bx, by). NaN samples
// propagate.
func blockRange(lows, highs *metrics.Grid, bx, by int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for y := by * blockSize; y < (by+1)*blockSize; y++ {
		for x := bx * blockSize; x < (bx+1)*blockSize; x++ {
			lo = math.Min(lo, lows.Get(x, y))
			hi = math.Max(hi, highs.Get(x, y))
		}
	}
	return lo, hi
}
