// Package imaging converts decoded images into metric grids.
package imaging

import (
	"image"

	"go-image-metrics/internal/metrics"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// ToGray converts img to 8-bit luma (0.299R + 0.587G + 0.114B).
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	f := gift.New(gift.Grayscale())
	dst := image.NewGray(f.Bounds(img.Bounds()))
	f.Draw(dst, img)
	return dst
}

// Resize resamples src to w×h with the given interpolator.
func Resize(src *image.Gray, w, h int, interp draw.Interpolator) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// GrayToGrid copies the intensities of g, in [0, 255], into a grid.
func GrayToGrid(g *image.Gray) *metrics.Grid {
	b := g.Bounds()
	grid := metrics.NewGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
		out := grid.Row(y)
		for x := range out {
			out[x] = float64(row[x])
		}
	}
	return grid
}

// ToRGBGrid returns the 8-bit R,G,B samples of img. Translucent pixels are
// alpha-premultiplied; the alpha channel itself is dropped.
func ToRGBGrid(img image.Image) *metrics.RGBGrid {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	grid := metrics.NewRGBGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := rgba.PixOffset(x, y)
			grid.SetRGB(x, y, float64(rgba.Pix[i]), float64(rgba.Pix[i+1]), float64(rgba.Pix[i+2]))
		}
	}
	return grid
}
