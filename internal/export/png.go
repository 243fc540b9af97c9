package export

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
)

// HeatmapPNG writes the field as a raster image, one pixel per grid
// sample, low potential in blue through yellow at the top of the
// range. Singular -Inf samples clamp to the bottom of the colormap.
func HeatmapPNG(z *mesh.Matrix, path string) error {
	min, max, ok := z.FiniteRange()
	if !ok {
		min, max = 0, 1
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, z.Cols, z.Rows))
	for i := 0; i < z.Rows; i++ {
		for j := 0; j < z.Cols; j++ {
			v := z.At(i, j)
			switch {
			case math.IsInf(v, -1) || math.IsNaN(v):
				v = min
			case math.IsInf(v, 1):
				v = max
			}
			img.Set(j, i, heatColor((v-min)/span))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// heatColor maps t in [0,1] along a blue → cyan → yellow ramp.
func heatColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var r, g, b float64
	switch {
	case t < 0.5:
		// blue to cyan
		s := t * 2
		r, g, b = 0.1, 0.3+0.7*s, 0.8
	default:
		// cyan to yellow
		s := (t - 0.5) * 2
		r, g, b = s, 1.0, 0.8*(1-s)
	}
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
