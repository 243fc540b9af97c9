package viz

import (
	"math"
	"strings"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/analysis"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/contour"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

// Viewport maps world coordinates onto canvas sub-pixels. The world
// window is square in y per sub-pixel aspect, centered on
// (CenterX, CenterY) with half-width HalfWidth.
type Viewport struct {
	CenterX, CenterY float64
	HalfWidth        float64
	Canvas           *Canvas
}

func NewViewport(canvas *Canvas, cx, cy, halfWidth float64) *Viewport {
	return &Viewport{CenterX: cx, CenterY: cy, HalfWidth: halfWidth, Canvas: canvas}
}

func (v *Viewport) subPixels() (w, h int) {
	return v.Canvas.Width * 2, v.Canvas.Height * 4
}

// ToPixel converts a world point to sub-pixel coordinates. ok is
// false for points outside the window.
func (v *Viewport) ToPixel(x, y float64) (px, py int, ok bool) {
	w, h := v.subPixels()
	halfHeight := v.HalfWidth * float64(h) / float64(w)

	fx := (x - v.CenterX + v.HalfWidth) / (2 * v.HalfWidth)
	fy := (v.CenterY + halfHeight - y) / (2 * halfHeight)

	px = int(fx * float64(w-1))
	py = int(fy * float64(h-1))
	ok = px >= 0 && px < w && py >= 0 && py < h
	return px, py, ok
}

// Bounds returns the world rectangle the viewport displays.
func (v *Viewport) Bounds() (xmin, xmax, ymin, ymax float64) {
	w, h := v.subPixels()
	halfHeight := v.HalfWidth * float64(h) / float64(w)
	return v.CenterX - v.HalfWidth, v.CenterX + v.HalfWidth,
		v.CenterY - halfHeight, v.CenterY + halfHeight
}

// DrawSegment clips and draws one isoline segment.
func (v *Viewport) DrawSegment(seg contour.Segment) {
	x1, y1, ok1 := v.ToPixel(seg.X1, seg.Y1)
	x2, y2, ok2 := v.ToPixel(seg.X2, seg.Y2)
	if !ok1 && !ok2 {
		return
	}
	v.Canvas.DrawLine(x1, y1, x2, y2)
}

// Mark places a marker rune at a world position.
func (v *Viewport) Mark(x, y float64, r rune) {
	px, py, ok := v.ToPixel(x, y)
	if !ok {
		return
	}
	v.Canvas.SetRune(px/2, py/4, r)
}

// RenderContours draws the equipotential contours of a field into a
// fresh canvas, with the two bodies marked. Lagrange markers are
// added when pts is non-nil.
func RenderContours(xg, yg, z *mesh.Matrix, levels []float64, cfg potential.Config, pts []analysis.LagrangePoint, width, height int, cx, cy, halfWidth float64) string {
	canvas := NewCanvas(width, height)
	vp := NewViewport(canvas, cx, cy, halfWidth)

	for _, level := range levels {
		for _, seg := range contour.March(xg, yg, z, level) {
			vp.DrawSegment(seg)
		}
	}

	x1, x2 := cfg.Barycentric()
	vp.Mark(x1, 0, '●')
	vp.Mark(x2, 0, 'o')
	for _, p := range pts {
		vp.Mark(p.X, p.Y, rune(p.Name[1]))
	}

	return canvas.String()
}

// shadeRamp orders characters from deep potential wells to high ground.
const shadeRamp = " .:-=+*#%@"

// ShadeField renders the field as a character-density raster, the
// terminal stand-in for a filled contour plot with a colorbar. The
// field is nearest-sampled down to width x height cells; singular
// samples shade as the deepest band.
func ShadeField(z *mesh.Matrix, width, height int) string {
	min, max, ok := z.FiniteRange()
	if !ok || width <= 0 || height <= 0 {
		return ""
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	ramp := []rune(shadeRamp)
	var sb strings.Builder
	for r := 0; r < height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		i := r * (z.Rows - 1) / maxInt(height-1, 1)
		for c := 0; c < width; c++ {
			j := c * (z.Cols - 1) / maxInt(width-1, 1)
			v := z.At(i, j)
			if math.IsInf(v, -1) || math.IsNaN(v) {
				v = min
			}
			if math.IsInf(v, 1) {
				v = max
			}
			idx := int((v - min) / span * float64(len(ramp)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			sb.WriteRune(ramp[idx])
		}
	}
	return sb.String()
}

// ShadeLegend describes the ramp ends, lowest potential first.
func ShadeLegend(z *mesh.Matrix) string {
	min, max, ok := z.FiniteRange()
	if !ok {
		return ""
	}
	return LegendStyle.Render(
		"Φ " + formatPotential(min) + " '" + string(shadeRamp[0]) + "' … '" +
			string(shadeRamp[len(shadeRamp)-1]) + "' " + formatPotential(max))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
