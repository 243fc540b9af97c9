// Package export renders computed potential fields to SVG contour
// plots and PNG heatmaps.
package export

import (
	"fmt"
	"strings"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/analysis"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/contour"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

type SVGOptions struct {
	Width, Height int
	Background    string
	StrokeWidth   float64
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       800,
		Height:      800,
		Background:  "#0a0a0a",
		StrokeWidth: 1.0,
	}
}

// strokePalette cycles across contour levels, cold to hot.
var strokePalette = []string{
	"#3b4cc0", "#5977e3", "#7b9ff9", "#9ebeff", "#c0d4f5",
	"#dddcdc", "#f2cab5", "#f7ac8e", "#ee8468", "#d65244",
}

// ContourSVG renders the equipotential isolines of a field, the two
// bodies, and optionally the Lagrange points into an SVG document.
func ContourSVG(xg, yg, z *mesh.Matrix, levels []float64, cfg potential.Config, pts []analysis.LagrangePoint, opts SVGOptions) string {
	xmin, xmax := worldRange(xg)
	ymin, ymax := worldRange(yg)
	if xmax == xmin || ymax == ymin {
		return ""
	}

	toPx := func(x, y float64) (float64, float64) {
		px := (x - xmin) / (xmax - xmin) * float64(opts.Width)
		py := float64(opts.Height) - (y-ymin)/(ymax-ymin)*float64(opts.Height)
		return px, py
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	for li, level := range levels {
		color := strokePalette[li*len(strokePalette)/maxInt(len(levels), 1)%len(strokePalette)]
		segs := contour.March(xg, yg, z, level)
		if len(segs) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.1f" fill="none">`+"\n", color, opts.StrokeWidth))
		for _, s := range segs {
			x1, y1 := toPx(s.X1, s.Y1)
			x2, y2 := toPx(s.X2, s.Y2)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2))
		}
		sb.WriteString("</g>\n")
	}

	// Bodies, primary drawn larger.
	x1, x2 := cfg.Barycentric()
	px, py := toPx(x1, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="#ffd700"/>`+"\n", px, py))
	px, py = toPx(x2, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#c0c0c0"/>`+"\n", px, py))

	for _, p := range pts {
		px, py = toPx(p.X, p.Y)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="none" stroke="#00ff88"/>`+"\n", px, py))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" fill="#00ff88">%s</text>`+"\n", px+6, py-6, p.Name))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func worldRange(m *mesh.Matrix) (min, max float64) {
	min, max, _ = m.FiniteRange()
	return min, max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
