package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/analysis"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/contour"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

func demoField(t *testing.T, n int) (potential.Config, *mesh.Matrix, *mesh.Matrix, *mesh.Matrix) {
	t.Helper()
	cfg := potential.Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, n), mesh.Linspace(-1.5, 1.5, n))
	z, err := potential.Evaluate(cfg, xg, yg)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, xg, yg, z
}

func TestContourSVG(t *testing.T) {
	cfg, xg, yg, z := demoField(t, 60)
	levels := contour.Levels(z, 8)
	pts := analysis.LagrangePoints(cfg)

	svg := ContourSVG(xg, yg, z, levels, cfg, pts, DefaultSVGOptions())

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML prologue")
	}
	if !strings.Contains(svg, "<svg ") || !strings.Contains(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	if !strings.Contains(svg, "<line ") {
		t.Error("expected isoline segments")
	}
	for _, name := range []string{"L1", "L2", "L3", "L4", "L5"} {
		if !strings.Contains(svg, ">"+name+"<") {
			t.Errorf("missing %s label", name)
		}
	}
}

func TestContourSVGWithoutLagrange(t *testing.T) {
	cfg, xg, yg, z := demoField(t, 30)

	svg := ContourSVG(xg, yg, z, contour.Levels(z, 4), cfg, nil, DefaultSVGOptions())

	if strings.Contains(svg, ">L1<") {
		t.Error("lagrange markers should be absent when pts is nil")
	}
}

func TestHeatmapPNG(t *testing.T) {
	_, _, _, z := demoField(t, 40)
	path := filepath.Join(t.TempDir(), "field.png")

	if err := HeatmapPNG(z, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output does not decode as PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 40 {
		t.Errorf("expected 40x40 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	low := heatColor(0)
	high := heatColor(1)

	if low.B <= low.R {
		t.Error("low end should be blue-dominant")
	}
	if high.R != 255 || high.G != 255 {
		t.Error("high end should be yellow")
	}
}
