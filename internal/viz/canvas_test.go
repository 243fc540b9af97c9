package viz

import (
	"strings"
	"testing"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)

	if c.Grid[0][0] == 0x2800 {
		t.Error("set pixel should light a braille dot")
	}
	if c.Grid[0][0] != 0x2800|0x1 {
		t.Errorf("expected dot 1, got %x", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 0)
	c.Set(0, 100)

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("out-of-bounds set leaked into cell (%d,%d)", i, j)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()

	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("clear should empty the canvas")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line should light its start")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line should light its end")
	}
}

func TestSetRuneMarkerIsOpaque(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetRune(1, 1, '●')
	// Braille drawing over a marker must not corrupt it.
	c.Set(2, 4)

	if c.Grid[1][1] != '●' {
		t.Errorf("marker overwritten: %q", c.Grid[1][1])
	}
}

func TestViewportMapping(t *testing.T) {
	c := NewCanvas(40, 20)
	vp := NewViewport(c, 0, 0, 1.5)

	px, py, ok := vp.ToPixel(0, 0)
	if !ok {
		t.Fatal("center must be inside the viewport")
	}
	if px != (c.Width*2-1)/2 && px != c.Width {
		t.Errorf("center x pixel %d not near the middle of %d", px, c.Width*2)
	}
	if py < c.Height*4/2-2 || py > c.Height*4/2+2 {
		t.Errorf("center y pixel %d not near the middle of %d", py, c.Height*4)
	}

	if _, _, ok := vp.ToPixel(10, 0); ok {
		t.Error("point beyond the window should be rejected")
	}
}

func TestRenderContoursProducesInk(t *testing.T) {
	cfg := potential.Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 80), mesh.Linspace(-1.5, 1.5, 80))
	z, err := potential.Evaluate(cfg, xg, yg)
	if err != nil {
		t.Fatal(err)
	}

	out := RenderContours(xg, yg, z, []float64{-3.7, -4.0, -4.5}, cfg, nil, 60, 24, 0, 0, 1.5)

	inked := 0
	for _, r := range out {
		if r != 0x2800 && r != '\n' {
			inked++
		}
	}
	if inked < 20 {
		t.Errorf("expected visible contours, got %d inked cells", inked)
	}
	if lines := strings.Count(out, "\n"); lines != 23 {
		t.Errorf("expected 24 rows, got %d newlines", lines)
	}
}

func TestShadeField(t *testing.T) {
	cfg := potential.Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 50), mesh.Linspace(-1.5, 1.5, 50))
	z, err := potential.Evaluate(cfg, xg, yg)
	if err != nil {
		t.Fatal(err)
	}

	out := ShadeField(z, 40, 16)
	rows := strings.Split(out, "\n")
	if len(rows) != 16 {
		t.Fatalf("expected 16 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len([]rune(row)) != 40 {
			t.Errorf("row %d has %d cells, want 40", i, len([]rune(row)))
		}
	}
}
