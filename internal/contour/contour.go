// Package contour extracts equipotential isolines from a sampled
// scalar field using marching squares.
package contour

import (
	"math"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
)

// Segment is one isoline piece in world coordinates.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Levels returns n values spread evenly across the finite range of z.
// Singular ±Inf samples around the bodies are ignored so the levels
// stay inside the renderable range. The extremes themselves are
// excluded; a level exactly at the minimum or maximum degenerates to
// isolated points.
func Levels(z *mesh.Matrix, n int) []float64 {
	min, max, ok := z.FiniteRange()
	if !ok || n <= 0 {
		return nil
	}
	return LevelsBetween(min, max, n)
}

// LevelsBetween returns n values evenly spaced strictly inside (lo, hi).
func LevelsBetween(lo, hi float64, n int) []float64 {
	if n <= 0 || hi < lo {
		return nil
	}
	if hi == lo {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n+1)
	for i := range out {
		out[i] = lo + step*float64(i+1)
	}
	return out
}

// March walks every grid cell and emits the line segments where the
// field crosses the given level. Cells touching a non-finite corner
// (a singularity at a body) are skipped; the crossing has no defined
// position there.
func March(xg, yg, z *mesh.Matrix, level float64) []Segment {
	var segs []Segment
	for i := 0; i < z.Rows-1; i++ {
		for j := 0; j < z.Cols-1; j++ {
			segs = marchCell(segs, xg, yg, z, i, j, level)
		}
	}
	return segs
}

func marchCell(segs []Segment, xg, yg, z *mesh.Matrix, i, j int, level float64) []Segment {
	// Corners: a=(i,j) b=(i,j+1) c=(i+1,j+1) d=(i+1,j).
	za, zb := z.At(i, j), z.At(i, j+1)
	zc, zd := z.At(i+1, j+1), z.At(i+1, j)

	if !finite(za) || !finite(zb) || !finite(zc) || !finite(zd) {
		return segs
	}

	idx := 0
	if za >= level {
		idx |= 1
	}
	if zb >= level {
		idx |= 2
	}
	if zc >= level {
		idx |= 4
	}
	if zd >= level {
		idx |= 8
	}
	if idx == 0 || idx == 15 {
		return segs
	}

	top := func() (float64, float64) {
		return lerp(xg.At(i, j), yg.At(i, j), za, xg.At(i, j+1), yg.At(i, j+1), zb, level)
	}
	right := func() (float64, float64) {
		return lerp(xg.At(i, j+1), yg.At(i, j+1), zb, xg.At(i+1, j+1), yg.At(i+1, j+1), zc, level)
	}
	bottom := func() (float64, float64) {
		return lerp(xg.At(i+1, j), yg.At(i+1, j), zd, xg.At(i+1, j+1), yg.At(i+1, j+1), zc, level)
	}
	left := func() (float64, float64) {
		return lerp(xg.At(i, j), yg.At(i, j), za, xg.At(i+1, j), yg.At(i+1, j), zd, level)
	}

	join := func(p, q func() (float64, float64)) {
		x1, y1 := p()
		x2, y2 := q()
		segs = append(segs, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}

	switch idx {
	case 1, 14:
		join(left, top)
	case 2, 13:
		join(top, right)
	case 3, 12:
		join(left, right)
	case 4, 11:
		join(right, bottom)
	case 6, 9:
		join(top, bottom)
	case 7, 8:
		join(left, bottom)
	case 5:
		// Saddle: disambiguate with the cell-center average.
		if (za+zb+zc+zd)/4 >= level {
			join(left, top)
			join(right, bottom)
		} else {
			join(top, right)
			join(left, bottom)
		}
	case 10:
		if (za+zb+zc+zd)/4 >= level {
			join(top, right)
			join(left, bottom)
		} else {
			join(left, top)
			join(right, bottom)
		}
	}
	return segs
}

// lerp interpolates the crossing position along one cell edge.
func lerp(ax, ay, az, bx, by, bz, level float64) (float64, float64) {
	if az == bz {
		return (ax + bx) / 2, (ay + by) / 2
	}
	t := (level - az) / (bz - az)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ax + t*(bx-ax), ay + t*(by-ay)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
