// Package analysis locates the libration structure of an effective
// potential field: the five Lagrange equilibria and axis cross
// sections used for plotting.
package analysis

import (
	"math"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

// LagrangePoint is one equilibrium of the co-rotating frame, with the
// effective potential value there. Those values make good contour
// levels: they trace the Roche lobes and the horseshoe region.
type LagrangePoint struct {
	Name      string
	X, Y      float64
	Potential float64
}

const (
	bracketEps  = 1e-9
	bisectSteps = 200
)

// LagrangePoints returns L1..L5 for a validated configuration.
// The collinear points are roots of ∂Φ/∂x on the x-axis, found by
// bisection between the bodies (L1), beyond the secondary (L2) and
// beyond the primary (L3). L4 and L5 sit at the equilateral positions.
func LagrangePoints(cfg potential.Config) []LagrangePoint {
	x1, x2 := cfg.Barycentric()
	r := cfg.OrbitalRadius
	eps := bracketEps * r

	l1 := bisect(cfg, x1+eps, x2-eps)
	l2 := bisect(cfg, x2+eps, x2+3*r)
	l3 := bisect(cfg, x1-3*r, x1-eps)

	// Equilateral points: distance R from both bodies.
	lx := (x1 + x2) / 2
	ly := math.Sqrt(3) / 2 * r

	pts := []LagrangePoint{
		{Name: "L1", X: l1, Y: 0},
		{Name: "L2", X: l2, Y: 0},
		{Name: "L3", X: l3, Y: 0},
		{Name: "L4", X: lx, Y: ly},
		{Name: "L5", X: lx, Y: -ly},
	}
	for i := range pts {
		pts[i].Potential = cfg.At(pts[i].X, pts[i].Y)
	}
	return pts
}

// gradX is ∂Φ/∂x along y = 0. It diverges at the body positions,
// which guarantees a sign change in each collinear bracket.
func gradX(cfg potential.Config, x float64) float64 {
	x1, x2 := cfg.Barycentric()
	omega := cfg.Omega()
	d1 := x - x1
	d2 := x - x2
	return -omega*omega*x +
		potential.G*cfg.M1*d1/math.Abs(d1*d1*d1) +
		potential.G*cfg.M2*d2/math.Abs(d2*d2*d2)
}

func bisect(cfg potential.Config, lo, hi float64) float64 {
	flo := gradX(cfg, lo)
	for i := 0; i < bisectSteps; i++ {
		mid := (lo + hi) / 2
		fmid := gradX(cfg, mid)
		if fmid == 0 {
			return mid
		}
		if (flo > 0) == (fmid > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// CrossSection evaluates Φ(x, 0) at each x. The profile shows the
// potential humps at the collinear Lagrange points.
func CrossSection(cfg potential.Config, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = cfg.At(x, 0)
	}
	return out
}
