// Package potential computes the effective (Jacobi-like) potential
// per unit test mass of a circular restricted three-body system,
// sampled in the co-rotating barycentric frame.
//
// The two massive bodies sit on the x-axis, the primary at
// x1 = -m2·R/(m1+m2) and the secondary at x2 = +m1·R/(m1+m2), and
// the frame rotates at ω = sqrt(G(m1+m2)/R³) with G normalized to 1.
// The potential at a point is the centrifugal term plus the two
// point-mass gravitational terms:
//
//	Φ(x, y) = -½ω²(x²+y²) - G·m1/d1 - G·m2/d2
//
// Level sets of Φ are the equipotential contours whose pinch points
// are the Lagrange points.
//
// # Usage
//
//	cfg := potential.Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
//	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 200), mesh.Linspace(-1.5, 1.5, 200))
//	field, err := potential.Evaluate(cfg, xg, yg)
//
// # Numerical behavior
//
// Evaluation is pure and deterministic: identical inputs yield
// bit-identical output, independent of the worker count. Grid samples
// that land exactly on a body are genuine singularities of the
// closed form and come back as -Inf rather than an error.
package potential
