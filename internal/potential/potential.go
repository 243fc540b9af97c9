package potential

import "math"

// G is the gravitational constant in normalized units.
const G = 1.0

// Config describes the two massive bodies of a circular restricted
// three-body system: the primary of mass M1, the secondary of mass M2,
// and the radius of their mutual circular orbit. A Config is an
// immutable value; construct a new one instead of mutating.
type Config struct {
	M1            float64
	M2            float64
	OrbitalRadius float64
}

// Validate checks the mass configuration invariants: both masses
// positive, the secondary no heavier than the primary, and a positive
// orbital radius. It returns nil for a usable configuration and a
// *ConfigError naming the offending parameter otherwise.
func (c Config) Validate() error {
	if c.M1 <= 0 {
		return &ConfigError{Param: "m1", Value: c.M1, Wrapped: ErrNonPositiveMass}
	}
	if c.M2 <= 0 {
		return &ConfigError{Param: "m2", Value: c.M2, Wrapped: ErrNonPositiveMass}
	}
	if c.M2 > c.M1 {
		return &ConfigError{Param: "m2/m1", Value: c.M2 / c.M1, Wrapped: ErrMassRatioOutOfRange}
	}
	if c.OrbitalRadius <= 0 {
		return &ConfigError{Param: "orbital_radius", Value: c.OrbitalRadius, Wrapped: ErrNonPositiveRadius}
	}
	return nil
}

// TotalMass returns m1 + m2.
func (c Config) TotalMass() float64 {
	return c.M1 + c.M2
}

// Omega returns the angular frequency of the co-rotating frame from
// Kepler's third law for the two-body orbit.
func (c Config) Omega() float64 {
	r := c.OrbitalRadius
	return math.Sqrt(G * c.TotalMass() / (r * r * r))
}

// Barycentric returns the x positions of the two bodies in the
// co-rotating barycentric frame. The primary sits on the negative
// x-axis, the secondary on the positive, at distances proportional
// to the opposite mass.
func (c Config) Barycentric() (x1, x2 float64) {
	total := c.TotalMass()
	x1 = -c.M2 * c.OrbitalRadius / total
	x2 = c.M1 * c.OrbitalRadius / total
	return x1, x2
}

// At evaluates the effective potential per unit test mass at (x, y):
// the centrifugal term of the rotating frame plus the two point-mass
// gravitational terms,
//
//	Φ(x, y) = -½ω²(x²+y²) - G·m1/d1 - G·m2/d2
//
// A point landing exactly on a body divides by zero and yields -Inf
// under IEEE-754; that is the closed-form limit, not an error.
// At assumes a validated configuration.
func (c Config) At(x, y float64) float64 {
	x1, x2 := c.Barycentric()
	omega := c.Omega()
	return phi(x, y, x1, x2, 0.5*omega*omega, c.M1, c.M2)
}

// phi is the shared kernel for single-point and grid evaluation, so
// both paths produce bit-identical values.
func phi(x, y, x1, x2, halfOmega2, m1, m2 float64) float64 {
	dx1 := x - x1
	dx2 := x - x2
	d1 := math.Sqrt(dx1*dx1 + y*y)
	d2 := math.Sqrt(dx2*dx2 + y*y)
	return -halfOmega2*(x*x+y*y) - G*m1/d1 - G*m2/d2
}
