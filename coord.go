package idw

import (
	"github.com/tphakala/go-idw/internal/mathutil"
)

// Float is the type constraint for coordinate components and sample values.
// The same precision is used throughout a given interpolator; there is no
// mixed-precision arithmetic.
type Float interface {
	float32 | float64
}

// Coord is the capability shared by all coordinate shapes: a coordinate can
// measure its distance to another coordinate of the same shape.
//
// The interpolation algorithm is written once against this interface and
// instantiated per shape, so 1D, 2D and 3D interpolators share a single
// code path.
type Coord[C any, F Float] interface {
	// DistanceTo returns the distance from the receiver to rhs.
	// The result is non-negative, symmetric, and exactly zero when both
	// coordinates have identical components.
	DistanceTo(rhs C) F
}

// Compile-time checks that every point shape satisfies Coord.
var (
	_ Coord[Point1[float64], float64] = Point1[float64]{}
	_ Coord[Point2[float64], float64] = Point2[float64]{}
	_ Coord[Point3[float64], float64] = Point3[float64]{}
	_ Coord[Point1[float32], float32] = Point1[float32]{}
)

// Point1 is a one-dimensional coordinate.
type Point1[F Float] struct {
	X F
}

// DistanceTo returns the absolute difference |rhs.X - p.X|.
func (p Point1[F]) DistanceTo(rhs Point1[F]) F {
	return mathutil.Abs(rhs.X - p.X)
}

// Point2 is a two-dimensional coordinate.
type Point2[F Float] struct {
	X, Y F
}

// DistanceTo returns the Euclidean distance between p and rhs.
func (p Point2[F]) DistanceTo(rhs Point2[F]) F {
	return mathutil.Dist2(p.X, p.Y, rhs.X, rhs.Y)
}

// Point3 is a three-dimensional coordinate.
type Point3[F Float] struct {
	X, Y, Z F
}

// DistanceTo returns the Euclidean distance between p and rhs.
func (p Point3[F]) DistanceTo(rhs Point3[F]) F {
	return mathutil.Dist3(p.X, p.Y, p.Z, rhs.X, rhs.Y, rhs.Z)
}
