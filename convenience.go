package idw

import (
	"fmt"
)

// New1D creates an interpolator over scalar coordinates.
// xs holds the sample positions and values the sample values, matched by
// index.
func New1D[F Float](xs, values []F) (*Interpolator[Point1[F], F], error) {
	points := make([]Point1[F], len(xs))
	for i, x := range xs {
		points[i] = Point1[F]{X: x}
	}
	return New(points, values)
}

// New2D creates an interpolator over planar coordinates from parallel
// component slices: sample i sits at (xs[i], ys[i]).
func New2D[F Float](xs, ys, values []F) (*Interpolator[Point2[F], F], error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate component slices must be the same length (%d != %d)",
			ErrConfiguration, len(xs), len(ys))
	}
	points := make([]Point2[F], len(xs))
	for i := range xs {
		points[i] = Point2[F]{X: xs[i], Y: ys[i]}
	}
	return New(points, values)
}

// New3D creates an interpolator over spatial coordinates from parallel
// component slices: sample i sits at (xs[i], ys[i], zs[i]).
func New3D[F Float](xs, ys, zs, values []F) (*Interpolator[Point3[F], F], error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("%w: coordinate component slices must be the same length (%d, %d, %d)",
			ErrConfiguration, len(xs), len(ys), len(zs))
	}
	points := make([]Point3[F], len(xs))
	for i := range xs {
		points[i] = Point3[F]{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return New(points, values)
}
