// Package idw provides inverse distance weighting (IDW) spatial
// interpolation in pure Go.
//
// Given a set of known sample points with associated scalar values, an
// [Interpolator] estimates the value at any query position as a
// distance-weighted average of the samples, with weights
//
//	weightᵢ = 1 / distance(pointᵢ, position)ᵖ
//
// normalized to unit sum before blending. This is Shepard's method; it is a
// brute-force O(n) evaluator per query with no spatial index, which keeps
// it exact and predictable for the small-to-medium point sets it targets.
//
// # Features
//
//   - 1D, 2D and 3D coordinates ([Point1], [Point2], [Point3]) sharing one
//     generic algorithm via the [Coord] capability
//   - float32 and float64 precision through a single generic codebase
//   - Configurable power exponent and optional weight-transform function
//   - Exact-match short-circuit: querying a sample position returns its
//     value directly, with first-sample tie-breaking for coincident points
//   - Copy-on-write configuration for lock-free concurrent evaluation
//   - SIMD-accelerated weight normalization and blending via
//     github.com/tphakala/simd
//   - Batch and grid evaluation helpers with optional parallel fan-out
//
// # Quick Start
//
//	points := []idw.Point2[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}}
//	values := []float64{0.0, 1.0}
//
//	in, err := idw.New(points, values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := in.Evaluate(idw.Point2[float64]{X: 0.5, Y: 0.5})
//
// The [New1D], [New2D] and [New3D] convenience constructors build
// interpolators from parallel component slices instead of point structs.
//
// # Choosing the Power Exponent
//
// The power exponent p controls how sharply influence falls off with
// distance. The default is [DefaultPower] (2). Higher values concentrate
// influence on the nearest samples; values below 1 flatten the surface
// toward the global average. The exponent is not validated: zero and
// negative powers are accepted as deliberate policy choices.
//
//	in = in.WithPower(0.5)
//
// # Weight Transforms
//
// A [WeightFunc] reshapes the normalized weights before blending, for
// example to impose a smoothstep or sinusoidal falloff:
//
//	in = in.WithWeightFunc(func(w float64) float64 {
//	    return (1 + math.Sin(4*math.Pi*w)) / 2
//	})
//
// Transformed weights are renormalized automatically, so the function does
// not need to preserve a unit sum.
//
// # Thread Safety
//
// An [Interpolator] is immutable: Evaluate touches no shared mutable state,
// so a single instance may be evaluated from any number of goroutines
// simultaneously. The With* configuration methods return new instances and
// leave the receiver untouched, so reconfiguration never races with
// in-flight evaluations.
//
// # Numeric Behavior
//
// All arithmetic runs in the interpolator's float type. Degenerate
// configurations (for example an extreme negative power driving every raw
// weight to zero) are not guarded; NaN and Inf propagate through the result
// the same way they would through plain float expressions. The exact-match
// short-circuit guarantees the ill-defined 1/0ᵖ case is never evaluated.
package idw
