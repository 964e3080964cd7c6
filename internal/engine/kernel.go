// Package engine implements the inverse distance weighting kernel.
//
// The kernel operates on plain distance and value slices so it stays
// independent of the coordinate shapes defined by the public API. Weight
// normalization and the final blend delegate to SIMD kernels via simdops.
package engine

import (
	"github.com/tphakala/go-idw/internal/mathutil"
	"github.com/tphakala/go-idw/internal/simdops"
)

// Kernel computes normalized inverse distance weights and blends sample
// values with them.
//
// Type parameter F must be float32 or float64 and controls the precision of
// all weight arithmetic. A Kernel is immutable after construction and safe
// for concurrent use; every Blend call works on call-local buffers.
type Kernel[F simdops.Float] struct {
	power     F
	transform func(F) F

	// SIMD operations for type F
	ops *simdops.Ops[F]
}

// NewKernel creates a kernel for the given power exponent.
//
// The exponent is deliberately unvalidated: zero, negative and fractional
// powers are all meaningful policy choices for inverse distance weighting.
// transform may be nil, in which case normalized weights are used as-is and
// the second normalization pass is skipped.
func NewKernel[F simdops.Float](power F, transform func(F) F) *Kernel[F] {
	return &Kernel[F]{
		power:     power,
		transform: transform,
		ops:       simdops.For[F](),
	}
}

// Blend returns the weighted average of values using inverse distance
// weights computed from distances.
//
// All distances must be strictly positive; the caller resolves coincident
// positions before any weight is computed. distances and values must have
// equal length.
//
// The weight pipeline is: raw weights 1/d^p, normalize to unit sum, apply
// the optional transform pointwise, renormalize, then dot with values. The
// renormalization after the transform is mandatory because transforms need
// not preserve a unit sum.
func (k *Kernel[F]) Blend(distances, values []F) F {
	weights := make([]F, len(distances))
	for i, d := range distances {
		weights[i] = 1 / mathutil.Pow(d, k.power)
	}
	k.normalize(weights)

	if k.transform != nil {
		for i, w := range weights {
			weights[i] = k.transform(w)
		}
		k.normalize(weights)
	}

	return k.ops.DotProductUnsafe(weights, values)
}

// normalize scales weights in place so they sum to 1.
// A zero or non-finite sum is not guarded; NaN and Inf propagate into the
// result the same way they would through plain float arithmetic.
func (k *Kernel[F]) normalize(weights []F) {
	k.ops.Scale(weights, weights, 1/k.ops.Sum(weights))
}
