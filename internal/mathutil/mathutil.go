// Package mathutil provides scalar math helpers for the interpolation engine.
package mathutil

import (
	"math"

	"github.com/tphakala/go-idw/internal/simdops"
)

// Abs returns the absolute value of x.
func Abs[F simdops.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x.
// Computed in float64 and truncated to F, matching the precision loss a
// native float32 sqrt would have.
func Sqrt[F simdops.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Pow returns base raised to exp for any real exponent.
// The caller guarantees base > 0; zero bases are handled by the exact-match
// short-circuit before weights are computed.
func Pow[F simdops.Float](base, exp F) F {
	return F(math.Pow(float64(base), float64(exp)))
}

// Dist2 returns the Euclidean distance between (ax, ay) and (bx, by).
func Dist2[F simdops.Float](ax, ay, bx, by F) F {
	dx := bx - ax
	dy := by - ay
	return Sqrt(dx*dx + dy*dy)
}

// Dist3 returns the Euclidean distance between (ax, ay, az) and (bx, by, bz).
func Dist3[F simdops.Float](ax, ay, az, bx, by, bz F) F {
	dx := bx - ax
	dy := by - ay
	dz := bz - az
	return Sqrt(dx*dx + dy*dy + dz*dz)
}
