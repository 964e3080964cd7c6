package idw

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/tphakala/go-idw/internal/engine"
)

// DefaultPower is the power exponent used when none is configured.
// A power of 2 gives the classic inverse square distance falloff.
const DefaultPower = 2.0

// minParallelBatch is the smallest batch size worth fanning out across
// goroutines; below this the spawn overhead dominates.
const minParallelBatch = 64

// ErrConfiguration indicates invalid interpolator configuration.
// Construction-time validation failures wrap this sentinel, so callers can
// test for it with errors.Is.
var ErrConfiguration = errors.New("invalid interpolator configuration")

// WeightFunc transforms a normalized weight into a new weight.
// It is applied pointwise to every weight after the first normalization
// pass; the results are renormalized before blending, so the function does
// not need to preserve a unit sum.
type WeightFunc[F Float] func(weight F) F

// Interpolator estimates the value at an arbitrary position as the inverse
// distance weighted average of a fixed set of known samples.
//
// The sample set is immutable once built. Configuration methods (WithPower,
// WithWeightFunc, WithParallel) are copy-on-write: they return a new
// instance and never disturb the receiver, so a configured interpolator can
// be evaluated from any number of goroutines concurrently without locking.
//
// When the query position coincides exactly with a sample point, Evaluate
// returns that sample's value directly; ties between coincident points go
// to the first sample in construction order.
type Interpolator[C Coord[C, F], F Float] struct {
	points   []C
	values   []F
	power    F
	weightFn WeightFunc[F]
	parallel bool

	kernel *engine.Kernel[F]
}

// New creates an interpolator from parallel point and value slices, where
// index i of each slice forms one sample.
//
// Both slices must be non-empty and of equal length; violations return an
// error wrapping ErrConfiguration. The inputs are copied, so callers may
// reuse their slices afterwards.
func New[C Coord[C, F], F Float](points []C, values []F) (*Interpolator[C, F], error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: points must not be empty", ErrConfiguration)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: values must not be empty", ErrConfiguration)
	}
	if len(points) != len(values) {
		return nil, fmt.Errorf("%w: points and values must be the same length (%d != %d)",
			ErrConfiguration, len(points), len(values))
	}

	in := &Interpolator[C, F]{
		points: append([]C(nil), points...),
		values: append([]F(nil), values...),
		power:  DefaultPower,
	}
	in.kernel = engine.NewKernel[F](in.power, nil)
	return in, nil
}

// WithPower returns a copy of the interpolator using power exponent p.
//
// Higher powers concentrate influence on nearer samples. The exponent is
// not validated: zero, negative and fractional powers are accepted as
// deliberate policy choices, though extreme values may drive the weight
// arithmetic into non-finite territory.
func (in *Interpolator[C, F]) WithPower(p F) *Interpolator[C, F] {
	out := in.clone()
	out.power = p
	out.kernel = engine.NewKernel(p, asTransform(out.weightFn))
	return out
}

// WithWeightFunc returns a copy of the interpolator that applies fn to
// every normalized weight before renormalizing and blending.
// A nil fn restores the default identity behavior.
func (in *Interpolator[C, F]) WithWeightFunc(fn WeightFunc[F]) *Interpolator[C, F] {
	out := in.clone()
	out.weightFn = fn
	out.kernel = engine.NewKernel(out.power, asTransform(fn))
	return out
}

// WithParallel returns a copy of the interpolator with parallel batch
// evaluation enabled or disabled. The setting only affects EvaluateAll on
// large batches; single Evaluate calls are always synchronous.
// Parallel and sequential batch results are bit-exact because each
// evaluation works on call-local state.
func (in *Interpolator[C, F]) WithParallel(enabled bool) *Interpolator[C, F] {
	out := in.clone()
	out.parallel = enabled
	return out
}

// Power returns the configured power exponent.
func (in *Interpolator[C, F]) Power() F {
	return in.power
}

// Len returns the number of samples the interpolator was built from.
func (in *Interpolator[C, F]) Len() int {
	return len(in.points)
}

// Evaluate returns the interpolated value at position.
//
// If position coincides exactly with a sample point (distance is
// representational zero, not within-epsilon), the value of the first such
// sample is returned and no weights are computed. Otherwise the result is
// the weighted average of all sample values with weights 1/d^p, normalized,
// optionally reshaped by the configured weight function and renormalized.
//
// Evaluate never fails for finite inputs; degenerate weight sums propagate
// as NaN or Inf through ordinary float arithmetic.
func (in *Interpolator[C, F]) Evaluate(position C) F {
	distances := make([]F, len(in.points))
	for i, p := range in.points {
		d := p.DistanceTo(position)
		if d == 0 {
			return in.values[i]
		}
		distances[i] = d
	}
	return in.kernel.Blend(distances, in.values)
}

// EvaluateAll evaluates the interpolator at every position and returns the
// results in matching order. With WithParallel(true) and a large enough
// batch, the work is split across GOMAXPROCS worker goroutines.
func (in *Interpolator[C, F]) EvaluateAll(positions []C) []F {
	out := make([]F, len(positions))
	if in.parallel && len(positions) >= minParallelBatch {
		in.evaluateChunked(positions, out)
		return out
	}
	for i, pos := range positions {
		out[i] = in.Evaluate(pos)
	}
	return out
}

// evaluateChunked splits positions into contiguous chunks, one per worker.
// Workers write to disjoint regions of out, so no synchronization beyond
// the WaitGroup is needed.
func (in *Interpolator[C, F]) evaluateChunked(positions []C, out []F) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(positions) {
		workers = len(positions)
	}
	chunk := (len(positions) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(positions); start += chunk {
		end := min(start+chunk, len(positions))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = in.Evaluate(positions[i])
			}
		}(start, end)
	}
	wg.Wait()
}

// clone returns a shallow copy sharing the (read-only) sample slices.
func (in *Interpolator[C, F]) clone() *Interpolator[C, F] {
	out := *in
	return &out
}

// asTransform adapts a WeightFunc to the engine's plain function type,
// preserving nil so the kernel can skip the second normalization pass.
func asTransform[F Float](fn WeightFunc[F]) func(F) F {
	if fn == nil {
		return nil
	}
	return fn
}
