package idw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-idw/internal/testutil"
)

// TestEvaluate_Float32 verifies the float32 instantiation against the
// reference scenario with a precision-appropriate tolerance.
func TestEvaluate_Float32(t *testing.T) {
	in, err := New1D([]float32{1, 2, 3}, []float32{1, 2, 3})
	require.NoError(t, err)

	tests := []struct {
		x, want float32
	}{
		{0.0, 1.346938},
		{1.5, 1.578947},
		{4.0, 2.653061},
	}

	for _, tt := range tests {
		got := in.Evaluate(Point1[float32]{X: tt.x})
		testutil.AssertRelativeError(t, float64(tt.want), float64(got), testutil.Float32Tolerance,
			"evaluate(%v)", tt.x)
	}
}

// TestEvaluate_Float32_ExactMatch verifies the short-circuit is still a
// representational equality test in float32.
func TestEvaluate_Float32_ExactMatch(t *testing.T) {
	in, err := New2D([]float32{1, 2}, []float32{1, 2}, []float32{10, 20})
	require.NoError(t, err)

	assert.Equal(t, float32(20), in.Evaluate(Point2[float32]{X: 2, Y: 2}))
}

// TestEvaluate_Float32_Configuration verifies power and transform plumbing
// in the float32 instantiation.
func TestEvaluate_Float32_Configuration(t *testing.T) {
	in, err := New1D([]float32{1, 2, 3}, []float32{1, 2, 3})
	require.NoError(t, err)

	got := in.WithPower(0.5).Evaluate(Point1[float32]{X: 0})
	testutil.AssertRelativeError(t, 1.814988, float64(got), testutil.Float32Tolerance)

	identity := in.WithWeightFunc(func(w float32) float32 { return w })
	pos := Point1[float32]{X: 2.5}
	assert.InDelta(t, float64(in.Evaluate(pos)), float64(identity.Evaluate(pos)), testutil.Float32Tolerance)
}
