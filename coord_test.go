package idw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPoint1_DistanceTo verifies 1D distance is the absolute difference.
func TestPoint1_DistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive_pair", 3.0, 4.0, 1.0},
		{"across_zero", -3.0, 4.0, 7.0},
		{"negative_pair", -3.0, -4.0, 1.0},
		{"across_zero_reversed", 3.0, -4.0, 7.0},
		{"fractional", 3.5, 4.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Point1[float64]{X: tt.a}
			b := Point1[float64]{X: tt.b}
			assert.Equal(t, tt.want, a.DistanceTo(b))
		})
	}
}

// TestPoint2_DistanceTo verifies 2D Euclidean distance on 3-4-5 triangles.
func TestPoint2_DistanceTo(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"origin", 0, 0, 3, 4, 5},
		{"offset", 1, 1, 4, 5, 5},
		{"negative_quadrant", -1, -1, -4, -5, 5},
		{"across_quadrants", -1, -1, 2, 3, 5},
		{"fractional", 1.5, 1.5, 4.5, 5.5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Point2[float64]{X: tt.ax, Y: tt.ay}
			b := Point2[float64]{X: tt.bx, Y: tt.by}
			assert.Equal(t, tt.want, a.DistanceTo(b))
		})
	}
}

// TestPoint3_DistanceTo verifies 3D Euclidean distance on 1-2-2 triples.
func TestPoint3_DistanceTo(t *testing.T) {
	tests := []struct {
		name                   string
		ax, ay, az, bx, by, bz float64
		want                   float64
	}{
		{"origin", 0, 0, 0, 1, 2, 2, 3},
		{"negative", -1, -2, -2, -2, -4, -4, 3},
		{"offset", 1, 2, 2, 2, 4, 4, 3},
		{"long_diagonal", 1, 2, 2, -1, -2, -2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Point3[float64]{X: tt.ax, Y: tt.ay, Z: tt.az}
			b := Point3[float64]{X: tt.bx, Y: tt.by, Z: tt.bz}
			assert.Equal(t, tt.want, a.DistanceTo(b))
		})
	}
}

// TestDistance_Symmetry verifies distance(a,b) == distance(b,a) for every shape.
func TestDistance_Symmetry(t *testing.T) {
	p1a, p1b := Point1[float64]{X: -2.5}, Point1[float64]{X: 7.25}
	assert.Equal(t, p1a.DistanceTo(p1b), p1b.DistanceTo(p1a))

	p2a, p2b := Point2[float64]{X: 1.5, Y: -3}, Point2[float64]{X: -0.5, Y: 8}
	assert.Equal(t, p2a.DistanceTo(p2b), p2b.DistanceTo(p2a))

	p3a, p3b := Point3[float64]{X: 1, Y: 2, Z: 3}, Point3[float64]{X: -4, Y: 0.5, Z: 6}
	assert.Equal(t, p3a.DistanceTo(p3b), p3b.DistanceTo(p3a))
}

// TestDistance_ToSelf verifies distance(a,a) is exactly zero for every shape.
func TestDistance_ToSelf(t *testing.T) {
	p1 := Point1[float64]{X: 3.75}
	assert.Zero(t, p1.DistanceTo(p1))

	p2 := Point2[float64]{X: -1.25, Y: 9}
	assert.Zero(t, p2.DistanceTo(p2))

	p3 := Point3[float64]{X: 0.1, Y: 0.2, Z: 0.3}
	assert.Zero(t, p3.DistanceTo(p3))
}
