package idw

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// minGridPoints is the smallest number of samples per grid axis
// (floats.Span needs a destination of at least two elements).
const minGridPoints = 2

// Grid1D evaluates the interpolator at nx evenly spaced positions spanning
// [x0, x1] inclusive and returns the values in axis order.
func Grid1D(in *Interpolator[Point1[float64], float64], x0, x1 float64, nx int) ([]float64, error) {
	if nx < minGridPoints {
		return nil, fmt.Errorf("%w: grid axis needs at least %d points, got %d",
			ErrConfiguration, minGridPoints, nx)
	}
	xs := floats.Span(make([]float64, nx), x0, x1)

	positions := make([]Point1[float64], nx)
	for i, x := range xs {
		positions[i] = Point1[float64]{X: x}
	}
	return in.EvaluateAll(positions), nil
}

// Grid2D evaluates the interpolator over an nx by ny grid spanning
// [x0, x1] and [y0, y1] inclusive. The result is indexed [i][j] for
// position (x_i, y_j).
func Grid2D(in *Interpolator[Point2[float64], float64],
	x0, x1 float64, nx int,
	y0, y1 float64, ny int,
) ([][]float64, error) {
	if nx < minGridPoints || ny < minGridPoints {
		return nil, fmt.Errorf("%w: grid axes need at least %d points, got %d and %d",
			ErrConfiguration, minGridPoints, nx, ny)
	}
	xs := floats.Span(make([]float64, nx), x0, x1)
	ys := floats.Span(make([]float64, ny), y0, y1)

	positions := make([]Point2[float64], 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			positions = append(positions, Point2[float64]{X: x, Y: y})
		}
	}
	flat := in.EvaluateAll(positions)

	grid := make([][]float64, nx)
	for i := range grid {
		grid[i] = flat[i*ny : (i+1)*ny]
	}
	return grid, nil
}

// Grid3D evaluates the interpolator over an nx by ny by nz grid spanning
// [x0, x1], [y0, y1] and [z0, z1] inclusive. The result is indexed
// [i][j][k] for position (x_i, y_j, z_k).
func Grid3D(in *Interpolator[Point3[float64], float64],
	x0, x1 float64, nx int,
	y0, y1 float64, ny int,
	z0, z1 float64, nz int,
) ([][][]float64, error) {
	if nx < minGridPoints || ny < minGridPoints || nz < minGridPoints {
		return nil, fmt.Errorf("%w: grid axes need at least %d points, got %d, %d and %d",
			ErrConfiguration, minGridPoints, nx, ny, nz)
	}
	xs := floats.Span(make([]float64, nx), x0, x1)
	ys := floats.Span(make([]float64, ny), y0, y1)
	zs := floats.Span(make([]float64, nz), z0, z1)

	positions := make([]Point3[float64], 0, nx*ny*nz)
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				positions = append(positions, Point3[float64]{X: x, Y: y, Z: z})
			}
		}
	}
	flat := in.EvaluateAll(positions)

	grid := make([][][]float64, nx)
	for i := range grid {
		grid[i] = make([][]float64, ny)
		for j := range grid[i] {
			base := (i*ny + j) * nz
			grid[i][j] = flat[base : base+nz]
		}
	}
	return grid, nil
}
