package waveletgrid

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidGrid indicates invalid grid construction parameters.
var ErrInvalidGrid = errors.New("invalid grid parameters")

// Grid is a one-dimensional, uniformly spaced, caller-owned grid holding one
// scalar value and, optionally, one scalar first derivative per bin.
//
// Bins cover the half-open domain [min, max): bin b spans
// [min + b*BinWidth, min + (b+1)*BinWidth) and its samples are taken at the
// bin's lower edge. Index arguments outside [0, Size) panic, like slice
// indexing does.
type Grid struct {
	name     string
	unit     string
	min, max float64
	size     int
	periodic bool

	values []float64
	derivs []float64 // nil when derivative storage is disabled
}

// NewGrid constructs an empty grid.
//
// The domain bounds are passed as numeric strings, matching the grid-file
// convention of the simulation engines these grids are handed to.
//
// Parameters:
//
//	name: symbolic grid name (e.g. "db4_phi")
//	unit: label of the grid dimension (e.g. "position")
//	minStr, maxStr: domain bounds as numeric strings, min < max
//	size: number of bins (at least 1)
//	periodic: whether the dimension wraps around
//	hasDeriv: whether derivative storage is allocated
//
// Returns:
//
//	An all-zero grid, or an error for malformed bounds or a bad size.
func NewGrid(name, unit, minStr, maxStr string, size int, periodic, hasDeriv bool) (*Grid, error) {
	minVal, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lower bound %q: %v", ErrInvalidGrid, minStr, err)
	}

	maxVal, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: upper bound %q: %v", ErrInvalidGrid, maxStr, err)
	}

	if maxVal <= minVal {
		return nil, fmt.Errorf("%w: empty domain [%v, %v)", ErrInvalidGrid, minVal, maxVal)
	}

	if size < 1 {
		return nil, fmt.Errorf("%w: size %d (must be at least 1)", ErrInvalidGrid, size)
	}

	g := &Grid{
		name:     name,
		unit:     unit,
		min:      minVal,
		max:      maxVal,
		size:     size,
		periodic: periodic,
		values:   make([]float64, size),
	}
	if hasDeriv {
		g.derivs = make([]float64, size)
	}

	return g, nil
}

// Name returns the symbolic grid name.
func (g *Grid) Name() string { return g.name }

// Unit returns the label of the grid dimension.
func (g *Grid) Unit() string { return g.unit }

// Size returns the number of bins.
func (g *Grid) Size() int { return g.size }

// Min returns the lower domain bound.
func (g *Grid) Min() float64 { return g.min }

// Max returns the upper domain bound.
func (g *Grid) Max() float64 { return g.max }

// Periodic reports whether the grid dimension wraps around.
func (g *Grid) Periodic() bool { return g.periodic }

// HasDerivatives reports whether derivative storage is allocated.
func (g *Grid) HasDerivatives() bool { return g.derivs != nil }

// BinWidth returns the width of one bin.
func (g *Grid) BinWidth() float64 {
	return (g.max - g.min) / float64(g.size)
}

// Position returns the sample position of a bin (its lower edge).
func (g *Grid) Position(bin int) float64 {
	if bin < 0 || bin >= g.size {
		panic(fmt.Sprintf("waveletgrid: bin index %d out of range [0, %d)", bin, g.size))
	}
	return g.min + float64(bin)*g.BinWidth()
}

// Value returns the stored value of a bin.
func (g *Grid) Value(bin int) float64 {
	return g.values[bin]
}

// Derivative returns the stored first derivative of a bin. It is zero when
// derivative storage is disabled.
func (g *Grid) Derivative(bin int) float64 {
	if g.derivs == nil {
		return 0
	}
	return g.derivs[bin]
}

// SetValueAndDerivative stores a value and its first derivative in one bin.
// The derivative is discarded when derivative storage is disabled.
func (g *Grid) SetValueAndDerivative(bin int, value, deriv float64) {
	g.values[bin] = value
	if g.derivs != nil {
		g.derivs[bin] = deriv
	}
}

// Values returns a copy of all bin values in grid order.
func (g *Grid) Values() []float64 {
	return append([]float64(nil), g.values...)
}

// Derivatives returns a copy of all bin derivatives in grid order, or nil
// when derivative storage is disabled.
func (g *Grid) Derivatives() []float64 {
	if g.derivs == nil {
		return nil
	}
	return append([]float64(nil), g.derivs...)
}

// Points returns the sample positions of all bins in grid order.
func (g *Grid) Points() []float64 {
	points := make([]float64, g.size)
	width := g.BinWidth()
	for bin := range points {
		points[bin] = g.min + float64(bin)*width
	}
	return points
}
