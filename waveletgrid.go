package waveletgrid

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet-grid/internal/cascade"
	"github.com/tphakala/go-wavelet-grid/internal/filter"
)

// Channel selects which member of the Daubechies family a grid represents.
type Channel int

const (
	// Scaling selects the scaling function phi, the low-pass fixed point of
	// the dyadic refinement relation. Its samples integrate to 1 over the
	// support.
	Scaling Channel = iota

	// Wavelet selects the wavelet function psi, the high-pass companion of
	// the scaling function. Its samples integrate to 0 over the support.
	Wavelet
)

// String returns a human-readable channel name.
func (c Channel) String() string {
	switch c {
	case Scaling:
		return "scaling"
	case Wavelet:
		return "wavelet"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// suffix returns the grid-name suffix of the channel ("phi" or "psi").
func (c Channel) suffix() string {
	if c == Wavelet {
		return "psi"
	}
	return "phi"
}

// Common errors returned by grid construction.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid wavelet grid configuration")

	// ErrNoConvergence indicates that the singular value decomposition used
	// for eigenvector extraction failed to converge.
	ErrNoConvergence = cascade.ErrNoConvergence

	// ErrDegenerate indicates that the transition matrix's target eigenvalue
	// is not well isolated, so no reliable basis function exists.
	ErrDegenerate = cascade.ErrDegenerate

	// ErrIllConditioned indicates a vanishing normalization moment.
	ErrIllConditioned = cascade.ErrIllConditioned
)

// Config holds wavelet grid construction parameters.
type Config struct {
	// Order is the Daubechies filter order (2 to 10). It controls the
	// support width (2*order - 1) and the smoothness of the basis function.
	Order int

	// GridSize is the minimum number of grid bins. The delivered grid is
	// rounded up to the smallest (2*order-1) * 2^r bins meeting this size.
	GridSize int

	// Channel selects the scaling function or its companion wavelet.
	Channel Channel
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Order < filter.MinOrder || c.Order > filter.MaxOrder {
		return fmt.Errorf("%w: order %d (supported %d-%d)",
			ErrInvalidConfig, c.Order, filter.MinOrder, filter.MaxOrder)
	}

	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d (must be at least 1)", ErrInvalidConfig, c.GridSize)
	}

	switch c.Channel {
	case Scaling, Wavelet:
	default:
		return fmt.Errorf("%w: unknown channel %d", ErrInvalidConfig, int(c.Channel))
	}

	return nil
}

// NewScaling constructs a scaling-function grid for the given Daubechies
// order with at least gridSize bins.
func NewScaling(order, gridSize int) (*Grid, error) {
	return Generate(&Config{Order: order, GridSize: gridSize, Channel: Scaling})
}

// NewWavelet constructs a wavelet-function grid for the given Daubechies
// order with at least gridSize bins.
func NewWavelet(order, gridSize int) (*Grid, error) {
	return Generate(&Config{Order: order, GridSize: gridSize, Channel: Wavelet})
}
