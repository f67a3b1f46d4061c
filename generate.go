package waveletgrid

import (
	"fmt"
	"strconv"

	"github.com/tphakala/go-wavelet-grid/internal/cascade"
	"github.com/tphakala/go-wavelet-grid/internal/filter"
	"github.com/tphakala/go-wavelet-grid/internal/mathutil"
)

const (
	// gridUnitLabel is the label of the single grid dimension.
	gridUnitLabel = "position"

	// gridLowerBound is the lower domain bound; the support always starts at 0.
	gridLowerBound = "0"
)

// Generate constructs a fully populated wavelet grid.
//
// The grid spans the half-open support [0, 2*order-1), is non-periodic, and
// carries one scalar value and one scalar first derivative per bin. Its name
// is "db<order>_phi" for the scaling channel and "db<order>_psi" for the
// wavelet channel. Ownership of the returned grid transfers to the caller.
//
// Construction is deterministic: identical configurations produce bit-for-bit
// identical grids. On any failure no partial grid is returned.
func Generate(config *Config) (*Grid, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	support := filter.SupportWidth(config.Order)
	gridSize, depth := mathutil.ResolveGridSize(support, config.GridSize)

	lowPass, err := filter.Coefficients(config.Order, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// The high-pass filter is only fetched when the wavelet diverges from the
	// shared low-pass pipeline.
	var highPass []float64
	if config.Channel == Wavelet {
		highPass, err = filter.Coefficients(config.Order, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	engine, err := cascade.NewEngine(lowPass, highPass)
	if err != nil {
		return nil, err
	}

	integerValues, err := engine.IntegerValues(0)
	if err != nil {
		return nil, err
	}
	integerDerivs, err := engine.IntegerValues(1)
	if err != nil {
		return nil, err
	}

	channel := cascade.ChannelScaling
	if config.Channel == Wavelet {
		channel = cascade.ChannelWavelet
	}

	values, err := engine.Refine(integerValues, depth, 0, channel)
	if err != nil {
		return nil, err
	}
	derivs, err := engine.Refine(integerDerivs, depth, 1, channel)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("db%d_%s", config.Order, config.Channel.suffix())
	grid, err := NewGrid(name, gridUnitLabel, gridLowerBound, strconv.Itoa(support),
		gridSize, false, true)
	if err != nil {
		return nil, err
	}

	if err := fillGrid(grid, values, derivs); err != nil {
		return nil, err
	}

	return grid, nil
}

// fillGrid flattens a value refinement and its matching derivative refinement
// into the grid.
//
// The refinement vector at sub-bin offset m holds the function at positions
// i + m/binsPerInt for integer shifts i, so component i of that vector lands
// in bin m + binsPerInt*i. Offsets and shifts together cover every bin
// exactly once.
func fillGrid(g *Grid, values, derivs *cascade.Refinement) error {
	if values.BinsPerInt != derivs.BinsPerInt || values.N != derivs.N {
		return fmt.Errorf("refinement shapes differ: %dx%d values vs %dx%d derivatives",
			values.BinsPerInt, values.N, derivs.BinsPerInt, derivs.N)
	}
	if g.Size() != values.BinsPerInt*values.N {
		return fmt.Errorf("grid has %d bins, refinement covers %d",
			g.Size(), values.BinsPerInt*values.N)
	}

	binsPerInt := values.BinsPerInt
	for m, vec := range values.Vecs {
		derivVec := derivs.Vecs[m]
		for i, value := range vec {
			g.SetValueAndDerivative(m+binsPerInt*i, value, derivVec[i])
		}
	}

	return nil
}
