package cascade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wavelet-grid/internal/filter"
)

const (
	matrixTolerance = 1e-14
)

// TestTransitionMatrices_Dimension verifies the 2*order-1 dimension rule.
func TestTransitionMatrices_Dimension(t *testing.T) {
	for order := filter.MinOrder; order <= filter.MaxOrder; order++ {
		h, err := filter.Coefficients(order, true)
		require.NoError(t, err)

		m0, m1, err := TransitionMatrices(h)
		require.NoError(t, err)

		wantDim := 2*order - 1
		r, c := m0.Dims()
		assert.Equal(t, wantDim, r, "M0 rows for order %d", order)
		assert.Equal(t, wantDim, c, "M0 cols for order %d", order)
		r, c = m1.Dims()
		assert.Equal(t, wantDim, r, "M1 rows for order %d", order)
		assert.Equal(t, wantDim, c, "M1 cols for order %d", order)
	}
}

// TestTransitionMatrices_BandStructure verifies that entries outside the
// shift bands are exactly zero.
func TestTransitionMatrices_BandStructure(t *testing.T) {
	h, err := filter.Coefficients(4, true)
	require.NoError(t, err)

	m0, m1, err := TransitionMatrices(h)
	require.NoError(t, err)

	n := len(h) - 1
	for i := range n {
		for j := range n {
			shift := 2*i - j
			if shift < 0 || shift > n {
				assert.Zero(t, m0.At(i, j), "M0[%d][%d] outside band", i, j)
			}
			if shift < -1 || shift > n-1 {
				assert.Zero(t, m1.At(i, j), "M1[%d][%d] outside band", i, j)
			}
		}
	}
}

// TestTransitionMatrices_Db2Entries checks the order-2 matrices against their
// closed form. The db2 taps are (1±sqrt(3))/8 and (3±sqrt(3))/8.
func TestTransitionMatrices_Db2Entries(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	h := []float64{(1 + sqrt3) / 8, (3 + sqrt3) / 8, (3 - sqrt3) / 8, (1 - sqrt3) / 8}

	m0, m1, err := TransitionMatrices(h)
	require.NoError(t, err)

	wantM0 := [3][3]float64{
		{2 * h[0], 0, 0},
		{2 * h[2], 2 * h[1], 2 * h[0]},
		{0, 2 * h[3], 2 * h[2]},
	}
	wantM1 := [3][3]float64{
		{2 * h[1], 2 * h[0], 0},
		{2 * h[3], 2 * h[2], 2 * h[1]},
		{0, 0, 2 * h[3]},
	}

	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, wantM0[i][j], m0.At(i, j), matrixTolerance, "M0[%d][%d]", i, j)
			assert.InDelta(t, wantM1[i][j], m1.At(i, j), matrixTolerance, "M1[%d][%d]", i, j)
		}
	}
}

// TestTransitionMatrices_InvalidFilter verifies rejection of malformed filters.
func TestTransitionMatrices_InvalidFilter(t *testing.T) {
	tests := []struct {
		name string
		taps []float64
	}{
		{"empty", nil},
		{"too_short", []float64{0.5, 0.5}},
		{"odd_length", []float64{0.1, 0.2, 0.3, 0.2, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TransitionMatrices(tt.taps)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}
