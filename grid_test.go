package waveletgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wavelet-grid/internal/testutil"
)

const (
	gridTestName = "db2_phi"
	gridTestUnit = "position"
	gridTestSize = 12
)

// TestNewGrid_Properties verifies construction and basic accessors.
func TestNewGrid_Properties(t *testing.T) {
	g, err := NewGrid(gridTestName, gridTestUnit, "0", "3", gridTestSize, false, true)
	require.NoError(t, err)

	assert.Equal(t, gridTestName, g.Name())
	assert.Equal(t, gridTestUnit, g.Unit())
	assert.Equal(t, gridTestSize, g.Size())
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 3.0, g.Max())
	assert.False(t, g.Periodic())
	assert.True(t, g.HasDerivatives())
	assert.InDelta(t, 0.25, g.BinWidth(), testutil.DefaultTolerance)

	points := g.Points()
	require.Len(t, points, gridTestSize)
	assert.Equal(t, 0.0, points[0])
	testutil.AssertUniformSpacing(t, points, g.BinWidth(), testutil.DefaultTolerance)

	// Bins span [min, max): the last sample sits one bin width below max.
	assert.InDelta(t, 2.75, g.Position(gridTestSize-1), testutil.DefaultTolerance)
}

// TestNewGrid_SetAndGet verifies value/derivative storage.
func TestNewGrid_SetAndGet(t *testing.T) {
	g, err := NewGrid(gridTestName, gridTestUnit, "0", "3", 3, false, true)
	require.NoError(t, err)

	g.SetValueAndDerivative(1, 0.5, -2.0)
	assert.Equal(t, 0.5, g.Value(1))
	assert.Equal(t, -2.0, g.Derivative(1))
	assert.Zero(t, g.Value(0))
	assert.Zero(t, g.Derivative(2))

	assert.Equal(t, []float64{0, 0.5, 0}, g.Values())
	assert.Equal(t, []float64{0, -2.0, 0}, g.Derivatives())
}

// TestNewGrid_NoDerivatives verifies behavior with derivative storage disabled.
func TestNewGrid_NoDerivatives(t *testing.T) {
	g, err := NewGrid(gridTestName, gridTestUnit, "0", "3", 3, false, false)
	require.NoError(t, err)

	assert.False(t, g.HasDerivatives())
	g.SetValueAndDerivative(0, 1.0, 5.0)
	assert.Equal(t, 1.0, g.Value(0))
	assert.Zero(t, g.Derivative(0), "derivative discarded when storage disabled")
	assert.Nil(t, g.Derivatives())
}

// TestNewGrid_Validation verifies constructor error paths.
func TestNewGrid_Validation(t *testing.T) {
	tests := []struct {
		name   string
		minStr string
		maxStr string
		size   int
	}{
		{"bad_lower_bound", "zero", "3", 12},
		{"bad_upper_bound", "0", "three", 12},
		{"empty_domain", "3", "3", 12},
		{"inverted_domain", "3", "0", 12},
		{"zero_size", "0", "3", 0},
		{"negative_size", "0", "3", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(gridTestName, gridTestUnit, tt.minStr, tt.maxStr, tt.size, false, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

// TestGrid_ValuesAreCopies verifies that accessor slices do not alias grid storage.
func TestGrid_ValuesAreCopies(t *testing.T) {
	g, err := NewGrid(gridTestName, gridTestUnit, "0", "3", 3, false, true)
	require.NoError(t, err)
	g.SetValueAndDerivative(0, 1.0, 2.0)

	values := g.Values()
	values[0] = 99
	assert.Equal(t, 1.0, g.Value(0), "mutating the returned slice must not touch the grid")
}
