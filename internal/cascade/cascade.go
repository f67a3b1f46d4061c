// Package cascade implements the dyadic cascade algorithm that refines
// Daubechies scaling and wavelet functions from their integer-lattice values
// down to arbitrary dyadic resolution.
//
// The cascade exploits the two-scale (dilation) relation: the function's
// values on the half-open sub-interval addressed by a dyadic fraction are a
// linear combination, encoded by a transition matrix, of its values at the
// next coarser level. One refinement step halves the sample spacing.
package cascade

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors reported by grid construction. All of them are terminal: there is no
// meaningful partial basis function to fall back to.
var (
	// ErrInvalidFilter indicates a filter coefficient sequence of unexpected shape.
	ErrInvalidFilter = errors.New("invalid filter coefficients")

	// ErrNoConvergence indicates that the singular value decomposition failed.
	ErrNoConvergence = errors.New("singular value decomposition did not converge")

	// ErrDegenerate indicates that the targeted eigenvalue of the transition
	// matrix is not well isolated, so the eigenvector is ambiguous.
	ErrDegenerate = errors.New("transition matrix eigenvalue not well isolated")

	// ErrIllConditioned indicates a vanishing moment sum in the eigenvector
	// normalization step.
	ErrIllConditioned = errors.New("moment normalization ill-conditioned")
)

// Channel selects which function of the wavelet family the cascade produces.
type Channel int

const (
	// ChannelScaling produces the scaling function (low-pass fixed point).
	ChannelScaling Channel = iota

	// ChannelWavelet produces the wavelet function, one application of the
	// high-pass filter to the refined scaling function.
	ChannelWavelet
)

// String returns a human-readable channel name.
func (c Channel) String() string {
	switch c {
	case ChannelScaling:
		return "scaling"
	case ChannelWavelet:
		return "wavelet"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Refinement is the cascade output for one channel and one derivative order
// at a fixed recursion depth.
//
// Vecs is a flat arena indexed by sub-bin offset: Vecs[m][i] holds the
// function's value at position i + m/BinsPerInt inside the support. This
// replaces the binary-address map of the textbook formulation; an address of
// length l and numeric value k owns offset k * BinsPerInt / 2^l, which is
// unique across all addresses, so the arena covers every offset exactly once.
type Refinement struct {
	// Depth is the recursion depth r.
	Depth int

	// BinsPerInt is the refinement factor 2^r (samples per unit interval).
	BinsPerInt int

	// N is the length of each sample vector (number of integer shifts).
	N int

	// Vecs holds one sample vector per sub-bin offset.
	Vecs [][]float64
}

// Engine refines integer-lattice values down to dyadic resolution using the
// transition matrices of a Daubechies filter pair.
type Engine struct {
	h0, h1 *mat.Dense // low-pass transition matrices
	g0, g1 *mat.Dense // high-pass transition matrices, nil for scaling-only engines
	n      int
}

// NewEngine builds a cascade engine from a low-pass filter and, when wavelet
// output is wanted, the matching high-pass filter. Pass nil highPass for a
// scaling-only engine.
func NewEngine(lowPass, highPass []float64) (*Engine, error) {
	h0, h1, err := TransitionMatrices(lowPass)
	if err != nil {
		return nil, err
	}

	e := &Engine{h0: h0, h1: h1}
	e.n, _ = h0.Dims()

	if highPass != nil {
		if len(highPass) != len(lowPass) {
			return nil, fmt.Errorf("%w: high-pass length %d does not match low-pass length %d",
				ErrInvalidFilter, len(highPass), len(lowPass))
		}
		e.g0, e.g1, err = TransitionMatrices(highPass)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// N returns the sample vector length (matrix dimension 2*order - 1).
func (e *Engine) N() int {
	return e.n
}

// IntegerValues computes the normalized integer-lattice values of the scaling
// function's deriv-th derivative from the engine's low-pass matrix.
func (e *Engine) IntegerValues(deriv int) ([]float64, error) {
	return IntegerValues(e.h0, deriv)
}

// Refine runs the cascade for one channel, starting from the scaling
// function's integer-lattice values (of the requested derivative order) and
// refining depth times.
//
// The scaling recursion always drives the refinement; wavelet vectors are a
// single high-pass application to the scaling vector at the parent address,
// which is the two-scale relation for the wavelet function. Differentiation
// under dyadic refinement introduces one factor of 2 per derivative order, so
// all matrices are scaled by 2^deriv first.
func (e *Engine) Refine(integerValues []float64, depth, deriv int, channel Channel) (*Refinement, error) {
	if len(integerValues) != e.n {
		return nil, fmt.Errorf("integer value vector has length %d, want %d", len(integerValues), e.n)
	}
	if channel == ChannelWavelet && e.g0 == nil {
		return nil, fmt.Errorf("engine has no high-pass matrices for %s channel", channel)
	}
	if depth < 0 {
		return nil, fmt.Errorf("negative recursion depth %d", depth)
	}

	h0, h1, g0, g1 := e.h0, e.h1, e.g0, e.g1
	if deriv != 0 {
		factor := math.Pow(2, float64(deriv))
		h0, h1 = scaledMatrix(h0, factor), scaledMatrix(h1, factor)
		if channel == ChannelWavelet {
			g0, g1 = scaledMatrix(g0, factor), scaledMatrix(g1, factor)
		}
	}

	binsPerInt := 1 << depth
	seed := append([]float64(nil), integerValues...)
	out := &Refinement{
		Depth:      depth,
		BinsPerInt: binsPerInt,
		N:          e.n,
		Vecs:       make([][]float64, binsPerInt),
	}

	if depth == 0 {
		// No sub-integer samples; the wavelet still needs its one high-pass step.
		if channel == ChannelWavelet {
			out.Vecs[0] = matVec(g0, seed)
		} else {
			out.Vecs[0] = seed
		}
		return out, nil
	}

	// The scaling arena is refined level by level; each level depends only on
	// the previous one.
	scaling := make([][]float64, binsPerInt)
	half := binsPerInt / 2
	scaling[0] = seed
	scaling[half] = matVec(h1, seed)

	if channel == ChannelWavelet {
		out.Vecs[0] = matVec(g0, seed)
		out.Vecs[half] = matVec(g1, seed)
	} else {
		out.Vecs[0] = scaling[0]
		out.Vecs[half] = scaling[half]
	}

	// Offsets created at the newest level. The zero offset is never expanded:
	// its children coincide with offsets owned by other addresses.
	frontier := []int{half}
	for level := 1; level < depth; level++ {
		next := make([]int, 0, 2*len(frontier))
		for _, parent := range frontier {
			for b := range 2 {
				// Child fraction is (parent fraction + b) / 2.
				child := parent/2 + b*half

				hb, gb := h0, g0
				if b == 1 {
					hb, gb = h1, g1
				}

				scaling[child] = matVec(hb, scaling[parent])
				if channel == ChannelWavelet {
					out.Vecs[child] = matVec(gb, scaling[parent])
				} else {
					out.Vecs[child] = scaling[child]
				}
				next = append(next, child)
			}
		}
		frontier = next
	}

	return out, nil
}

// matVec computes m * v into a fresh slice.
func matVec(m *mat.Dense, v []float64) []float64 {
	n, _ := m.Dims()
	out := mat.NewVecDense(n, nil)
	out.MulVec(m, mat.NewVecDense(len(v), v))
	return out.RawVector().Data
}

// scaledMatrix returns factor * m as a new matrix.
func scaledMatrix(m *mat.Dense, factor float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(factor, m)
	return out
}
