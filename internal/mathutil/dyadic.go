// Package mathutil provides mathematical helpers for wavelet grid construction.
package mathutil

// Dyadic sizing constants.
const (
	// maxRecursionDepth bounds the cascade depth. 2^30 bins per integer is far
	// beyond any useful basis-function resolution and keeps 1<<depth in range.
	maxRecursionDepth = 30
)

// RecursionDepth returns the smallest non-negative depth r such that
// support * 2^r >= requested.
//
// The cascade refines one dyadic level per recursion step, so r is the number
// of refinement steps needed before a grid of at least the requested size can
// be filled. A requested size that is exactly support * 2^r resolves to that
// same r (no over-refinement at the boundary).
//
// Parameters:
//
//	support: width of the function's support in integer units (2*order - 1)
//	requested: minimum number of grid bins the caller asked for
//
// Returns:
//
//	The recursion depth r, clamped to a sane maximum.
func RecursionDepth(support, requested int) int {
	depth := 0
	for support<<depth < requested && depth < maxRecursionDepth {
		depth++
	}
	return depth
}

// BinsPerInteger returns the number of grid bins per unit interval at the
// given recursion depth: 2^depth.
func BinsPerInteger(depth int) int {
	if depth < 0 {
		return 1
	}
	return 1 << depth
}

// ResolveGridSize rounds a requested grid size up to the smallest value of the
// form support * 2^r that is at least the requested size.
//
// Returns the resolved size and the recursion depth r.
func ResolveGridSize(support, requested int) (size, depth int) {
	depth = RecursionDepth(support, requested)
	return support * BinsPerInteger(depth), depth
}
