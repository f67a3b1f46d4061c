// Package filter provides Daubechies filter coefficients for wavelet grid construction.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

const (
	// MinOrder is the lowest supported Daubechies order (db2, support width 3).
	MinOrder = 2

	// MaxOrder is the highest supported Daubechies order (db10, support width 19).
	MaxOrder = 10

	// tapsPerOrder is the number of filter taps per unit of order.
	tapsPerOrder = 2
)

// daubechiesTaps holds the orthonormal Daubechies low-pass filter coefficients,
// indexed by order. The stored values follow the standard orthonormal
// convention (taps sum to sqrt(2)); Coefficients rescales them so the low-pass
// taps sum to exactly 1, which is the normalization the dyadic transition
// matrices require (rows 2*h then reproduce the two-scale relation with
// eigenvalue 1).
//
// Values are the standard published tables of the Daubechies extremal-phase
// family (db2..db10).
var daubechiesTaps = map[int][]float64{
	2: {
		0.48296291314469025,
		0.83651630373746899,
		0.22414386804185735,
		-0.12940952255092145,
	},
	3: {
		0.33267055295095688,
		0.80689150931333875,
		0.45987750211933132,
		-0.13501102001039084,
		-0.08544127388224149,
		0.03522629188210562,
	},
	4: {
		0.23037781330885523,
		0.71484657055254153,
		0.63088076792959036,
		-0.02798376941698385,
		-0.18703481171888114,
		0.03084138183598697,
		0.03288301166698295,
		-0.01059740178499728,
	},
	5: {
		0.16010239797412501,
		0.60382926979747287,
		0.72430852843857441,
		0.13842814590110342,
		-0.24229488706619015,
		-0.03224486958502952,
		0.07757149384006515,
		-0.00624149021301171,
		-0.01258075199901959,
		0.00333572528500155,
	},
	6: {
		0.11154074335008017,
		0.49462389039838539,
		0.75113390802157753,
		0.31525035170924131,
		-0.22626469396516913,
		-0.12976686756709563,
		0.09750160558707936,
		0.02752286553001629,
		-0.03158203931803115,
		0.00055384220099389,
		0.00477725751101065,
		-0.00107730108499558,
	},
	7: {
		0.07785205408506236,
		0.39653931948230575,
		0.72913209084655506,
		0.46978228740535860,
		-0.14390600392910627,
		-0.22403618499416572,
		0.07130921926705004,
		0.08061260915107622,
		-0.03802993693503463,
		-0.01657454163101562,
		0.01255099855609955,
		0.00042957797300470,
		-0.00180164070399983,
		0.00035371380000103,
	},
	8: {
		0.05441584224308161,
		0.31287159091446592,
		0.67563073629801285,
		0.58535468365486909,
		-0.01582910525602000,
		-0.28401554296242809,
		0.00047248457399797,
		0.12874742662018601,
		-0.01736930100202211,
		-0.04408825393106472,
		0.01398102791739828,
		0.00874609404701566,
		-0.00487035299301066,
		-0.00039174037299597,
		0.00067544940599855,
		-0.00011747678400842,
	},
	9: {
		0.03807794736316728,
		0.24383467463766728,
		0.60482312367678600,
		0.65728807803663890,
		0.13319738582208895,
		-0.29327378327258685,
		-0.09684078322087904,
		0.14854074933476008,
		0.03072568147832287,
		-0.06763282905952399,
		0.00025094711499193,
		0.02236166212351524,
		-0.00472320475789483,
		-0.00428150368190472,
		0.00184764688296113,
		0.00023038576399541,
		-0.00025196318899818,
		0.00003934731999503,
	},
	10: {
		0.02667005790095082,
		0.18817680007762133,
		0.52720118893091983,
		0.68845903945259213,
		0.28117234366042648,
		-0.24984642432648865,
		-0.19594627437659665,
		0.12736934033574265,
		0.09305736460380659,
		-0.07139414716586077,
		-0.02945753682194567,
		0.03321267405893324,
		0.00360655356698839,
		-0.01073317548297960,
		0.00139535174699408,
		0.00199240529499085,
		-0.00068585669500468,
		-0.00011646685499438,
		0.00009358867000109,
		-0.00001326420300235,
	},
}

// Coefficients returns the Daubechies filter taps for the requested order.
//
// With lowPass set, the returned taps are the scaling (low-pass) filter h,
// rescaled so that their sum is exactly 1. Otherwise the wavelet (high-pass)
// filter g is returned, derived from h by the quadrature-mirror relation
//
//	g[k] = (-1)^k * h[2*order-1-k]
//
// so the high-pass taps sum to approximately 0.
//
// Parameters:
//
//	order: Daubechies order (MinOrder to MaxOrder)
//	lowPass: select the scaling filter instead of the wavelet filter
//
// Returns:
//
//	A freshly allocated slice of 2*order taps, or an error for an
//	unsupported order.
func Coefficients(order int, lowPass bool) ([]float64, error) {
	taps, ok := daubechiesTaps[order]
	if !ok {
		return nil, fmt.Errorf("unsupported Daubechies order: %d (supported %d-%d)",
			order, MinOrder, MaxOrder)
	}

	numTaps := tapsPerOrder * order
	if len(taps) != numTaps {
		return nil, fmt.Errorf("malformed coefficient table for order %d: %d taps (want %d)",
			order, len(taps), numTaps)
	}

	// Rescale from the orthonormal convention (sum sqrt(2)) to sum 1.
	h := make([]float64, numTaps)
	f64.Scale(h, taps, 1/math.Sqrt2)

	if lowPass {
		return h, nil
	}

	g := make([]float64, numTaps)
	for k := range numTaps {
		g[k] = h[numTaps-1-k]
		if k%2 == 1 {
			g[k] = -g[k]
		}
	}
	return g, nil
}

// SupportWidth returns the width of the compact support of the order's
// scaling and wavelet functions: 2*order - 1.
func SupportWidth(order int) int {
	return tapsPerOrder*order - 1
}
