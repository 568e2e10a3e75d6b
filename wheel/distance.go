package wheel

import "math"

// MatchThreshold is the Delta-E below which two colors count as the same
// color for gameplay purposes.
const MatchThreshold = 20

// Distance returns a CIE76-style Delta-E between two device colors.
//
// The chroma weights SC and SH are computed from the first argument only, so
// Distance(a, b) and Distance(b, a) differ slightly in general. Call sites
// pass the sampled candidate first and the reference color second; swapping
// them changes gameplay feel.
func Distance(a, b RGB) float64 {
	la := a.Lab()
	lb := b.Lab()

	dL := la.L - lb.L
	dA := la.A - lb.A
	dB := la.B - lb.B

	c1 := math.Hypot(la.A, la.B)
	c2 := math.Hypot(lb.A, lb.B)
	dC := c1 - c2

	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}
	dH := math.Sqrt(dH2)

	sc := 1 + 0.045*c1
	sh := 1 + 0.015*c1

	// SL is 1: lightness differences are unweighted.
	sum := dL*dL + (dC/sc)*(dC/sc) + (dH/sh)*(dH/sh)
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}
