package cg

import "math"

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in
// ascending order. A vanishing a degrades to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	disc := sc1*sc1 - 4*sc0
	switch {
	case !isFinite(disc):
		// Overflow: x^2 + sc1*x ~ 0 gives one root, Vieta gives the other.
		return sortedRoots(-sc1, sc0/-sc1)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoids cancellation between -b and sqrt(disc).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	return sortedRoots(root1, sc0/root1)
}

func sortedRoots(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// rootsInUnitInterval keeps the roots strictly inside (0, 1).
func rootsInUnitInterval(roots []float64) []float64 {
	out := roots[:0]
	for _, r := range roots {
		if r > 0 && r < 1 {
			out = append(out, r)
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
