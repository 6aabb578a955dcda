package numeric

// This file implements the error-free floating-point transformations and expansion arithmetic
// that the adaptive-precision predicates in predicate.go are built on, following the approach
// described by Shewchuk ("Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates"). An expansion is a finite sequence of float64 components, ordered from least to
// most significant, that are nonoverlapping (no component's value falls within the rounding error
// of another) and whose exact sum equals some real value no single float64 can represent exactly.
//
// Epsilon is half the distance between 1.0 and the next representable float64; Splitter is used
// by TwoProduct to break a float64 into two halves that each fit exactly in a product.
const (
	Epsilon  = 1.0 / (1 << 53)
	Splitter = (1 << 27) + 1
)

// PerpErrBound1 and PerpErrBound2 are the floating-point filter tolerances used by PerpDotSign:
// the first after the straightforward double-precision computation, the second after one round
// of TwoTwoSum refinement. Both are expressed in units of the sum of the two candidate products'
// magnitudes, per Shewchuk's error analysis for a two-term cross product.
const (
	PerpErrBound1 = (16*Epsilon + 3) * Epsilon
	PerpErrBound2 = (12*Epsilon + 2) * Epsilon
)

// TwoSum computes hi = fl(a+b) and the exact rounding error lo, such that hi+lo == a+b exactly
// (with infinite precision). This is Shewchuk's Two-Sum, which makes no assumption about the
// relative magnitudes of a and b (unlike the cheaper Fast-Two-Sum).
func TwoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	bVirtual := hi - a
	aVirtual := hi - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	lo = aRoundoff + bRoundoff
	return hi, lo
}

// TwoSumLo returns only the rounding-error term of a+b, given that the caller has already
// computed hi = fl(a+b). It performs the same work as TwoSum without recomputing hi.
func TwoSumLo(a, b, hi float64) float64 {
	bVirtual := hi - a
	aVirtual := hi - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff
}

// TwoDiff computes hi = fl(a-b) and the exact rounding error lo, such that hi+lo == a-b exactly.
func TwoDiff(a, b float64) (hi, lo float64) {
	hi = a - b
	bVirtual := a - hi
	aVirtual := hi + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	lo = aRoundoff + bRoundoff
	return hi, lo
}

// split breaks a float64 into two halves (hi, lo) each with at most 26 significant bits, such
// that hi+lo == a exactly and the product of any two split halves is exactly representable.
func split(a float64) (hi, lo float64) {
	c := Splitter * a
	aBig := c - a
	hi = c - aBig
	lo = a - hi
	return hi, lo
}

// TwoProduct computes hi = fl(a*b) and the exact rounding error lo, such that hi+lo == a*b
// exactly, using Dekker/Veltkamp splitting.
func TwoProduct(a, b float64) (hi, lo float64) {
	hi = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err1 := hi - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	lo = aLo*bLo - err3
	return hi, lo
}

// TwoProductLo returns only the rounding-error term of a*b, given that the caller has already
// computed hi = fl(a*b).
func TwoProductLo(a, b, hi float64) float64 {
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err1 := hi - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	return aLo*bLo - err3
}

// TwoTwoSum exactly sums two nonoverlapping 2-term expansions (a1,a0) and (b1,b0), each ordered
// most-significant-first, returning the resulting 4-term expansion ordered least-significant-first
// (x0, x1, x2, x3). The result is not zero-eliminated — callers that need a canonical expansion
// should pass it through BigSum or through a dedicated zero-elimination pass.
func TwoTwoSum(a1, a0, b1, b0 float64) (x0, x1, x2, x3 float64) {
	i, x0 := TwoSum(a0, b0)
	j, z := TwoSum(a1, i)
	k, x1 := TwoSum(z, b1)
	x3, x2 = TwoSum(j, k)
	return x0, x1, x2, x3
}

// growExpansion adds a single scalar b into expansion e (ordered least-significant-first),
// returning the resulting exact expansion with zero components removed.
func growExpansion(e []float64, b float64) []float64 {
	out := make([]float64, 0, len(e)+1)
	q := b
	for _, ei := range e {
		hi, lo := TwoSum(q, ei)
		if lo != 0 {
			out = append(out, lo)
		}
		q = hi
	}
	if q != 0 || len(out) == 0 {
		out = append(out, q)
	}
	return out
}

// BigSum computes the exact sum of two expansions (each ordered least-significant-first),
// returning a new expansion with zero components stripped. Complexity is O(len(e)*len(f));
// this favors simplicity and correctness over the linear-time merge Shewchuk describes, since
// the expansions this system manipulates (coordinates of a single computed intersection point)
// never grow beyond a handful of terms.
func BigSum(e, f []float64) []float64 {
	out := append([]float64(nil), e...)
	for _, fi := range f {
		out = growExpansion(out, fi)
	}
	if len(out) == 0 {
		return []float64{0}
	}
	return out
}

// SmallProd computes the exact product of expansion e (least-significant-first) with scalar b,
// returning a new expansion with zero components stripped.
func SmallProd(e []float64, b float64) []float64 {
	if len(e) == 0 {
		return []float64{0}
	}
	hi, lo := TwoProduct(e[0], b)
	out := []float64{}
	if lo != 0 {
		out = append(out, lo)
	}
	q := hi
	for _, ei := range e[1:] {
		termHi, termLo := TwoProduct(ei, b)
		sumHi, sumLo := TwoSum(q, termLo)
		if sumLo != 0 {
			out = append(out, sumLo)
		}
		finalHi, finalLo := TwoSum(termHi, sumHi)
		if finalLo != 0 {
			out = append(out, finalLo)
		}
		q = finalHi
	}
	if q != 0 || len(out) == 0 {
		out = append(out, q)
	}
	return out
}

// BigProd computes the exact product of two expansions, returning a new expansion with zero
// components stripped. It accumulates e*f[i] for each term of f via SmallProd and BigSum; this is
// the textbook quadratic expansion-product, adequate here since neither operand expansion grows
// beyond the handful of terms a single intersection computation produces.
func BigProd(e, f []float64) []float64 {
	if len(f) == 0 || len(e) == 0 {
		return []float64{0}
	}
	out := SmallProd(e, f[0])
	for _, fi := range f[1:] {
		out = BigSum(out, SmallProd(e, fi))
	}
	return out
}

// NegateExpansion returns a new expansion representing the negation of e; since negating every
// component of a nonoverlapping expansion preserves the nonoverlapping property, this needs no
// renormalization.
func NegateExpansion(e []float64) []float64 {
	out := make([]float64, len(e))
	for i, ei := range e {
		out[i] = -ei
	}
	return out
}

// Estimate returns the (possibly imprecise) float64 sum of an expansion's components. This is
// used only for magnitude checks and debug display, never to decide a predicate's sign.
func Estimate(e []float64) float64 {
	var sum float64
	for _, ei := range e {
		sum += ei
	}
	return sum
}

// ExpansionSign returns the sign of the exact value an expansion represents. Because expansion
// components are nonoverlapping, the most significant nonzero component (the last one, since
// expansions here are ordered least-significant-first) determines the sign of the whole sum.
func ExpansionSign(e []float64) int {
	for i := len(e) - 1; i >= 0; i-- {
		switch {
		case e[i] > 0:
			return 1
		case e[i] < 0:
			return -1
		}
	}
	return 0
}
