package point

import "github.com/scanline-geo/ytess/numeric"

// BundleRef is the minimal capability a RationalPoint needs from the two generating bundles
// that produced it: a stable identity for memoization and ordering tie-breaks. The edge package's
// Bundle type satisfies this; point itself never depends on edge (which depends on point) to
// avoid an import cycle.
type BundleRef interface {
	// ID returns the bundle's monotonically-assigned identity.
	ID() uint32
}

// RationalPoint is the homogeneous (x, y, w) representation a computed segment/segment
// intersection is expressed in before it is ever rounded down to a plain Point. w=0 means the
// point is a literal (x, y) — an original input vertex, or an intersection that coincided exactly
// with one. w>0 means (x/w, y/w) is a true computed intersection.
//
// xErr, yErr and wErr bound the maximum rounding error accumulated by the float64 arithmetic that
// produced x, y and w respectively; they let deltaFrom-style comparisons decide, without
// escalating to exact arithmetic, whether two RationalPoints provably differ. xExact, yExact and
// wExact are the lazily-materialized exact expansions for the same three quantities, computed
// only when a comparison's float64 filter leaves the answer ambiguous; once computed they are
// cached on the point so a later comparison against the same point does not redo the work.
//
// A and B are the two generating bundles (as an opaque BundleRef, to avoid point depending on
// edge); both are nil for an input vertex. If the intersection coincided exactly with one
// endpoint, the non-contributing bundle is dropped (set to nil) and W is forced to 0, since the
// point is then no longer a "true" intersection of two distinct bundles.
type RationalPoint struct {
	X, Y, W          float64
	XErr, YErr, WErr float64

	xExact, yExact, wExact []float64

	A, B BundleRef
}

// FromPoint constructs a literal RationalPoint (w=0) from a plain Point, with zero error bounds
// since the coordinates are exact input data, not the result of a floating-point computation.
func FromPoint(p Point) RationalPoint {
	return RationalPoint{X: p.x, Y: p.y, W: 0}
}

// Point projects the RationalPoint down to a plain Point, dividing through by W when the point is
// a true computed intersection (W>0). Callers needing the one-ULP-accurate literal expansion
// result should read the expansions returned by [RationalPoint.Exact] instead.
func (r RationalPoint) Point() Point {
	if r.W == 0 {
		return New(r.X, r.Y)
	}
	return New(r.X/r.W, r.Y/r.W)
}

// IsLiteral reports whether r represents an original input vertex or endpoint-coincident
// intersection (W==0), as opposed to a true computed crossing of two distinct bundles (W>0).
func (r RationalPoint) IsLiteral() bool {
	return r.W == 0
}

// HasExact reports whether r's exact expansions have already been materialized.
func (r RationalPoint) HasExact() bool {
	return r.wExact != nil
}

// Exact returns the materialized exact expansions (xExact, yExact, wExact), materializing them
// first via materialize if they have not been computed yet. a and b are the two full segments
// (as (x1,y1,x2,y2) coordinate quadruples) whose intersection produced r; they are needed only on
// the first call, since materialize is memoized on r afterward.
func (r *RationalPoint) Exact(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) (xExact, yExact, wExact []float64) {
	if r.wExact == nil {
		r.materialize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	}
	return r.xExact, r.yExact, r.wExact
}

// materialize computes the exact expansions for W, X and Y from the four endpoints of the two
// generating segments a=(ax1,ay1)-(ax2,ay2) and b=(bx1,by1)-(bx2,by2), following the construction
// spec §4.4 describes: wExact = perpDotExact(a,b); xExact = ax2*wExact + (ax2-ax)*offset, and
// analogously for yExact, where offset is the perpendicular dot of a's second endpoint against
// both endpoints of b.
func (r *RationalPoint) materialize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) {
	wExact := numeric.PerpDotExact(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	offset := numeric.PerpDotExact(ax2, ay2, bx1, by1, ax2, ay2, bx2, by2)

	xExact := numeric.BigSum(
		numeric.SmallProd(wExact, ax2),
		numeric.SmallProd(offset, ax2-ax1),
	)
	yExact := numeric.BigSum(
		numeric.SmallProd(wExact, ay2),
		numeric.SmallProd(offset, ay2-ay1),
	)

	r.wExact = wExact
	r.xExact = xExact
	r.yExact = yExact
}

// DeltaFrom compares r against key using the sweep ordering a RationalPoint-keyed splay tree
// needs: primarily by y, then by x, with ties between two true intersections resolved by a
// filtered rational comparison that escalates to exact expansions only on ambiguity. A positive
// result means r sorts after key, negative means before, zero means they are the same event.
func (r *RationalPoint) DeltaFrom(key RationalPoint) float64 {
	if r.W == 0 && key.W == 0 {
		if d := r.Y - key.Y; d != 0 {
			return d
		}
		return r.X - key.X
	}

	// A literal point (W==0) has an implied denominator of 1 and zero error on it — it is exact
	// input data, not a computed quantity — matching the w=1 substitution exactOrLiteral makes on
	// the exact path. Using the stored W==0 here instead would treat every literal as having
	// infinite denominator, corrupting the sign of every comparison against it.
	rw, rwErr := r.W, r.WErr
	if rw == 0 {
		rw, rwErr = 1, 0
	}
	kw, kwErr := key.W, key.WErr
	if kw == 0 {
		kw, kwErr = 1, 0
	}

	det := r.Y*kw - key.Y*rw
	bound := (numeric.Abs(r.Y)*kwErr + numeric.Abs(kw)*r.YErr +
		numeric.Abs(key.Y)*rwErr + numeric.Abs(rw)*key.YErr) * (1 + 8*numeric.Epsilon)
	if det > bound || det < -bound {
		return det
	}

	rxE, ryE, rwE := r.exactOrLiteral()
	kxE, kyE, kwE := key.exactOrLiteral()

	lhs := numeric.BigProd(ryE, kwE)
	rhs := numeric.BigProd(kyE, rwE)
	diff := numeric.BigSum(lhs, numeric.NegateExpansion(rhs))
	if sign := numeric.ExpansionSign(diff); sign != 0 {
		return float64(sign)
	}

	lhsX := numeric.BigProd(rxE, kwE)
	rhsX := numeric.BigProd(kxE, rwE)
	diffX := numeric.BigSum(lhsX, numeric.NegateExpansion(rhsX))
	return float64(numeric.ExpansionSign(diffX))
}

// exactOrLiteral returns r's exact expansions, falling back to a trivial one-term expansion built
// from its float64 fields when r has not (or never needs to) materialize exact values — which is
// always the case for a literal point (W==0), since a literal's coordinates are already exact.
func (r *RationalPoint) exactOrLiteral() (xExact, yExact, wExact []float64) {
	if r.wExact != nil {
		return r.xExact, r.yExact, r.wExact
	}
	w := r.W
	if w == 0 {
		w = 1
	}
	return []float64{r.X}, []float64{r.Y}, []float64{w}
}
