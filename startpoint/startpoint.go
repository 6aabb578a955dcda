// Package startpoint implements the sweep driver's preprocessing scan: for each input ring, it
// discovers the positions at which the sweep line must insert fresh edges — the ring's local
// topmost vertices — and sorts them into the order the driver consumes them in.
//
// The scan itself is grounded on the local-minima discovery in the Clipper2 port's
// findPathMinima: a single forward pass tracking the direction of travel, recording the vertex
// where the scan stops climbing.
package startpoint

import (
	"slices"

	"github.com/scanline-geo/ytess/point"
)

// Entry is one discovered ring entry point: the ring it belongs to, the position within that
// ring, and the point itself (kept alongside Pos so sorting does not need to re-index into the
// ring).
type Entry struct {
	Ring int
	Pos  int
	Pt   point.Point
}

// Scan finds every local topmost vertex across rings and returns them sorted ascending by
// (y, x, pos). Rings with fewer than 3 points, or with no discoverable entry (every point
// coincides with its neighbor), are skipped.
//
// The direction convention follows spec §4.5: a "strictly-upward stride" is one where the
// current point's y is less than the previous point's y, or the y values tie and x is less.
// Scanning a ring cyclically, the entry candidate is updated on every strictly-upward stride; the
// candidate is committed to the output the moment the stride stops being strictly upward (i.e.
// the scan starts climbing down-or-right again), so a ring contributes one entry per local
// topmost vertex. A climb that wraps past the ring's last point is committed once it ends.
func Scan(rings [][]point.Point) []Entry {
	var entries []Entry

	for ringIdx, ring := range rings {
		if len(ring) < 3 {
			continue
		}

		// dedupe exact-consecutive duplicates (including the wraparound edge) before scanning.
		// orig maps each kept point back to its position in ring, which is what Entry.Pos reports.
		pts := make([]point.Point, 0, len(ring))
		orig := make([]int, 0, len(ring))
		for i, p := range ring {
			if len(pts) > 0 && pts[len(pts)-1].Eq(p) {
				continue
			}
			pts = append(pts, p)
			orig = append(orig, i)
		}
		for len(pts) > 1 && pts[0].Eq(pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
			orig = orig[:len(orig)-1]
		}
		if len(pts) < 3 {
			continue
		}

		candidate := -1
		climbing := false
		firstUpward := false

		n := len(pts)
		for i := 0; i < n; i++ {
			prev := pts[(i-1+n)%n]
			cur := pts[i]
			upward := cur.Y() < prev.Y() || (cur.Y() == prev.Y() && cur.X() < prev.X())
			if i == 0 {
				firstUpward = upward
			}

			if upward {
				candidate = i
				climbing = true
				continue
			}

			if climbing && candidate >= 0 {
				entries = append(entries, Entry{Ring: ringIdx, Pos: orig[candidate], Pt: pts[candidate]})
			}
			climbing = false
		}

		// A climb still open at the end continues into stride 0 when that stride is upward, and
		// was already committed inside the loop; otherwise its top is the last candidate.
		if climbing && !firstUpward && candidate >= 0 {
			entries = append(entries, Entry{Ring: ringIdx, Pos: orig[candidate], Pt: pts[candidate]})
		}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if d := a.Pt.Y() - b.Pt.Y(); d != 0 {
			return sign(d)
		}
		if d := a.Pt.X() - b.Pt.X(); d != 0 {
			return sign(d)
		}
		return a.Pos - b.Pos
	})

	return entries
}

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
