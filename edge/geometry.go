package edge

import (
	"github.com/scanline-geo/ytess/numeric"
	"github.com/scanline-geo/ytess/point"
)

// perpDotSignPoints is a thin adapter from point.Point pairs to [numeric.PerpDotSign]'s raw
// float64 signature, used by both Edge.AngleDeltaFrom and Bundle.DeltaFrom.
func perpDotSignPoints(a1, a2, b1, b2 point.Point) float64 {
	ax1, ay1 := a1.Coordinates()
	ax2, ay2 := a2.Coordinates()
	bx1, by1 := b1.Coordinates()
	bx2, by2 := b2.Coordinates()
	return numeric.PerpDotSign(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
}
