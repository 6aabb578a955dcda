package point

import (
	"github.com/scanline-geo/ytess/numeric"
	"github.com/scanline-geo/ytess/types"
)

// Orientation determines the relative orientation of three points in a 2D plane: whether p, q, r
// make a clockwise turn, a counterclockwise turn, or are exactly collinear.
//
// Unlike a naive epsilon-scaled cross product, this uses [numeric.PerpDotSign], which is exact for
// every combination of finite float64 inputs (see spec §4.1 / P5): the result reflects the true
// mathematical sign of the determinant rather than an approximation of it, so no epsilon parameter
// is needed here.
func Orientation(p, q, r Point) types.PointOrientation {
	sign := numeric.PerpDotSign(p.x, p.y, q.x, q.y, p.x, p.y, r.x, r.y)
	switch {
	case sign > 0:
		return types.PointsCounterClockwise
	case sign < 0:
		return types.PointsClockwise
	default:
		return types.PointsCollinear
	}
}
