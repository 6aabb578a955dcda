// Package point defines the foundational geometric primitive used throughout ytess: the Point
// type and its exact, arbitrary-precision counterpart RationalPoint.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. It provides the small set
// of vector operations the sweep-line engine actually needs: translation, negation, distance,
// cross and dot product, and epsilon-tolerant equality. RationalPoint extends this with the
// homogeneous (x, y, w) representation and adaptive-precision error bookkeeping a computed
// segment/segment intersection requires — see the package-level doc on RationalPoint.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/scanline-geo/ytess/numeric"
	"github.com/scanline-geo/ytess/options"
)

var origin = Point{}

// Origin returns the origin point (0,0).
func Origin() Point {
	return origin
}

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 { return p.x }

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 { return p.y }

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the difference of two points as if they were vectors (p - q).
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Translate returns a new point translated by the vector q.
func (p Point) Translate(q Point) Point {
	return p.Add(q)
}

// Negate returns a new Point with both x and y coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x*b.y - a.y*b.x
//
// A positive result indicates a counterclockwise turn, a negative result a clockwise turn, and
// zero indicates the vectors are collinear. This is a plain float64 computation; callers that
// need an exactly-signed result near the zero crossing should use [numeric.PerpDotSign] instead.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DotProduct calculates the dot product of the vector represented by p with the vector q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether p is equal to q, optionally within an epsilon tolerance.
//
// By default this is an exact comparison; pass [options.WithEpsilon] to treat coordinate
// differences within the given tolerance as equal.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	if geoOpts.Epsilon == 0 {
		return p.x == q.x && p.y == q.y
	}
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// String returns a human-readable representation of the point, e.g. "(1,2)".
func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}
