// Package primitives holds the exact-integer geometric building blocks
// shared by the polygon and geom packages: points, directed edges, the
// orientation predicate, and the higher-than total order.
package primitives

import "fmt"

// Point is an integer location in the plane. Equality is componentwise, and
// Point is comparable so it can be used directly as a map key (mirroring the
// Point -> vertex hash of the DCEL).
type Point struct {
	X, Y int
}

// NewPoint constructs a Point from integer coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "x y", the atom used inside the WKT-flavored
// debug text produced by SimplePolygon and DCEL face views.
func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// HigherThan implements the total order used throughout the sweep: p is
// higher than q iff p.Y > q.Y, or p.Y == q.Y and p.X > q.X. Because the
// polygon is guaranteed free of duplicate points (I1), this order is strict
// whenever p != q; HigherThan panics if called on equal points, since no
// caller should ever need to break a tie against itself.
func (p Point) HigherThan(q Point) bool {
	if p == q {
		panic(fmt.Sprintf("primitives: HigherThan called on identical points %v", p))
	}
	return p.Y > q.Y || (p.Y == q.Y && p.X > q.X)
}
