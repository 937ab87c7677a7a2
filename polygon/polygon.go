// Package polygon implements SimplePolygon: an integer, counter-clockwise,
// simple polygon together with the plane-sweep trapezoidalization, the
// y-monotone partition derived from it, and the stack-based monotone
// triangulation. See SPEC_FULL.md §4.1-§4.4 for the algorithms this package
// implements.
package polygon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertexguard/artgallery/primitives"
)

// ErrDuplicatePoint is returned by NewSimplePolygon when the input sequence
// repeats a point (invariant I1).
var ErrDuplicatePoint = errors.New("polygon: duplicate point in vertex sequence")

// ErrCollinearTriple is returned by NewSimplePolygon when three consecutive
// vertices are collinear (invariant I3) — the source's degenerate-geometry
// condition, rejected here rather than deep inside the sweep.
var ErrCollinearTriple = errors.New("polygon: three consecutive collinear vertices")

// ErrTooFewPoints is returned when fewer than three points are supplied.
var ErrTooFewPoints = errors.New("polygon: need at least 3 points")

// SimplePolygon is a counter-clockwise-oriented circular sequence of
// distinct integer points with no three consecutive collinear vertices
// (invariants I1-I4 of spec.md §3).
type SimplePolygon struct {
	points []primitives.Point
}

// NewSimplePolygon validates and wraps a point sequence. Duplicate points
// and collinear triples are rejected (I1, I3); a clockwise-oriented input is
// reversed in place to enforce I4, matching the reversal gen_rand_hard
// performs on a successful draw.
func NewSimplePolygon(points []primitives.Point) (*SimplePolygon, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	seen := make(map[primitives.Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, p)
		}
		seen[p] = struct{}{}
	}

	cp := make([]primitives.Point, len(points))
	copy(cp, points)
	p := &SimplePolygon{points: cp}

	n := len(cp)
	for i := 0; i < n; i++ {
		prev := cp[(i-1+n)%n]
		curr := cp[i]
		next := cp[(i+1)%n]
		if primitives.OrientationOf(prev, curr, next) == primitives.Collinear {
			return nil, fmt.Errorf("%w: at vertex %v", ErrCollinearTriple, curr)
		}
	}

	if p.signedAreaDeterminant() < 0 {
		reverse(p.points)
	}
	return p, nil
}

func reverse(pts []primitives.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// Points returns a read-only view of the polygon's ordered vertex list.
func (p *SimplePolygon) Points() []primitives.Point {
	out := make([]primitives.Point, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of vertices.
func (p *SimplePolygon) Len() int {
	return len(p.points)
}

func (p *SimplePolygon) nextIndex(i int) int {
	return (i + 1) % len(p.points)
}

func (p *SimplePolygon) prevIndex(i int) int {
	if i == 0 {
		return len(p.points) - 1
	}
	return i - 1
}

// signedAreaDeterminant is twice the signed area of the polygon (the shoelace
// sum); positive for a counter-clockwise ring.
func (p *SimplePolygon) signedAreaDeterminant() int {
	ret := 0
	n := len(p.points)
	for i := 0; i < n; i++ {
		curr := p.points[i]
		next := p.points[(i+1)%n]
		ret += curr.X*next.Y - curr.Y*next.X
	}
	return ret
}

// String renders the polygon as a WKT-flavored "POLYGON((x y, x y, ...))"
// string, closing the ring, for use in log output and test failures only
// (see SPEC_FULL.md §6.1 — this is never parsed back in).
func (p *SimplePolygon) String() string {
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	for i, pt := range p.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	if len(p.points) > 0 {
		sb.WriteString(", ")
		sb.WriteString(p.points[0].String())
	}
	sb.WriteString("))")
	return sb.String()
}
