package primitives

// DirEdge is an ordered pair of distinct points: a directed segment from
// Start to End.
type DirEdge struct {
	Start, End Point
}

// NewDirEdge builds a directed edge between two (necessarily distinct)
// points.
func NewDirEdge(start, end Point) DirEdge {
	return DirEdge{Start: start, End: end}
}

// String renders the edge as "x y, x y", matching the point-pair fragment
// used inside WKT-flavored debug output.
func (e DirEdge) String() string {
	return e.Start.String() + ", " + e.End.String()
}

// Intersects reports whether e and other share at least one point, using the
// standard orientation-based segment intersection test: the general case
// (the endpoints of each segment straddle the other's supporting line) plus
// the three collinear-touching special cases.
func (e DirEdge) Intersects(other DirEdge) bool {
	p1, q1 := e.Start, e.End
	p2, q2 := other.Start, other.End

	o1 := OrientationOf(p1, q1, p2)
	o2 := OrientationOf(p1, q1, q2)
	o3 := OrientationOf(p2, q2, p1)
	o4 := OrientationOf(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == Collinear && onSegment(e, p2) {
		return true
	}
	if o2 == Collinear && onSegment(e, q2) {
		return true
	}
	if o3 == Collinear && onSegment(other, p1) {
		return true
	}
	if o4 == Collinear && onSegment(other, q1) {
		return true
	}
	return false
}

// onSegment reports whether q lies within the axis-aligned bounding box of
// e, given that q is already known to be collinear with e's endpoints.
func onSegment(e DirEdge, q Point) bool {
	p, r := e.Start, e.End
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}
