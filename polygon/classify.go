package polygon

import "github.com/vertexguard/artgallery/primitives"

// VertexType is the plane-sweep classification of a polygon vertex, per
// spec.md §3.
type VertexType int

const (
	Regular VertexType = iota
	Start
	Split
	End
	Merge
)

func (t VertexType) String() string {
	switch t {
	case Start:
		return "Start"
	case Split:
		return "Split"
	case End:
		return "End"
	case Merge:
		return "Merge"
	default:
		return "Regular"
	}
}

// isReflex reports whether the interior angle at points[idx] is reflex, i.e.
// orientation(prev, curr, next) is Clockwise. The polygon is CCW by
// construction (I4), so a clockwise turn at a vertex means the interior
// angle there exceeds a straight angle.
func (p *SimplePolygon) isReflex(idx int) bool {
	prev := p.points[p.prevIndex(idx)]
	curr := p.points[idx]
	next := p.points[p.nextIndex(idx)]
	return primitives.OrientationOf(prev, curr, next) == primitives.Clockwise
}

// VertexTypeAt classifies the vertex at idx per spec.md §3.
func (p *SimplePolygon) VertexTypeAt(idx int) VertexType {
	curr := p.points[idx]
	next := p.points[p.nextIndex(idx)]
	prev := p.points[p.prevIndex(idx)]
	reflex := p.isReflex(idx)

	switch {
	case curr.HigherThan(next) && curr.HigherThan(prev):
		if reflex {
			return Split
		}
		return Start
	case next.HigherThan(curr) && prev.HigherThan(curr):
		if reflex {
			return Merge
		}
		return End
	default:
		return Regular
	}
}
