package polygon

import "github.com/vertexguard/artgallery/primitives"

// PartitionMonotone runs the trapezoidalization and emits one diagonal per
// trapezoid whose top vertex is a Merge or whose bottom vertex is a Split
// (spec.md §4.3). Adding these diagonals to the polygon partitions it into
// y-monotone sub-polygons.
func (p *SimplePolygon) PartitionMonotone() []primitives.DirEdge {
	var ret []primitives.DirEdge
	for _, t := range p.PartitionTrapezoid() {
		switch {
		case p.VertexTypeAt(t.TopVertex) == Merge:
			ret = append(ret, primitives.NewDirEdge(t.TopPoint, t.BottomPoint))
		case p.VertexTypeAt(t.BottomVertex) == Split:
			ret = append(ret, primitives.NewDirEdge(t.TopPoint, t.BottomPoint))
		}
	}
	return ret
}
