package polygon

import (
	"fmt"
	"sort"

	"github.com/vertexguard/artgallery/primitives"
)

// edgeSlab identifies a polygon edge by the index of its starting vertex:
// edge i runs from point i to point (i+1) mod n.
type edgeSlab struct {
	left, right int
}

// unorderedEdge resolves a polygon edge's two endpoints into higher/lower
// order, independent of the polygon's traversal direction along that edge.
type unorderedEdge struct {
	higher, lower primitives.Point
}

// TrapezoidRecord is one slab of the trapezoidalization: the polygon edges
// bounding it on the left and right, and the vertices bounding it on top and
// bottom.
type TrapezoidRecord struct {
	LeftEdge, RightEdge       int
	LeftEdgePts, RightEdgePts unorderedEdge
	TopVertex, BottomVertex   int
	TopPoint, BottomPoint     primitives.Point
}

func (p *SimplePolygon) edgePoints(edgeIdx int) unorderedEdge {
	p1 := p.points[edgeIdx]
	p2 := p.points[p.nextIndex(edgeIdx)]
	if p1.HigherThan(p2) {
		return unorderedEdge{higher: p1, lower: p2}
	}
	return unorderedEdge{higher: p2, lower: p1}
}

// onLeft reports whether point is strictly left of edge e, as seen looking
// from e's higher endpoint toward its lower endpoint. Collinear is a fatal
// condition: the polygon is guaranteed free of collinear triples (I3), and
// every point tested here is an interior vertex of an unrelated slab, so a
// collinear result indicates a corrupted sweep-line status.
func onLeft(e unorderedEdge, point primitives.Point) bool {
	switch primitives.OrientationOf(e.higher, e.lower, point) {
	case primitives.Clockwise:
		return true
	case primitives.Counterclockwise:
		return false
	default:
		panic(fmt.Sprintf("polygon: onLeft: point %v collinear with edge %v-%v", point, e.higher, e.lower))
	}
}

// trapezoidStaging accumulates the top/bottom vertex of a trapezoid keyed by
// its bounding (left, right) edge pair as the sweep progresses; both slots
// must be filled exactly once by the time the sweep finishes.
type trapezoidStaging struct {
	higherIdx, lowerIdx     int
	higherSet, lowerSet     bool
}

// PartitionTrapezoid runs the plane-sweep trapezoidalization described in
// spec.md §4.2, producing an unordered set of trapezoid records covering
// the polygon interior.
func (p *SimplePolygon) PartitionTrapezoid() []TrapezoidRecord {
	n := p.Len()

	eventQueue := make([]int, n)
	for i := range eventQueue {
		eventQueue[i] = i
	}
	sortByHigherThanDescending(eventQueue, p.points)

	var sls []edgeSlab
	staging := make(map[edgeSlab]*trapezoidStaging)

	update := func(left, right, pointIdx int, isLower bool) {
		key := edgeSlab{left, right}
		entry, ok := staging[key]
		if !ok {
			entry = &trapezoidStaging{}
			staging[key] = entry
		}
		if isLower {
			if entry.lowerSet {
				panic(fmt.Sprintf("polygon: trapezoid %v already has a lower vertex", key))
			}
			entry.lowerIdx, entry.lowerSet = pointIdx, true
		} else {
			if entry.higherSet {
				panic(fmt.Sprintf("polygon: trapezoid %v already has a higher vertex", key))
			}
			entry.higherIdx, entry.higherSet = pointIdx, true
		}
	}

	for _, curr := range eventQueue {
		prev := p.prevIndex(curr)
		currPt := p.points[curr]

		switch p.VertexTypeAt(curr) {
		case Start:
			idx := len(sls)
			for i, slab := range sls {
				if onLeft(p.edgePoints(slab.left), currPt) {
					idx = i
					break
				}
			}
			sls = insertSlab(sls, idx, edgeSlab{curr, prev})
			update(curr, prev, curr, false)

		case Split:
			idx := -1
			for i, slab := range sls {
				if !onLeft(p.edgePoints(slab.left), currPt) && onLeft(p.edgePoints(slab.right), currPt) {
					idx = i
					break
				}
			}
			if idx == -1 {
				panic("polygon: split vertex does not lie strictly inside any active slab")
			}
			ll, rr := sls[idx].left, sls[idx].right
			lr, rl := prev, curr

			sls = removeSlab(sls, idx)
			sls = insertSlab(sls, idx, edgeSlab{rl, rr})
			sls = insertSlab(sls, idx, edgeSlab{ll, lr})

			update(ll, rr, curr, true)
			update(rl, rr, curr, false)
			update(ll, lr, curr, false)

		case Merge:
			idx := -1
			for i, slab := range sls {
				if slab.right == curr {
					idx = i
					break
				}
			}
			if idx == -1 {
				panic("polygon: merge vertex has no slab ending at it")
			}
			ll, lr := sls[idx].left, sls[idx].right
			rl, rr := sls[idx+1].left, sls[idx+1].right
			if lr != curr || rl != prev {
				panic("polygon: merge vertex's adjacent slabs are not the expected pair")
			}

			sls = removeSlab(sls, idx)
			sls = removeSlab(sls, idx)
			sls = insertSlab(sls, idx, edgeSlab{ll, rr})

			update(rl, rr, curr, true)
			update(ll, lr, curr, true)
			update(ll, rr, curr, false)

		case End:
			idx := -1
			for i, slab := range sls {
				if slab.right == curr {
					idx = i
					break
				}
			}
			if idx == -1 {
				panic("polygon: end vertex has no slab ending at it")
			}
			l, r := sls[idx].left, sls[idx].right
			sls = removeSlab(sls, idx)
			update(l, r, curr, true)

		case Regular:
			matched := false
			for i, slab := range sls {
				if curr == slab.right {
					sls[i] = edgeSlab{slab.left, prev}
					update(slab.left, curr, curr, true)
					update(slab.left, prev, curr, false)
					matched = true
					break
				}
				if prev == slab.left {
					sls[i] = edgeSlab{curr, slab.right}
					update(prev, slab.right, curr, true)
					update(curr, slab.right, curr, false)
					matched = true
					break
				}
			}
			if !matched {
				panic("polygon: regular vertex matches no active slab")
			}
		}
	}

	ret := make([]TrapezoidRecord, 0, len(staging))
	for key, t := range staging {
		if !t.higherSet || !t.lowerSet {
			panic(fmt.Sprintf("polygon: trapezoid %v missing top or bottom vertex after sweep", key))
		}
		ret = append(ret, TrapezoidRecord{
			LeftEdge:     key.left,
			RightEdge:    key.right,
			LeftEdgePts:  p.edgePoints(key.left),
			RightEdgePts: p.edgePoints(key.right),
			TopVertex:    t.higherIdx,
			TopPoint:     p.points[t.higherIdx],
			BottomVertex: t.lowerIdx,
			BottomPoint:  p.points[t.lowerIdx],
		})
	}
	return ret
}

func insertSlab(s []edgeSlab, idx int, v edgeSlab) []edgeSlab {
	s = append(s, edgeSlab{})
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func removeSlab(s []edgeSlab, idx int) []edgeSlab {
	return append(s[:idx], s[idx+1:]...)
}

// sortByHigherThanDescending orders vertex indices highest-point-first,
// i.e. the event order of spec.md §4.2. Since points are pairwise distinct
// and HigherThan is total, this ordering is unambiguous.
func sortByHigherThanDescending(idx []int, points []primitives.Point) {
	sort.Slice(idx, func(i, j int) bool {
		return points[idx[i]].HigherThan(points[idx[j]])
	})
}
