package polygon

import (
	"sort"

	"github.com/vertexguard/artgallery/primitives"
)

// TriangulateMonotone triangulates a y-monotone polygon using the classical
// two-chain stack sweep (spec.md §4.4): vertices are merged into one
// sequence ordered highest-first; a stack tracks the still-unresolved
// "staircase" of the chain currently being walked, and each new vertex
// either connects across to the opposite chain (draining the stack) or
// extends the same chain (popping while the next ear is convex).
//
// p is assumed to already be y-monotone (the caller triangulates one
// monotone face produced by PartitionMonotone + DCEL diagonal insertion);
// this is not re-validated here.
func (p *SimplePolygon) TriangulateMonotone() []primitives.DirEdge {
	n := p.Len()
	if n < 3 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return p.points[order[i]].HigherThan(p.points[order[j]])
	})

	onRight := p.classifyChains(order[0], order[n-1])

	var diagonals []primitives.DirEdge
	addDiagonal := func(a, b int) {
		diagonals = append(diagonals, primitives.NewDirEdge(p.points[a], p.points[b]))
	}

	stack := []int{order[0], order[1]}

	for j := 2; j < n-1; j++ {
		v := order[j]
		top := stack[len(stack)-1]

		if onRight[v] != onRight[top] {
			// Opposite-chain case: v sees every vertex currently on the
			// stack except the oldest one (the stack's bottom, which
			// remains untouched as it is adjacent to v along the opposite
			// chain rather than needing a fresh diagonal here).
			for i := 1; i < len(stack); i++ {
				addDiagonal(v, stack[i])
			}
			formerTop := stack[len(stack)-1]
			stack = []int{formerTop, v}
			continue
		}

		// Same-chain case: pop while the ear (v, poppedTop, candidate) is
		// convex with respect to this chain's orientation.
		popped := top
		stack = stack[:len(stack)-1]
		for len(stack) > 0 {
			cand := stack[len(stack)-1]
			o := primitives.OrientationOf(p.points[v], p.points[popped], p.points[cand])
			var convex bool
			if onRight[v] {
				convex = o == primitives.Clockwise
			} else {
				convex = o == primitives.Counterclockwise
			}
			if !convex {
				break
			}
			addDiagonal(v, cand)
			popped = cand
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, popped, v)
	}

	// Final vertex (the polygon's bottommost point) connects to every
	// stack entry except the first and last, which are the two endpoints
	// of the lowest edge (spec.md §4.4's termination property).
	last := order[n-1]
	for i := 1; i < len(stack)-1; i++ {
		addDiagonal(last, stack[i])
	}

	return diagonals
}

// classifyChains labels every vertex index as belonging to the right chain
// (true) or left chain (false) of a y-monotone polygon with the given top
// and bottom vertex indices: the right chain is reached walking forward
// (nextIndex) from top down to bottom, the left chain walking backward
// (prevIndex).
func (p *SimplePolygon) classifyChains(topIdx, bottomIdx int) map[int]bool {
	onRight := make(map[int]bool, p.Len())

	for i := p.nextIndex(topIdx); ; i = p.nextIndex(i) {
		onRight[i] = true
		if i == bottomIdx {
			break
		}
	}
	for i := p.prevIndex(topIdx); ; i = p.prevIndex(i) {
		if _, ok := onRight[i]; !ok {
			onRight[i] = false
		}
		if i == bottomIdx {
			break
		}
	}
	onRight[topIdx] = onRight[p.nextIndex(topIdx)]
	return onRight
}
