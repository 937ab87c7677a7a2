package geom

import (
	"fmt"

	"github.com/vertexguard/artgallery/primitives"
)

// triangleNeighbors returns, for each of face's three sides, the internal
// face across the corresponding twin edge, or nil if that side borders the
// external face. face must have exactly three vertices.
func (d *DCEL) triangleNeighbors(face, external Handle) [3]*Handle {
	f := d.faces.MustGet(face)
	e1 := *f.outer
	e2 := *d.edges.MustGet(e1).next
	e3 := *d.edges.MustGet(e2).next
	if *d.edges.MustGet(e3).next != e1 {
		panic(fmt.Sprintf("geom: face %v is not a triangle", face))
	}

	var ret [3]*Handle
	for i, e := range [3]Handle{e1, e2, e3} {
		twin := *d.edges.MustGet(e).twin
		nf := *d.edges.MustGet(twin).incidentFace
		if nf != external {
			h := nf
			ret[i] = &h
		}
	}
	return ret
}

// ThreeColor assigns each polygon vertex one of the colors 1, 2, 3 such
// that every triangle uses all three (spec.md §4.7). It walks the
// triangle dual graph with an explicit work stack rather than recursion,
// since that dual graph can be as deep as n-2 (spec.md §9's design note).
func (d *DCEL) ThreeColor() map[primitives.Point]int {
	faces := d.InternalFaces()
	if len(faces) == 0 {
		return map[primitives.Point]int{}
	}
	external := d.getExternalFace()

	adjacency := make(map[Handle][3]*Handle, len(faces))
	for _, f := range faces {
		adjacency[f] = d.triangleNeighbors(f, external)
	}

	coloring := make(map[Handle]int)

	type frame struct{ face, parent Handle }
	stack := []frame{{face: faces[0], parent: faces[0]}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		forbidden := map[int]bool{}
		var fresh []Handle
		for _, ph := range d.pointHandleList(fr.face) {
			if c, ok := coloring[ph]; ok {
				forbidden[c] = true
			} else {
				fresh = append(fresh, ph)
			}
		}
		for _, ph := range fresh {
			assigned := false
			for c := 1; c <= 3; c++ {
				if !forbidden[c] {
					coloring[ph] = c
					forbidden[c] = true
					assigned = true
					break
				}
			}
			if !assigned {
				panic("geom: cannot three-color triangulation")
			}
		}

		for _, nb := range adjacency[fr.face] {
			if nb == nil || *nb == fr.parent {
				continue
			}
			stack = append(stack, frame{face: *nb, parent: fr.face})
		}
	}

	ret := make(map[primitives.Point]int, len(coloring))
	for h, c := range coloring {
		ret[d.vertices.MustGet(h).point] = c
	}
	return ret
}
