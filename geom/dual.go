package geom

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// FaceCentroid is the arithmetic mean of a triangle's three vertices, used
// only to place a dual-graph node for visualization.
type FaceCentroid struct {
	X, Y float64
}

// CentroidEdge connects the centroids of two triangles that share a side.
type CentroidEdge struct {
	From, To FaceCentroid
}

func faceID(h Handle) string {
	return fmt.Sprintf("f%d.%d", h.index, h.generation)
}

// buildDualGraph represents the triangulation's internal faces as an
// undirected lvlath graph: one vertex per triangle, one edge per pair of
// triangles sharing a diagonal.
func (d *DCEL) buildDualGraph(faces []Handle, external Handle) *core.Graph {
	g := core.NewGraph()
	for _, f := range faces {
		if err := g.AddVertex(faceID(f)); err != nil {
			panic(fmt.Sprintf("geom: dual graph: %v", err))
		}
	}
	for _, f := range faces {
		for _, nb := range d.triangleNeighbors(f, external) {
			if nb == nil || less(*nb, f) {
				continue
			}
			if _, err := g.AddEdge(faceID(f), faceID(*nb), 0); err != nil {
				panic(fmt.Sprintf("geom: dual graph: %v", err))
			}
		}
	}
	return g
}

func less(a, b Handle) bool {
	if a.index != b.index {
		return a.index < b.index
	}
	return a.generation < b.generation
}

func (d *DCEL) faceCentroid(face Handle) FaceCentroid {
	pts := d.FacePoints(face)
	var sx, sy float64
	for _, p := range pts {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(pts))
	return FaceCentroid{X: sx / n, Y: sy / n}
}

// DualGraphEdges returns one CentroidEdge per adjacent triangle pair in the
// final triangulation, for visualization (spec.md §6's DCEL::dual_graph).
func (d *DCEL) DualGraphEdges() []CentroidEdge {
	faces := d.InternalFaces()
	if len(faces) == 0 {
		return nil
	}
	external := d.getExternalFace()
	g := d.buildDualGraph(faces, external)

	centroid := make(map[Handle]FaceCentroid, len(faces))
	byID := make(map[string]Handle, len(faces))
	for _, f := range faces {
		centroid[f] = d.faceCentroid(f)
		byID[faceID(f)] = f
	}

	var ret []CentroidEdge
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		if err != nil {
			panic(fmt.Sprintf("geom: dual graph: %v", err))
		}
		for _, e := range nbs {
			if e.To <= id {
				continue
			}
			ret = append(ret, CentroidEdge{From: centroid[byID[id]], To: centroid[byID[e.To]]})
		}
	}
	return ret
}

// DualGraphIsTree reports whether the triangulation's dual graph is
// connected and has exactly len(faces)-1 edges: the acyclic-tree property
// spec.md §8 asserts of any triangulation's dual graph.
func (d *DCEL) DualGraphIsTree() bool {
	faces := d.InternalFaces()
	if len(faces) == 0 {
		return true
	}
	external := d.getExternalFace()
	g := d.buildDualGraph(faces, external)

	edgeCount := 0
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		if err != nil {
			panic(fmt.Sprintf("geom: dual graph: %v", err))
		}
		for _, e := range nbs {
			if e.To > id {
				edgeCount++
			}
		}
	}
	if edgeCount != len(faces)-1 {
		return false
	}

	res, err := dfs.DFS(g, faceID(faces[0]))
	if err != nil {
		return false
	}
	return len(res.Order) == len(faces)
}
