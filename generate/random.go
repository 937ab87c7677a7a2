// Package generate produces random simple polygons for exercising the
// triangulation pipeline, grounded on the source's SimplePolygon::gen_rand_hard
// rejection sampler (original_source/src/polygon.rs).
package generate

import (
	"math/rand"

	"github.com/vertexguard/artgallery/polygon"
	"github.com/vertexguard/artgallery/primitives"
	"github.com/vertexguard/artgallery/rtree"
)

// GenRandHard draws a random simple polygon with vertexCount vertices and
// integer coordinates in [0, coordMax). Vertices are added one at a time; a
// candidate is rejected whenever the edge it would close intersects an
// already-placed edge. It retries up to retryCount times before reporting
// failure, since most draws for larger vertex counts end up self-intersecting.
func GenRandHard(rnd *rand.Rand, vertexCount, coordMax, retryCount int) (*polygon.SimplePolygon, bool) {
	if vertexCount < 3 {
		return nil, false
	}
	for i := 0; i < retryCount; i++ {
		if sp, ok := attemptRandHard(rnd, vertexCount, coordMax); ok {
			return sp, true
		}
	}
	return nil, false
}

// edgeIndex tracks the polygon's edges-so-far in an RTree, so a candidate
// edge only needs to be tested against the edges whose boxes it actually
// overlaps rather than every edge drawn so far.
type edgeIndex struct {
	edges []primitives.DirEdge
	tree  rtree.RTree
}

func (ix *edgeIndex) add(e primitives.DirEdge) {
	id := len(ix.edges)
	ix.edges = append(ix.edges, e)
	ix.tree.Insert(edgeBox(e), id)
}

// intersectsExcept reports whether candidate intersects any indexed edge
// whose id is not in skip (typically the edge(s) sharing an endpoint with
// candidate, which are never real intersections).
func (ix *edgeIndex) intersectsExcept(candidate primitives.DirEdge, skip map[int]bool) bool {
	hit := false
	_ = ix.tree.RangeSearch(edgeBox(candidate), func(id int) error {
		if skip[id] {
			return nil
		}
		if candidate.Intersects(ix.edges[id]) {
			hit = true
			return rtree.Stop
		}
		return nil
	})
	return hit
}

func edgeBox(e primitives.DirEdge) rtree.Box {
	return rtree.Box{
		MinX: min(e.Start.X, e.End.X),
		MinY: min(e.Start.Y, e.End.Y),
		MaxX: max(e.Start.X, e.End.X),
		MaxY: max(e.Start.Y, e.End.Y),
	}
}

// EdgeBounds returns the bounding box of sp's edges, built the same way
// attemptRandHard's rejection sampler indexes edges during generation. It
// gives the driver a cheap summary of a generated polygon's extent without
// it having to walk every vertex itself.
func EdgeBounds(sp *polygon.SimplePolygon) (rtree.Box, bool) {
	ix := &edgeIndex{}
	pts := sp.Points()
	for i := range pts {
		ix.add(primitives.NewDirEdge(pts[i], pts[(i+1)%len(pts)]))
	}
	return ix.tree.Extent()
}

func genRandPoint(rnd *rand.Rand, coordMax int) primitives.Point {
	return primitives.NewPoint(rnd.Intn(coordMax), rnd.Intn(coordMax))
}

// attemptRandHard makes a single draw of vertexCount vertices, rejecting the
// whole attempt (by returning ok=false) as soon as a closing edge can't be
// placed without crossing an earlier one, or the finished ring fails
// SimplePolygon's invariants (duplicate or collinear vertices).
func attemptRandHard(rnd *rand.Rand, vertexCount, coordMax int) (*polygon.SimplePolygon, bool) {
	points := make([]primitives.Point, 0, vertexCount)
	ix := &edgeIndex{}

	p1 := genRandPoint(rnd, coordMax)
	var p2 primitives.Point
	for {
		p2 = genRandPoint(rnd, coordMax)
		if p2 != p1 {
			break
		}
	}
	points = append(points, p1, p2)
	ix.add(primitives.NewDirEdge(p1, p2))

	for idx := 2; idx < vertexCount; idx++ {
		p, ok := nextVertex(rnd, coordMax, points, ix)
		if !ok {
			return nil, false
		}
		points = append(points, p)
		ix.add(primitives.NewDirEdge(points[idx-1], p))
	}

	closing := primitives.NewDirEdge(points[len(points)-1], points[0])
	skip := map[int]bool{0: true, len(ix.edges) - 1: true}
	if ix.intersectsExcept(closing, skip) {
		return nil, false
	}

	sp, err := polygon.NewSimplePolygon(points)
	if err != nil {
		return nil, false
	}
	return sp, true
}

// nextVertex draws candidates until one produces a leading edge (from the
// candidate back to the most recently placed vertex) that doesn't cross any
// edge placed so far, other than the one it shares an endpoint with.
func nextVertex(rnd *rand.Rand, coordMax int, points []primitives.Point, ix *edgeIndex) (primitives.Point, bool) {
	const maxAttempts = 10000
	prev := points[len(points)-2]
	last := points[len(points)-1]
	skip := map[int]bool{len(ix.edges) - 1: true}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cand := genRandPoint(rnd, coordMax)
		if cand == prev || cand == last {
			continue
		}
		leading := primitives.NewDirEdge(cand, last)
		if ix.intersectsExcept(leading, skip) {
			continue
		}
		return cand, true
	}
	return primitives.Point{}, false
}
