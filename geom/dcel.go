// Package geom builds a doubly-connected edge list over a triangulated
// simple polygon and derives its dual graph and 3-coloring. See
// SPEC_FULL.md §4.5-§4.7.
package geom

import (
	"fmt"
	"strings"

	"github.com/vertexguard/artgallery/polygon"
	"github.com/vertexguard/artgallery/primitives"
)

type dcelVertex struct {
	point        primitives.Point
	incidentEdge *Handle
}

type dcelEdge struct {
	origin       *Handle
	next         *Handle
	prev         *Handle
	twin         *Handle
	incidentFace *Handle
}

// dcelFace's outer is nil for exactly one face: the external (infinite)
// face, which bounds no polygon interior and is never returned by
// InternalFaces.
type dcelFace struct {
	outer *Handle
}

// DCEL is a doubly-connected edge list built from a simple polygon, whose
// internal faces are subdivided in place by AddInternalDiagonals.
type DCEL struct {
	vertices   *Arena[dcelVertex]
	edges      *Arena[dcelEdge]
	faces      *Arena[dcelFace]
	pointIndex map[primitives.Point]Handle
}

func ref(h Handle) *Handle { return &h }

// NewDCELFromPolygon builds the initial two-face DCEL of p: one internal
// face bounded by p's edges in their given (CCW) order, and the external
// face bounded by the same edges walked in reverse.
func NewDCELFromPolygon(p *polygon.SimplePolygon) *DCEL {
	points := p.Points()
	n := len(points)

	d := &DCEL{
		vertices:   NewArena[dcelVertex](),
		edges:      NewArena[dcelEdge](),
		faces:      NewArena[dcelFace](),
		pointIndex: make(map[primitives.Point]Handle, n),
	}

	inside := d.faces.Insert(dcelFace{})
	outside := d.faces.Insert(dcelFace{})

	vertexHandles := make([]Handle, n)
	edgeHandles := make([]Handle, n)
	for i, pt := range points {
		vertexHandles[i] = d.vertices.Insert(dcelVertex{point: pt})
		d.pointIndex[pt] = vertexHandles[i]
		edgeHandles[i] = d.edges.Insert(dcelEdge{})
	}

	for i := 0; i < n; i++ {
		nextIdx := (i + 1) % n
		prevIdx := (i - 1 + n) % n

		d.vertices.MustGet(vertexHandles[i]).incidentEdge = ref(edgeHandles[i])

		e := d.edges.MustGet(edgeHandles[i])
		e.origin = ref(vertexHandles[i])
		e.next = ref(edgeHandles[nextIdx])
		e.prev = ref(edgeHandles[prevIdx])
		e.incidentFace = ref(inside)
	}

	// The twin ring walks the same vertices in reverse, bounding the
	// external face.
	twinHandles := make([]Handle, n)
	for i := 0; i < n; i++ {
		originIdx := (i + 1) % n
		twinHandles[i] = d.edges.Insert(dcelEdge{
			origin:       ref(vertexHandles[originIdx]),
			twin:         ref(edgeHandles[i]),
			incidentFace: ref(outside),
		})
		d.edges.MustGet(edgeHandles[i]).twin = ref(twinHandles[i])
	}
	for i := 0; i < n; i++ {
		prevIdx := (i - 1 + n) % n
		nextIdx := (i + 1) % n
		te := d.edges.MustGet(twinHandles[i])
		te.next = ref(twinHandles[prevIdx])
		te.prev = ref(twinHandles[nextIdx])
	}

	d.faces.MustGet(inside).outer = ref(edgeHandles[0])
	// outside.outer stays nil: that is how the external face is recognized.

	return d
}

// getCommonFace finds a face whose boundary passes through both p1 and p2.
// Terribly inefficient (linear scan of every face, walking every boundary),
// but DCELs here have at most a few thousand faces and this only runs once
// per diagonal.
func (d *DCEL) getCommonFace(p1, p2 Handle) (Handle, bool) {
	if p1 == p2 {
		panic("geom: getCommonFace called with identical point handles")
	}

	var found Handle
	ok := false
	d.faces.Each(func(fh Handle, f *dcelFace) {
		if ok || f.outer == nil {
			return
		}
		start := *f.outer
		checkPts := func(e Handle) bool {
			origin := *d.edges.MustGet(e).origin
			return origin == p1 || origin == p2
		}

		count := 0
		if checkPts(start) {
			count++
		}
		curr := *d.edges.MustGet(start).next
		for curr != start {
			if checkPts(curr) {
				count++
			}
			if count == 2 {
				found, ok = fh, true
				return
			}
			curr = *d.edges.MustGet(curr).next
		}
	})
	return found, ok
}

// splitFace inserts the diagonal p1-p2 into the face they share, if any.
// Per spec.md §9's open question: if p1 and p2 are already edge-adjacent
// (their common face is a triangle), this is a no-op that still reports
// success, since the diagonal already exists.
func (d *DCEL) splitFace(p1, p2 Handle) bool {
	commonFace, ok := d.getCommonFace(p1, p2)
	if !ok {
		return false
	}
	start := *d.faces.MustGet(commonFace).outer

	var e1Next, e2Next Handle
	foundE1, foundE2 := false, false
	curr := start
	for {
		origin := *d.edges.MustGet(curr).origin
		if origin == p1 {
			e1Next, foundE1 = curr, true
		}
		if origin == p2 {
			e2Next, foundE2 = curr, true
		}
		if foundE1 && foundE2 {
			break
		}
		curr = *d.edges.MustGet(curr).next
		if curr == start {
			panic("geom: split diagonal endpoints not both found on their common face")
		}
	}

	if *d.edges.MustGet(e1Next).next == e2Next || *d.edges.MustGet(e2Next).next == e1Next {
		return true
	}

	if next2 := *d.edges.MustGet(*d.edges.MustGet(e1Next).next).next; next2 == e2Next {
		d.splitWithTriangle(*d.edges.MustGet(e1Next).next)
		return true
	}
	if next2 := *d.edges.MustGet(*d.edges.MustGet(e2Next).next).next; next2 == e1Next {
		d.splitWithTriangle(*d.edges.MustGet(e2Next).next)
		return true
	}

	e2Prev := *d.edges.MustGet(e1Next).prev
	e1Prev := *d.edges.MustGet(e2Next).prev

	e1 := d.edges.Insert(dcelEdge{origin: ref(p2), next: ref(e1Next), prev: ref(e1Prev)})
	e2 := d.edges.Insert(dcelEdge{origin: ref(p1), next: ref(e2Next), prev: ref(e2Prev)})
	d.edges.MustGet(e1).twin = ref(e2)
	d.edges.MustGet(e2).twin = ref(e1)

	f1 := d.faces.Insert(dcelFace{outer: ref(e1)})
	f2 := d.faces.Insert(dcelFace{outer: ref(e2)})

	d.edges.MustGet(e1Next).prev = ref(e1)
	d.edges.MustGet(e2Next).prev = ref(e2)
	d.edges.MustGet(e1Prev).next = ref(e1)
	d.edges.MustGet(e2Prev).next = ref(e2)

	d.relabelFace(e1, f1)
	d.relabelFace(e2, f2)

	d.faces.Remove(commonFace)
	return true
}

func (d *DCEL) relabelFace(start, face Handle) {
	curr := start
	for {
		d.edges.MustGet(curr).incidentFace = ref(face)
		curr = *d.edges.MustGet(curr).next
		if curr == start {
			break
		}
	}
}

// splitWithTriangle handles the case where the new diagonal's two endpoints
// are already separated by exactly one vertex along one of the two paths
// around the face: rather than cutting the face into two polygons, it
// carves off the single triangle formed with that intervening vertex.
// eInt is the edge whose destination is that intervening vertex.
func (d *DCEL) splitWithTriangle(eInt Handle) {
	ePrev := eInt
	eNext := *d.edges.MustGet(eInt).prev
	eTwinNext := *d.edges.MustGet(eInt).next
	eTwinPrev := *d.edges.MustGet(eNext).prev

	eOrig := *d.edges.MustGet(eTwinNext).origin
	eTwinOrig := *d.edges.MustGet(eNext).origin

	eNew := d.edges.Insert(dcelEdge{origin: ref(eOrig), next: ref(eNext), prev: ref(ePrev)})
	eNewTwin := d.edges.Insert(dcelEdge{origin: ref(eTwinOrig), next: ref(eTwinNext), prev: ref(eTwinPrev)})
	d.edges.MustGet(eNew).twin = ref(eNewTwin)
	d.edges.MustGet(eNewTwin).twin = ref(eNew)

	d.edges.MustGet(ePrev).next = ref(eNew)
	d.edges.MustGet(eNext).prev = ref(eNew)
	d.edges.MustGet(eTwinPrev).next = ref(eNewTwin)
	d.edges.MustGet(eTwinNext).prev = ref(eNewTwin)

	f := d.faces.Insert(dcelFace{outer: ref(eNew)})
	d.edges.MustGet(eNew).incidentFace = ref(f)
	d.edges.MustGet(eNext).incidentFace = ref(f)
	d.edges.MustGet(ePrev).incidentFace = ref(f)

	otherFace := *d.edges.MustGet(eTwinNext).incidentFace
	d.faces.MustGet(otherFace).outer = ref(eNewTwin)
	d.edges.MustGet(eNewTwin).incidentFace = ref(otherFace)
}

// AddInternalDiagonals inserts each diagonal into the face its two
// endpoints currently share. Calling this twice with the same diagonals is
// idempotent: the second pass finds each one already an edge and takes the
// no-op branch of splitFace (spec.md §8, scenario 6).
func (d *DCEL) AddInternalDiagonals(diagonals []primitives.DirEdge) {
	for _, e := range diagonals {
		p1, ok1 := d.pointIndex[e.Start]
		p2, ok2 := d.pointIndex[e.End]
		if !ok1 || !ok2 {
			panic(fmt.Sprintf("geom: diagonal endpoint %v or %v is not a polygon vertex", e.Start, e.End))
		}
		d.splitFace(p1, p2)
	}
}

func (d *DCEL) getExternalFace() Handle {
	var ret Handle
	found := false
	d.faces.Each(func(h Handle, f *dcelFace) {
		if f.outer == nil {
			ret, found = h, true
		}
	})
	if !found {
		panic("geom: no external face found")
	}
	return ret
}

// InternalFaces returns the handles of every bounded face.
func (d *DCEL) InternalFaces() []Handle {
	var ret []Handle
	d.faces.Each(func(h Handle, f *dcelFace) {
		if f.outer != nil {
			ret = append(ret, h)
		}
	})
	return ret
}

func (d *DCEL) pointHandleList(face Handle) []Handle {
	f := d.faces.MustGet(face)
	if f.outer == nil {
		panic("geom: pointHandleList called on the external face")
	}
	start := *f.outer
	var ret []Handle
	curr := start
	for {
		ret = append(ret, *d.edges.MustGet(curr).origin)
		curr = *d.edges.MustGet(curr).next
		if curr == start {
			break
		}
	}
	return ret
}

// FacePoints walks face's outer boundary via next, returning its vertices
// in order.
func (d *DCEL) FacePoints(face Handle) []primitives.Point {
	handles := d.pointHandleList(face)
	ret := make([]primitives.Point, len(handles))
	for i, h := range handles {
		ret[i] = d.vertices.MustGet(h).point
	}
	return ret
}

// FaceString renders face's boundary as a WKT-flavored "POLYGON((x y, ...))"
// string, matching SimplePolygon.String's convention (SPEC_FULL.md §6.1),
// for use in log output and test failures only.
func (d *DCEL) FaceString(face Handle) string {
	pts := d.FacePoints(face)
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	for i, pt := range pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	if len(pts) > 0 {
		sb.WriteString(", ")
		sb.WriteString(pts[0].String())
	}
	sb.WriteString("))")
	return sb.String()
}

// CheckConsistency panics if the DCEL's structural invariants do not hold:
// next/prev are mutual inverses, and every edge around a face agrees on
// incidentFace. Intended for tests, not runtime use.
func (d *DCEL) CheckConsistency() {
	d.edges.Each(func(h Handle, e *dcelEdge) {
		if got := *d.edges.MustGet(*e.prev).next; got != h {
			panic(fmt.Sprintf("geom: edge %v: next(prev(e)) = %v, want e", h, got))
		}
		if got := *d.edges.MustGet(*e.next).prev; got != h {
			panic(fmt.Sprintf("geom: edge %v: prev(next(e)) = %v, want e", h, got))
		}
	})
	d.faces.Each(func(fh Handle, f *dcelFace) {
		if f.outer == nil {
			return
		}
		start := *f.outer
		curr := start
		for {
			if got := *d.edges.MustGet(curr).incidentFace; got != fh {
				panic(fmt.Sprintf("geom: face %v: edge %v has incident face %v", fh, curr, got))
			}
			curr = *d.edges.MustGet(curr).next
			if curr == start {
				break
			}
		}
	})
}
