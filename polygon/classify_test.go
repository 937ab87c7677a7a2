package polygon_test

import (
	"testing"

	"github.com/vertexguard/artgallery/polygon"
)

func TestVertexTypeAtConvexSquare(t *testing.T) {
	p := mustPolygon(t, convexSquare...)

	counts := map[polygon.VertexType]int{}
	for i := 0; i < p.Len(); i++ {
		counts[p.VertexTypeAt(i)]++
	}

	if counts[polygon.Start] != 1 {
		t.Errorf("got %d Start vertices, want 1", counts[polygon.Start])
	}
	if counts[polygon.Regular] != 2 {
		t.Errorf("got %d Regular vertices, want 2", counts[polygon.Regular])
	}
	if counts[polygon.End] != 1 {
		t.Errorf("got %d End vertices, want 1", counts[polygon.End])
	}
	if counts[polygon.Split] != 0 || counts[polygon.Merge] != 0 {
		t.Errorf("convex square should have no Split/Merge vertices, got %v", counts)
	}
}

func TestVertexTypeAtCombHasSplitAndMerge(t *testing.T) {
	p := mustPolygon(t, comb...)

	splitPt := wantIndex(t, p, 3, 2)
	mergePt := wantIndex(t, p, 5, 2)

	if got := p.VertexTypeAt(splitPt); got != polygon.Split {
		t.Errorf("(3,2) classified as %v, want Split", got)
	}
	if got := p.VertexTypeAt(mergePt); got != polygon.Merge {
		t.Errorf("(5,2) classified as %v, want Merge", got)
	}
}

func wantIndex(t *testing.T, p *polygon.SimplePolygon, x, y int) int {
	t.Helper()
	for i, q := range p.Points() {
		if q.X == x && q.Y == y {
			return i
		}
	}
	t.Fatalf("point (%d,%d) not found in polygon", x, y)
	return -1
}
