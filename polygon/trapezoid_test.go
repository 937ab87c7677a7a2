package polygon_test

import (
	"testing"

	"github.com/vertexguard/artgallery/polygon"
)

func countVertexTypes(p *polygon.SimplePolygon) (start, split, end, merge, regular int) {
	for i := 0; i < p.Len(); i++ {
		switch p.VertexTypeAt(i) {
		case polygon.Start:
			start++
		case polygon.Split:
			split++
		case polygon.End:
			end++
		case polygon.Merge:
			merge++
		default:
			regular++
		}
	}
	return
}

// expectTrapezoidCount checks the invariant from spec.md §8: the sweep
// produces exactly S - M - 1 trapezoids, where S and M are the number of
// Start and Merge vertices.
func expectTrapezoidCount(t *testing.T, coords ...int) {
	t.Helper()
	p := mustPolygon(t, coords...)
	start, _, _, merge, _ := countVertexTypes(p)
	want := start - merge - 1
	got := len(p.PartitionTrapezoid())
	if got != want {
		t.Errorf("got %d trapezoids, want %d (S=%d, M=%d)", got, want, start, merge)
	}
}

func TestPartitionTrapezoidCount(t *testing.T) {
	expectTrapezoidCount(t, triangle...)
	expectTrapezoidCount(t, convexSquare...)
	expectTrapezoidCount(t, comb...)
	expectTrapezoidCount(t, mountain...)
	expectTrapezoidCount(t, splitOnly...)
}

func TestPartitionTrapezoidConvexSquareIsOneRecord(t *testing.T) {
	p := mustPolygon(t, convexSquare...)
	got := p.PartitionTrapezoid()
	if len(got) != 1 {
		t.Fatalf("got %d trapezoids, want 1", len(got))
	}
}
