package polygon_test

import "testing"

func TestPartitionMonotoneEmptyForAlreadyMonotonePolygons(t *testing.T) {
	for _, coords := range [][]int{triangle, convexSquare, mountain} {
		p := mustPolygon(t, coords...)
		if got := p.PartitionMonotone(); len(got) != 0 {
			t.Errorf("coords %v: got %d diagonals, want 0", coords, len(got))
		}
	}
}

func TestPartitionMonotoneCombProducesDiagonals(t *testing.T) {
	p := mustPolygon(t, comb...)
	got := p.PartitionMonotone()
	if len(got) < 1 {
		t.Fatalf("got %d diagonals, want at least 1", len(got))
	}
}

func TestPartitionMonotoneSplitOnlyProducesAtLeastTwoDiagonals(t *testing.T) {
	p := mustPolygon(t, splitOnly...)
	got := p.PartitionMonotone()
	if len(got) < 2 {
		t.Fatalf("got %d diagonals, want at least 2", len(got))
	}
}
