package generate

import (
	"math/rand"
	"testing"
)

func TestGenRandHardProducesRequestedVertexCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{3, 4, 8, 15} {
		sp, ok := GenRandHard(rnd, n, 50, 10000)
		if !ok {
			t.Fatalf("n=%d: failed to generate a polygon", n)
		}
		if got := sp.Len(); got != n {
			t.Errorf("n=%d: got %d vertices, want %d", n, got, n)
		}
	}
}

func TestGenRandHardRejectsTooFewVertices(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if _, ok := GenRandHard(rnd, 2, 50, 100); ok {
		t.Error("expected GenRandHard to reject a vertex count below 3")
	}
}

func TestEdgeBoundsFitsInsideCoordMax(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	sp, ok := GenRandHard(rnd, 10, 50, 10000)
	if !ok {
		t.Fatal("failed to generate a polygon")
	}
	bounds, ok := EdgeBounds(sp)
	if !ok {
		t.Fatal("EdgeBounds reported no extent for a non-empty polygon")
	}
	if bounds.MinX < 0 || bounds.MinY < 0 || bounds.MaxX >= 50 || bounds.MaxY >= 50 {
		t.Errorf("bounds %+v fall outside [0,50)", bounds)
	}
}

func TestGenRandHardIsDeterministicForAGivenSeed(t *testing.T) {
	rnd1 := rand.New(rand.NewSource(42))
	rnd2 := rand.New(rand.NewSource(42))

	sp1, ok1 := GenRandHard(rnd1, 10, 100, 10000)
	sp2, ok2 := GenRandHard(rnd2, 10, 100, 10000)
	if !ok1 || !ok2 {
		t.Fatal("expected both draws to succeed")
	}
	if sp1.String() != sp2.String() {
		t.Errorf("same seed produced different polygons:\n%s\nvs\n%s", sp1, sp2)
	}
}
