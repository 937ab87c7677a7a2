package generate

import (
	"testing"

	"github.com/vertexguard/artgallery/primitives"
)

func TestRegularPolygonVertexCount(t *testing.T) {
	sp, err := RegularPolygon(primitives.NewPoint(0, 0), 100, 8)
	if err != nil {
		t.Fatalf("RegularPolygon: %v", err)
	}
	if got := sp.Len(); got != 8 {
		t.Errorf("got %d vertices, want 8", got)
	}
}

func TestRegularPolygonPanicsOnTooFewSides(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for sides <= 2")
		}
	}()
	RegularPolygon(primitives.NewPoint(0, 0), 10, 2)
}
