package primitives_test

import (
	"testing"

	"github.com/vertexguard/artgallery/primitives"
)

func expectBoolEq(t *testing.T, got, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("\ngot:  %t\nwant: %t\n", got, want)
	}
}

func TestIntersects(t *testing.T) {
	tester := func(pts [8]int, want bool) {
		t.Helper()
		p1 := primitives.NewPoint(pts[0], pts[1])
		q1 := primitives.NewPoint(pts[2], pts[3])
		p2 := primitives.NewPoint(pts[4], pts[5])
		q2 := primitives.NewPoint(pts[6], pts[7])
		e1 := primitives.NewDirEdge(p1, q1)
		e2 := primitives.NewDirEdge(p2, q2)

		expectBoolEq(t, e1.Intersects(e2), want)
		expectBoolEq(t, e2.Intersects(e1), want)
	}

	tester([8]int{0, 0, 1, 2, 1, 0, 2, 2}, false)
	tester([8]int{10, 0, 0, 10, 0, 0, 10, 10}, true)
	tester([8]int{-5, -5, 0, 0, 1, 1, 10, 10}, false)
	tester([8]int{0, 0, 100, 0, 0, 0, 1, 1}, true)
	tester([8]int{0, 0, 100, 0, 50, 0, 1, 1}, true)
}

func TestHigherThan(t *testing.T) {
	a := primitives.NewPoint(0, 1)
	b := primitives.NewPoint(5, 1)
	c := primitives.NewPoint(0, 0)

	expectBoolEq(t, b.HigherThan(a), true)
	expectBoolEq(t, a.HigherThan(b), false)
	expectBoolEq(t, a.HigherThan(c), true)
}

func TestHigherThanPanicsOnSamePoint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling HigherThan on identical points")
		}
	}()
	p := primitives.NewPoint(3, 3)
	p.HigherThan(p)
}

func TestOrientationOf(t *testing.T) {
	p := primitives.NewPoint(0, 0)
	q := primitives.NewPoint(4, 0)
	r := primitives.NewPoint(2, 3)
	if got := primitives.OrientationOf(p, q, r); got != primitives.Counterclockwise {
		t.Errorf("got: %v want: %v", got, primitives.Counterclockwise)
	}
	if got := primitives.OrientationOf(p, r, q); got != primitives.Clockwise {
		t.Errorf("got: %v want: %v", got, primitives.Clockwise)
	}
	mid := primitives.NewPoint(2, 0)
	if got := primitives.OrientationOf(p, mid, q); got != primitives.Collinear {
		t.Errorf("got: %v want: %v", got, primitives.Collinear)
	}
}
