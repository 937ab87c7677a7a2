package generate

import (
	"math"

	"github.com/vertexguard/artgallery/polygon"
	"github.com/vertexguard/artgallery/primitives"
)

// RegularPolygon builds the regular polygon circumscribed by a circle with
// the given center and radius, rounded to the nearest integer grid point.
// sides must be at least 3 or it panics. Rounding can collapse two vertices
// of a fine-grained regular polygon onto the same grid point, or leave three
// consecutive vertices collinear; either case is reported as an error rather
// than silently producing a degenerate ring, since the caller is expected to
// pick a radius large enough for the requested side count.
func RegularPolygon(center primitives.Point, radius float64, sides int) (*polygon.SimplePolygon, error) {
	if sides <= 2 {
		panic(sides)
	}
	points := make([]primitives.Point, sides)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		points[i] = primitives.NewPoint(
			center.X+int(math.Round(math.Cos(angle)*radius)),
			center.Y+int(math.Round(math.Sin(angle)*radius)),
		)
	}
	return polygon.NewSimplePolygon(points)
}
