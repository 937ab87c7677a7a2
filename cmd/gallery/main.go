// Command gallery builds a random polygon, triangulates it, and reports an
// Art Gallery theorem guard placement for it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/vertexguard/artgallery/generate"
	"github.com/vertexguard/artgallery/geom"
	"github.com/vertexguard/artgallery/polygon"
	"github.com/vertexguard/artgallery/primitives"
)

func main() {
	seed := flag.Int64("seed", 0, "seed (0 will cause the current unix nano epoch to be used)")
	vertexCount := flag.Int("n", 12, "number of polygon vertices")
	coordMax := flag.Int("coord-max", 100, "vertex coordinates are drawn from [0, coord-max)")
	retries := flag.Int("retries", 10000, "rejection-sampling retry budget")
	flag.Parse()

	if args := flag.Args(); len(args) == 1 {
		if _, err := fmt.Sscanf(args[0], "%d", vertexCount); err != nil {
			log.Fatalf("invalid vertex count %q", args[0])
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", *seed)
	rnd := rand.New(rand.NewSource(*seed))

	sp, ok := generate.GenRandHard(rnd, *vertexCount, *coordMax, *retries)
	if !ok {
		log.Fatalf("failed to generate a simple polygon with %d vertices after %d retries", *vertexCount, *retries)
	}
	log.Printf("generated polygon: %s", sp)
	if bounds, ok := generate.EdgeBounds(sp); ok {
		log.Printf("edge bounds: [%d,%d]-[%d,%d]", bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}

	d := triangulate(sp)

	coloring := d.ThreeColor()
	guards := smallestColorClass(coloring)

	faces := d.InternalFaces()
	log.Printf("faces: %d, dual graph is tree: %t", len(faces), d.DualGraphIsTree())
	for _, f := range faces {
		log.Printf("  %s", d.FaceString(f))
	}
	log.Printf("guard set (%d of %d vertices, bound n/3 = %d):", len(guards), sp.Len(), sp.Len()/3)
	for _, p := range guards {
		fmt.Println(p)
	}
}

// triangulate runs the full pipeline: trapezoidalize and monotone-partition
// the polygon into the DCEL, then triangulate each resulting monotone face.
func triangulate(sp *polygon.SimplePolygon) *geom.DCEL {
	d := geom.NewDCELFromPolygon(sp)
	d.AddInternalDiagonals(sp.PartitionMonotone())

	for _, f := range d.InternalFaces() {
		monoPoly, err := polygon.NewSimplePolygon(d.FacePoints(f))
		if err != nil {
			log.Fatalf("monotone face is not a valid polygon: %v", err)
		}
		d.AddInternalDiagonals(monoPoly.TriangulateMonotone())
	}
	return d
}

func smallestColorClass(coloring map[primitives.Point]int) []primitives.Point {
	byColor := map[int][]primitives.Point{}
	for p, c := range coloring {
		byColor[c] = append(byColor[c], p)
	}
	var best []primitives.Point
	for _, pts := range byColor {
		if best == nil || len(pts) < len(best) {
			best = pts
		}
	}
	return best
}
