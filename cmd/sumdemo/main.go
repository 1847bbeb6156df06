// Command sumdemo renders a worked shape-composition level with the
// shapesum engine: two operand shapes, their additive composition, and
// the verdict against a target.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/shapesum"
)

func main() {
	var (
		width  = flag.Int("width", 800, "surface width")
		height = flag.Int("height", 600, "surface height")
		prefix = flag.String("prefix", "sumdemo", "output file prefix")
	)
	flag.Parse()

	// Target: the sweep of a diamond along a horizontal line, authored
	// around the surface center.
	target := shapesum.NewPreCentered().AddPolygon([]gg.Point{
		{X: -100, Y: 0}, {X: -50, Y: -50}, {X: 50, Y: -50},
		{X: 100, Y: 0}, {X: 50, Y: 50}, {X: -50, Y: 50},
	})

	sess := shapesum.NewSession(
		shapesum.WithSurfaceSize(*width, *height),
		shapesum.WithLattice(shapesum.LatticeSquareFine),
		shapesum.WithTarget(target),
	)

	// Left operand: a short horizontal line built from two clicks.
	sess.SetTool(shapesum.ToolLine)
	sess.Click(shapesum.SlotLeft, 352, 298)
	sess.Click(shapesum.SlotLeft, 448, 302)

	// Right operand: a diamond built vertex by vertex, closed by
	// re-clicking the first vertex.
	sess.SetTool(shapesum.ToolPolygon)
	for _, c := range [][2]float64{
		{400, 250}, {450, 300}, {400, 350}, {350, 300}, {400, 250},
	} {
		sess.Click(shapesum.SlotRight, c[0], c[1])
	}

	lc := gg.NewContext(*width, *height)
	rc := gg.NewContext(*width, *height)
	sc := gg.NewContext(*width, *height)
	sess.Render(lc, rc, sc, gg.RGB(0.15, 0.35, 0.8))

	tc := gg.NewContext(*width, *height)
	target.DrawCentered(tc, shapesum.Display, gg.RGB(0.8, 0.25, 0.15))

	save(lc, *prefix+"_left.png")
	save(rc, *prefix+"_right.png")
	save(sc, *prefix+"_sum.png")
	save(tc, *prefix+"_target.png")

	log.Printf("left=%d right=%d primitives, solved=%v",
		sess.Shape(shapesum.SlotLeft).Len(),
		sess.Shape(shapesum.SlotRight).Len(),
		sess.Solved())
}

func save(dc *gg.Context, path string) {
	if err := dc.SavePNG(path); err != nil {
		log.Fatalf("Failed to save %s: %v", path, err)
	}
	log.Printf("Saved %s", path)
}
