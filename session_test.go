package shapesum

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestSessionClickSnapsAndCommits(t *testing.T) {
	sess := NewSession() // point tool, square lattice
	if !sess.Click(SlotLeft, 412, 307) {
		t.Fatal("point click did not change the shape")
	}
	got := sess.Shape(SlotLeft).Primitives()
	if len(got) != 1 {
		t.Fatalf("left slot has %d primitives, want 1", len(got))
	}
	if p := got[0].(Point); p.X != 400 || p.Y != 300 {
		t.Errorf("committed %+v, want snapped Point(400,300)", p)
	}
}

func TestSessionEraserRoutesToShape(t *testing.T) {
	sess := NewSession()
	sess.Click(SlotLeft, 400, 300)

	sess.SetTool(ToolEraser)
	// A nearby click snaps to the same lattice point, so the exact-match
	// erase finds the committed point.
	if !sess.Click(SlotLeft, 395, 305) {
		t.Fatal("eraser click removed nothing")
	}
	if sess.Shape(SlotLeft).Len() != 0 {
		t.Errorf("left slot has %d primitives after erase, want 0", sess.Shape(SlotLeft).Len())
	}
}

func TestSessionGridToolTouchesNoShape(t *testing.T) {
	sess := NewSession(WithTool(ToolGrid))
	if sess.Click(SlotLeft, 400, 300) {
		t.Error("grid-selection click changed a shape")
	}
	sess.SetLattice(SlotLeft, LatticeTriangleFine)
	if sess.Lattice(SlotLeft) != LatticeTriangleFine {
		t.Error("lattice selection not recorded")
	}
	if sess.Lattice(SlotRight) != LatticeSquare {
		t.Error("lattice selection leaked to another slot")
	}
}

func TestSessionToolChangeDiscardsAccumulator(t *testing.T) {
	sess := NewSession(WithTool(ToolLine))
	sess.Click(SlotLeft, 100, 100)
	if !sess.Accumulating() {
		t.Fatal("line click did not start accumulating")
	}
	sess.SetTool(ToolPoint)
	if sess.Accumulating() {
		t.Error("accumulator survived tool change")
	}
}

func TestSessionLineAcrossClicks(t *testing.T) {
	sess := NewSession(WithTool(ToolLine), WithLattice(LatticeSquareFine))
	sess.Click(SlotRight, 348, 301)
	if !sess.Click(SlotRight, 452, 299) {
		t.Fatal("second line click did not commit")
	}
	got := sess.Shape(SlotRight).Primitives()[0].(Line)
	want := Line{X1: 350, Y1: 300, X2: 450, Y2: 300}
	if got != want {
		t.Errorf("committed %+v, want %+v", got, want)
	}
	if pts := sess.Accumulated(); pts != nil {
		t.Errorf("Accumulated after commit = %v, want nil", pts)
	}
}

func TestSessionLoadLevelClearsSlots(t *testing.T) {
	sess := NewSession()
	sess.Click(SlotLeft, 400, 300)
	sess.SetTool(ToolLine)
	sess.Click(SlotRight, 100, 100)

	target := NewPreCentered().AddCircle(0, 0, 40)
	sess.LoadLevel(target)

	for _, slot := range []Slot{SlotLeft, SlotRight, SlotResult} {
		if sess.Shape(slot).Len() != 0 {
			t.Errorf("%v slot not cleared on level load", slot)
		}
	}
	if sess.Accumulating() {
		t.Error("accumulator survived level load")
	}
	if sess.Target().Len() != 1 {
		t.Errorf("target has %d primitives, want 1", sess.Target().Len())
	}
}

func TestSessionSlotsReused(t *testing.T) {
	sess := NewSession()
	before := sess.Shape(SlotLeft)
	sess.LoadLevel(NewPreCentered())
	if sess.Shape(SlotLeft) != before {
		t.Error("slot shape reallocated on level load")
	}
}

func TestSessionSolved(t *testing.T) {
	target := NewPreCentered().AddPoint(0, 0)
	sess := NewSession(WithTarget(target))

	if sess.Solved() {
		t.Fatal("empty slots solved a point target")
	}
	sess.Click(SlotLeft, 400, 300)
	sess.Click(SlotRight, 400, 300)
	if !sess.Solved() {
		t.Error("center point + center point did not solve a point target")
	}
}

func TestSessionRender(t *testing.T) {
	sess := NewSession(WithTarget(NewPreCentered().AddPoint(0, 0)))
	sess.Click(SlotLeft, 400, 300)
	sess.Click(SlotRight, 400, 300)

	lpm := gg.NewPixmap(100, 100)
	lc := gg.NewContext(100, 100, gg.WithPixmap(lpm))
	rc := gg.NewContext(100, 100)
	spm := gg.NewPixmap(100, 100)
	sc := gg.NewContext(100, 100, gg.WithPixmap(spm))

	sess.Render(lc, rc, sc, gg.Blue)

	if classify(lpm).Count() == 0 {
		t.Error("left surface empty after render")
	}
	if !classify(spm).At(50, 50) {
		t.Error("sum surface missing the centered composition")
	}
}

func TestSessionSurfaceSizeAffectsSnapping(t *testing.T) {
	sess := NewSession(WithSurfaceSize(400, 300))
	sess.Click(SlotLeft, 201, 151)
	p := sess.Shape(SlotLeft).Primitives()[0].(Point)
	if p.X != 200 || p.Y != 150 {
		t.Errorf("snapped to (%g,%g), want surface-centered (200,150)", p.X, p.Y)
	}
}

func TestThumbnailSize(t *testing.T) {
	s := NewShape().AddCircle(400, 300, 60)
	img := Thumbnail(s, 80, 60, gg.Black)
	b := img.Bounds()
	if b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("thumbnail size = %dx%d, want 80x60", b.Dx(), b.Dy())
	}
}
