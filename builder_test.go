package shapesum

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestBuilderPointCommitsImmediately(t *testing.T) {
	b := NewBuilder()
	prim, ok := b.HandleClick(SlotLeft, ToolPoint, gg.Pt(50, 100))
	if !ok {
		t.Fatal("point click did not commit")
	}
	if got := prim.(Point); got.X != 50 || got.Y != 100 {
		t.Errorf("committed %+v, want Point(50,100)", got)
	}
	if b.IsAccumulating() {
		t.Error("builder accumulating after point commit")
	}
}

func TestBuilderLineTwoClicks(t *testing.T) {
	b := NewBuilder()
	if _, ok := b.HandleClick(SlotLeft, ToolLine, gg.Pt(0, 0)); ok {
		t.Fatal("first line click committed")
	}
	if !b.IsAccumulating() {
		t.Error("builder not accumulating after first line click")
	}
	prim, ok := b.HandleClick(SlotLeft, ToolLine, gg.Pt(30, 40))
	if !ok {
		t.Fatal("second line click did not commit")
	}
	want := Line{X1: 0, Y1: 0, X2: 30, Y2: 40}
	if prim.(Line) != want {
		t.Errorf("committed %+v, want %+v", prim, want)
	}
	if b.IsAccumulating() {
		t.Error("builder accumulating after commit")
	}
}

func TestBuilderLineDegenerateAccepted(t *testing.T) {
	// Clicking the same point twice commits a zero-length line.
	b := NewBuilder()
	b.HandleClick(SlotLeft, ToolLine, gg.Pt(25, 25))
	prim, ok := b.HandleClick(SlotLeft, ToolLine, gg.Pt(25, 25))
	if !ok {
		t.Fatal("degenerate line not committed")
	}
	want := Line{X1: 25, Y1: 25, X2: 25, Y2: 25}
	if prim.(Line) != want {
		t.Errorf("committed %+v, want %+v", prim, want)
	}
}

func TestBuilderCircleRadiusFromDistance(t *testing.T) {
	b := NewBuilder()
	b.HandleClick(SlotRight, ToolCircle, gg.Pt(10, 10))
	prim, ok := b.HandleClick(SlotRight, ToolCircle, gg.Pt(13, 14))
	if !ok {
		t.Fatal("second circle click did not commit")
	}
	got := prim.(Circle)
	if got.CX != 10 || got.CY != 10 || got.R != 5 {
		t.Errorf("committed %+v, want center (10,10) radius 5", got)
	}
}

func TestBuilderSlotSwitchDiscardsPending(t *testing.T) {
	b := NewBuilder()
	b.HandleClick(SlotLeft, ToolLine, gg.Pt(1, 1))

	// A click on another slot discards the pending point and pends there.
	if _, ok := b.HandleClick(SlotRight, ToolLine, gg.Pt(2, 2)); ok {
		t.Fatal("slot switch click committed")
	}
	prim, ok := b.HandleClick(SlotRight, ToolLine, gg.Pt(9, 9))
	if !ok {
		t.Fatal("second click on new slot did not commit")
	}
	want := Line{X1: 2, Y1: 2, X2: 9, Y2: 9}
	if prim.(Line) != want {
		t.Errorf("committed %+v, want %+v (old slot's point discarded)", prim, want)
	}
}

func TestBuilderPolygonCloseOnFirstVertex(t *testing.T) {
	b := NewBuilder()
	p1, p2, p3 := gg.Pt(0, 0), gg.Pt(50, 0), gg.Pt(50, 50)
	for _, p := range []gg.Point{p1, p2, p3} {
		if _, ok := b.HandleClick(SlotLeft, ToolPolygon, p); ok {
			t.Fatal("vertex click committed early")
		}
	}
	prim, ok := b.HandleClick(SlotLeft, ToolPolygon, p1)
	if !ok {
		t.Fatal("closing click did not commit")
	}
	got := prim.(Polygon)
	if len(got.Points) != 3 || got.Points[0] != p1 || got.Points[1] != p2 || got.Points[2] != p3 {
		t.Errorf("committed vertices %v, want [%v %v %v]", got.Points, p1, p2, p3)
	}
	if b.IsAccumulating() {
		t.Error("builder accumulating after polygon commit")
	}
}

func TestBuilderPolygonVertexUndo(t *testing.T) {
	b := NewBuilder()
	p1, p2, p3 := gg.Pt(0, 0), gg.Pt(50, 0), gg.Pt(50, 50)
	b.HandleClick(SlotLeft, ToolPolygon, p1)
	b.HandleClick(SlotLeft, ToolPolygon, p2)
	b.HandleClick(SlotLeft, ToolPolygon, p3)

	// Re-clicking a non-first vertex removes it.
	if _, ok := b.HandleClick(SlotLeft, ToolPolygon, p2); ok {
		t.Fatal("undo click committed")
	}
	got := b.Accumulated()
	if len(got) != 2 || got[0] != p1 || got[1] != p3 {
		t.Errorf("accumulator after undo = %v, want [%v %v]", got, p1, p3)
	}

	prim, ok := b.HandleClick(SlotLeft, ToolPolygon, p1)
	if !ok {
		t.Fatal("closing click did not commit")
	}
	if n := len(prim.(Polygon).Points); n != 2 {
		t.Errorf("committed %d vertices, want 2", n)
	}
}

func TestBuilderPolygonSlotSwitchRestarts(t *testing.T) {
	b := NewBuilder()
	b.HandleClick(SlotLeft, ToolPolygon, gg.Pt(0, 0))
	b.HandleClick(SlotLeft, ToolPolygon, gg.Pt(10, 0))
	b.HandleClick(SlotRight, ToolPolygon, gg.Pt(5, 5))

	got := b.Accumulated()
	if len(got) != 1 || got[0] != gg.Pt(5, 5) {
		t.Errorf("accumulator after slot switch = %v, want [(5,5)]", got)
	}
}

func TestBuilderToolChangeDiscards(t *testing.T) {
	b := NewBuilder()
	b.HandleClick(SlotLeft, ToolPolygon, gg.Pt(0, 0))
	b.HandleClick(SlotLeft, ToolPolygon, gg.Pt(10, 0))
	b.HandleToolChange(ToolLine)
	if b.IsAccumulating() {
		t.Error("accumulator survived tool change")
	}
	if b.Accumulated() != nil {
		t.Errorf("Accumulated = %v, want nil", b.Accumulated())
	}
}

func TestBuilderEraserAndGridNeverCommit(t *testing.T) {
	b := NewBuilder()
	for _, tool := range []Tool{ToolEraser, ToolGrid} {
		if _, ok := b.HandleClick(SlotLeft, tool, gg.Pt(1, 1)); ok {
			t.Errorf("%v click committed a primitive", tool)
		}
		if b.IsAccumulating() {
			t.Errorf("%v click left an accumulator", tool)
		}
	}
}

func TestNewPolygonEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("zero-vertex polygon commit did not panic")
		}
	}()
	newPolygon(nil)
}

func TestToolAndSlotStrings(t *testing.T) {
	if ToolPolygon.String() != "Polygon" || SlotResult.String() != "Result" {
		t.Errorf("names wrong: %v %v", ToolPolygon, SlotResult)
	}
}
