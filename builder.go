package shapesum

import (
	"math"

	"github.com/gogpu/gg"
)

// Tool is the active construction tool.
type Tool int

const (
	// ToolPoint commits a point on every click.
	ToolPoint Tool = iota

	// ToolLine commits a line on the second click of a pair.
	ToolLine

	// ToolCircle commits a circle centered on the first click, with
	// radius the distance to the second.
	ToolCircle

	// ToolPolygon accumulates vertices; clicking the first vertex again
	// commits, clicking a later vertex removes it.
	ToolPolygon

	// ToolEraser erases primitives at the clicked coordinate.
	ToolEraser

	// ToolGrid selects the active lattice; clicks never touch a shape.
	ToolGrid
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPoint:
		return "Point"
	case ToolLine:
		return "Line"
	case ToolCircle:
		return "Circle"
	case ToolPolygon:
		return "Polygon"
	case ToolEraser:
		return "Eraser"
	case ToolGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// Slot identifies one of the three concurrent editable shapes.
type Slot int

const (
	// SlotLeft is the first operand of the composition.
	SlotLeft Slot = iota

	// SlotRight is the second operand.
	SlotRight

	// SlotResult holds the composed sum.
	SlotResult
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "Left"
	case SlotRight:
		return "Right"
	case SlotResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// builderState is the in-progress accumulator of the builder.
// This is a sealed interface - only types in this package implement it.
type builderState interface {
	builderStateMarker()
}

// stateIdle means no primitive is in progress.
type stateIdle struct{}

// statePending holds the first click of a line or circle.
type statePending struct {
	slot Slot
	pt   gg.Point
}

// stateAccumulating holds the committed vertices of an in-progress
// polygon, in click order.
type stateAccumulating struct {
	slot Slot
	pts  []gg.Point
}

func (stateIdle) builderStateMarker()         {}
func (statePending) builderStateMarker()      {}
func (stateAccumulating) builderStateMarker() {}

// click is one builder input event: a snapped coordinate on a slot with
// the active tool.
type click struct {
	slot Slot
	tool Tool
	pt   gg.Point
}

// step is the pure transition function of the builder state machine. It
// maps the current state and a click to the next state and, when a
// primitive was completed, the committed primitive. It touches no shape
// and no surface, so it is testable on its own.
func step(st builderState, ev click) (builderState, Primitive, bool) {
	switch ev.tool {
	case ToolPoint:
		return stateIdle{}, Point{X: ev.pt.X, Y: ev.pt.Y}, true

	case ToolLine, ToolCircle:
		p, ok := st.(statePending)
		if !ok || p.slot != ev.slot {
			// First click, or a click on a different slot: any unrelated
			// pending point is discarded.
			return statePending{slot: ev.slot, pt: ev.pt}, nil, false
		}
		if ev.tool == ToolLine {
			return stateIdle{}, Line{X1: p.pt.X, Y1: p.pt.Y, X2: ev.pt.X, Y2: ev.pt.Y}, true
		}
		r := math.Hypot(ev.pt.X-p.pt.X, ev.pt.Y-p.pt.Y)
		return stateIdle{}, Circle{CX: p.pt.X, CY: p.pt.Y, R: r}, true

	case ToolPolygon:
		a, ok := st.(stateAccumulating)
		if !ok || a.slot != ev.slot {
			return stateAccumulating{slot: ev.slot, pts: []gg.Point{ev.pt}}, nil, false
		}
		for i, q := range a.pts {
			if q != ev.pt {
				continue
			}
			if i == 0 {
				return stateIdle{}, newPolygon(a.pts), true
			}
			// Click on a later vertex undoes it.
			pts := append(a.pts[:i:i], a.pts[i+1:]...)
			return stateAccumulating{slot: a.slot, pts: pts}, nil, false
		}
		return stateAccumulating{slot: a.slot, pts: append(a.pts, ev.pt)}, nil, false

	default:
		// Eraser and grid selection carry no accumulator.
		return stateIdle{}, nil, false
	}
}

// newPolygon builds the committed polygon. An empty vertex list cannot be
// produced by the transition rules; committing one is an invariant
// violation, not user input.
func newPolygon(pts []gg.Point) Polygon {
	if len(pts) == 0 {
		panic("shapesum: committing polygon with zero vertices")
	}
	out := make([]gg.Point, len(pts))
	copy(out, pts)
	return Polygon{Points: out}
}

// Builder turns a sequence of snapped clicks into committed primitives.
// It holds only the in-progress accumulator; committed primitives belong
// to whatever shape the caller appends them to. The zero Builder is not
// ready; use NewBuilder.
type Builder struct {
	state builderState
}

// NewBuilder creates an idle builder.
func NewBuilder() *Builder {
	return &Builder{state: stateIdle{}}
}

// HandleClick feeds one snapped click to the state machine and returns
// the committed primitive, if the click completed one. Eraser and grid
// clicks never commit; routing them to a shape or a lattice setting is
// the caller's job.
func (b *Builder) HandleClick(slot Slot, tool Tool, pt gg.Point) (Primitive, bool) {
	next, prim, ok := step(b.state, click{slot: slot, tool: tool, pt: pt})
	b.state = next
	return prim, ok
}

// HandleToolChange discards any in-progress accumulator. No partial
// primitive survives a tool change.
func (b *Builder) HandleToolChange(Tool) {
	b.state = stateIdle{}
}

// IsAccumulating reports whether a multi-click primitive is in progress,
// so the caller can render in-progress feedback.
func (b *Builder) IsAccumulating() bool {
	_, idle := b.state.(stateIdle)
	return !idle
}

// Accumulated returns the in-progress coordinates: the pending endpoint
// of a line or circle, or the vertices of an in-progress polygon, in
// click order. Nil when idle.
func (b *Builder) Accumulated() []gg.Point {
	switch st := b.state.(type) {
	case statePending:
		return []gg.Point{st.pt}
	case stateAccumulating:
		out := make([]gg.Point, len(st.pts))
		copy(out, st.pts)
		return out
	default:
		return nil
	}
}
