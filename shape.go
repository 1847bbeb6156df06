package shapesum

import "github.com/gogpu/gg"

// Shape is an ordered, mutable sequence of primitives. Insertion order is
// render order; it carries no meaning for composition or comparison.
//
// A shape is either pre-centered (its coordinates are relative to the
// surface center, see NewPreCentered) or not (absolute surface
// coordinates, centered on demand by DrawCentered via its occupancy
// bounding box). The flag is fixed at construction and only changes when
// Copy adopts the source's flag.
//
// The primitive sequence is never shared between shapes: Copy duplicates
// it, including polygon vertex slices.
type Shape struct {
	prims       []Primitive
	preCentered bool
}

// NewShape creates an empty shape with absolute coordinates.
func NewShape() *Shape {
	return &Shape{}
}

// NewPreCentered creates an empty shape whose primitive coordinates are
// relative to the center of whatever surface it is drawn on. Used for
// hand-authored target shapes; such shapes skip bounding-box centering.
func NewPreCentered() *Shape {
	return &Shape{preCentered: true}
}

// PreCentered reports whether the shape's coordinates are relative to the
// surface center.
func (s *Shape) PreCentered() bool {
	return s.preCentered
}

// Len returns the number of primitives in the shape.
func (s *Shape) Len() int {
	return len(s.prims)
}

// Primitives returns a copy of the primitive sequence, in render order.
func (s *Shape) Primitives() []Primitive {
	out := make([]Primitive, len(s.prims))
	copy(out, s.prims)
	return out
}

// Clear empties the primitive sequence. The shape itself stays usable;
// editable slots are cleared and refilled for the life of a session.
func (s *Shape) Clear() {
	s.prims = s.prims[:0]
}

// Copy appends all of src's primitives to s and adopts src's pre-centered
// flag. It does not clear first; callers wanting replacement semantics
// call Clear themselves. Polygon vertex slices are duplicated so the two
// shapes never share storage.
func (s *Shape) Copy(src *Shape) *Shape {
	for _, p := range src.prims {
		if poly, ok := p.(Polygon); ok {
			pts := make([]gg.Point, len(poly.Points))
			copy(pts, poly.Points)
			p = Polygon{Points: pts}
		}
		s.prims = append(s.prims, p)
	}
	s.preCentered = src.preCentered
	return s
}

// add appends a primitive. All Add* methods and the session's commit path
// funnel through here.
func (s *Shape) add(p Primitive) *Shape {
	s.prims = append(s.prims, p)
	return s
}

// AddPoint appends a point primitive and returns the shape.
func (s *Shape) AddPoint(x, y float64) *Shape {
	return s.add(Point{X: x, Y: y})
}

// AddLine appends a line primitive and returns the shape.
func (s *Shape) AddLine(x1, y1, x2, y2 float64) *Shape {
	return s.add(Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// AddPolygon appends a polygon primitive and returns the shape.
// The vertex slice is taken over by the shape.
func (s *Shape) AddPolygon(points []gg.Point) *Shape {
	if len(points) == 0 {
		panic("shapesum: polygon with zero vertices")
	}
	return s.add(Polygon{Points: points})
}

// AddCircle appends a circle primitive and returns the shape.
func (s *Shape) AddCircle(cx, cy, r float64) *Shape {
	return s.add(Circle{CX: cx, CY: cy, R: r})
}

// AddRegion appends an externally authored region and returns the shape.
func (s *Shape) AddRegion(trace func(dc *gg.Context)) *Shape {
	return s.add(Region{Trace: trace})
}

// ErasePoint removes every primitive with a vertex exactly at (x, y):
// a point whose coordinate equals exactly, a line with either endpoint
// equal, a polygon with any vertex equal, or a circle whose boundary
// passes through (x, y) within 1e-6. Regions never match. Erasing at a
// coordinate matching nothing is a no-op. Reports whether anything was
// removed.
func (s *Shape) ErasePoint(x, y float64) bool {
	kept := s.prims[:0]
	for _, p := range s.prims {
		if !matchesVertex(p, x, y) {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(s.prims)
	s.prims = kept
	return removed
}

// Draw renders the shape's primitives onto dc in the given mode and
// color. Pre-centered shapes render under a translation to dc's center;
// others render at their absolute coordinates.
func (s *Shape) Draw(dc *gg.Context, mode Mode, col gg.RGBA) {
	if s.preCentered {
		dc.Push()
		dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)
		defer dc.Pop()
	}
	for _, p := range s.prims {
		drawPrimitive(dc, p, mode, col)
	}
}

// DrawCentered renders the shape so that it appears centered on dc.
// Pre-centered shapes are drawn directly (the author already centered
// their coordinates). Other shapes are rasterized once to find their
// occupancy bounding box, then redrawn translated so the box center lands
// on dc's center. A shape with empty occupancy draws nothing.
func (s *Shape) DrawCentered(dc *gg.Context, mode Mode, col gg.RGBA) {
	if s.preCentered {
		s.Draw(dc, mode, col)
		return
	}
	bm := occupancy(s)
	b, ok := bm.Bounds()
	if !ok {
		return
	}
	cx := float64(b.Min.X+b.Max.X-1) / 2
	cy := float64(b.Min.Y+b.Max.Y-1) / 2
	dc.Push()
	dc.Translate(float64(dc.Width())/2-cx, float64(dc.Height())/2-cy)
	for _, p := range s.prims {
		drawPrimitive(dc, p, mode, col)
	}
	dc.Pop()
}
