package shapesum

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Session is the front door for interactive use: it owns the three
// editable shape slots, the current target, the per-slot lattice choice,
// the active tool and the builder, and routes raw pointer clicks through
// snapping and the builder into slot shapes. The surrounding UI decides
// which slot a click lands on; the session does the rest.
//
// A session is single-threaded by design, matching the event-driven model
// it serves: one click is processed to completion before the next.
type Session struct {
	shapes  [3]*Shape
	target  *Shape
	lattice [3]Lattice
	tool    Tool
	builder *Builder
	width   int
	height  int
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithSurfaceSize sets the logical surface dimensions used for snapping.
// Defaults to the scratch surface size.
func WithSurfaceSize(w, h int) SessionOption {
	return func(s *Session) {
		s.width = w
		s.height = h
	}
}

// WithTarget installs an initial target shape (copied into the session).
func WithTarget(target *Shape) SessionOption {
	return func(s *Session) {
		s.target.Clear()
		s.target.Copy(target)
	}
}

// WithLattice sets the initial lattice for every slot.
func WithLattice(k Lattice) SessionOption {
	return func(s *Session) {
		for i := range s.lattice {
			s.lattice[i] = k
		}
	}
}

// WithTool sets the initially active tool.
func WithTool(t Tool) SessionOption {
	return func(s *Session) {
		s.tool = t
	}
}

// NewSession creates a session with three empty slots, the point tool and
// the square lattice active.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		target:  NewPreCentered(),
		builder: NewBuilder(),
		width:   ScratchWidth,
		height:  ScratchHeight,
	}
	for i := range s.shapes {
		s.shapes[i] = NewShape()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape returns the shape in the given slot. The slot shapes are created
// once and reused for the life of the session.
func (s *Session) Shape(slot Slot) *Shape {
	return s.shapes[slot]
}

// Target returns the session's target shape.
func (s *Session) Target() *Shape {
	return s.target
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool switches the active tool. Any in-progress accumulator is
// discarded.
func (s *Session) SetTool(t Tool) {
	s.tool = t
	s.builder.HandleToolChange(t)
}

// Lattice returns the lattice active for the given slot.
func (s *Session) Lattice(slot Slot) Lattice {
	return s.lattice[slot]
}

// SetLattice sets the lattice for the given slot. This is the
// grid-selection action: it never touches a shape.
func (s *Session) SetLattice(slot Slot, k Lattice) {
	s.lattice[slot] = k
}

// LoadLevel clears every slot and the builder and installs the level's
// target shape (copied). The slot shapes themselves are reused.
func (s *Session) LoadLevel(target *Shape) {
	for _, sh := range s.shapes {
		sh.Clear()
	}
	s.builder.HandleToolChange(s.tool)
	s.target.Clear()
	s.target.Copy(target)
}

// Click feeds one raw pointer click on a slot to the engine: the
// coordinate is snapped with the slot's lattice, then routed by the
// active tool — erased from the slot's shape, ignored for grid
// selection, or fed to the builder and committed to the slot's shape
// when a primitive completes. Reports whether the slot's shape changed.
func (s *Session) Click(slot Slot, rawX, rawY float64) bool {
	x, y := Snap(rawX, rawY, float64(s.width), float64(s.height), s.lattice[slot])
	switch s.tool {
	case ToolEraser:
		return s.shapes[slot].ErasePoint(x, y)
	case ToolGrid:
		return false
	}
	prim, ok := s.builder.HandleClick(slot, s.tool, gg.Pt(x, y))
	if !ok {
		return false
	}
	s.shapes[slot].add(prim)
	return true
}

// Accumulating reports whether a multi-click primitive is in progress.
func (s *Session) Accumulating() bool {
	return s.builder.IsAccumulating()
}

// Accumulated returns the in-progress coordinates for UI feedback.
func (s *Session) Accumulated() []gg.Point {
	return s.builder.Accumulated()
}

// Solved reports whether the composition of the left and right slots
// matches the target within the similarity tolerance.
func (s *Session) Solved() bool {
	return Compare(s.shapes[SlotLeft], s.shapes[SlotRight], s.target)
}

// Render draws the session's current state: the left and right shapes
// centered on their surfaces in display mode, and their composition on
// the result surface.
func (s *Session) Render(left, right, result *gg.Context, col gg.RGBA) {
	s.shapes[SlotLeft].DrawCentered(left, Display, col)
	s.shapes[SlotRight].DrawCentered(right, Display, col)
	s.shapes[SlotLeft].Sum(s.shapes[SlotRight], result, col)
}

// Thumbnail renders the shape centered in display mode and scales it to
// w by h for previews.
func Thumbnail(s *Shape, w, h int, col gg.RGBA) image.Image {
	dc := gg.NewContext(ScratchWidth, ScratchHeight)
	s.DrawCentered(dc, Display, col)
	src := dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
