package shapesum

import (
	"math"

	"github.com/gogpu/gg"
)

// Primitive represents one vector element of a Shape.
// This is a sealed interface - only types in this package implement it,
// so consumers (the rasterizer, the erase matcher) can switch over the
// full variant set exhaustively.
//
// Variants:
//   - Point: a single coordinate
//   - Line: a segment between two endpoints
//   - Polygon: a closed region over an ordered vertex list
//   - Circle: a center and radius
//   - Region: an externally authored outline, opaque beyond fill/stroke
type Primitive interface {
	// primitiveMarker is an unexported method that seals this interface.
	// Only types in this package can implement Primitive.
	primitiveMarker()
}

// Point is a single coordinate. It rasterizes as one pixel in occupancy
// mode and as a small disc in display mode.
type Point struct {
	X, Y float64
}

// Line is a straight segment between two endpoints.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Polygon is a closed region over an ordered vertex list, len >= 1.
// The vertex slice is owned by the polygon; Shape.Copy duplicates it.
type Polygon struct {
	Points []gg.Point
}

// Circle is a filled disc with center (CX, CY) and radius R >= 0.
type Circle struct {
	CX, CY, R float64
}

// Region is an externally supplied fillable/strokable outline, used for
// complex pre-authored target shapes. Trace appends the region's path to
// the context; the rasterizer then fills (and in display mode strokes) it.
// Regions cannot be matched by Shape.ErasePoint.
type Region struct {
	Trace func(dc *gg.Context)
}

func (Point) primitiveMarker()   {}
func (Line) primitiveMarker()    {}
func (Polygon) primitiveMarker() {}
func (Circle) primitiveMarker()  {}
func (Region) primitiveMarker()  {}

// circleEraseEpsilon is the tolerance for matching a coordinate against a
// circle's boundary in ErasePoint. Point, line and polygon matches are
// exact: erase clicks arrive through the same snap engine that produced
// the original coordinates.
const circleEraseEpsilon = 1e-6

// matchesVertex reports whether the primitive has a vertex (or, for a
// circle, a boundary) at exactly (x, y).
func matchesVertex(p Primitive, x, y float64) bool {
	switch p := p.(type) {
	case Point:
		return p.X == x && p.Y == y
	case Line:
		return (p.X1 == x && p.Y1 == y) || (p.X2 == x && p.Y2 == y)
	case Polygon:
		for _, q := range p.Points {
			if q.X == x && q.Y == y {
				return true
			}
		}
		return false
	case Circle:
		d := math.Hypot(x-p.CX, y-p.CY)
		return math.Abs(d-p.R) <= circleEraseEpsilon
	case Region:
		return false
	default:
		return false
	}
}
