// Package shapesum computes additive compositions of 2D vector shapes.
//
// # Overview
//
// shapesum is the geometry engine behind a shape-composition puzzle: the
// user builds two vector shapes, the engine rasterizes them and computes
// their additive composition — a rasterized Minkowski-style sum, the union
// of shape B stamped at every occupied pixel of shape A — then judges the
// result against a target shape with a symmetric-difference similarity
// metric. Rendering goes through github.com/gogpu/gg contexts; occupancy is
// read back from gg pixmaps.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/shapesum"
//	)
//
//	left := shapesum.NewShape().AddPoint(400, 300)
//	right := shapesum.NewShape().AddPolygon([]gg.Point{
//	    {X: 380, Y: 280}, {X: 420, Y: 280}, {X: 420, Y: 320}, {X: 380, Y: 320},
//	})
//
//	dc := gg.NewContext(800, 600)
//	left.Sum(right, dc, gg.Black)
//	dc.SavePNG("sum.png")
//
// # Architecture
//
// The engine is organized into:
//   - Geometry model: Shape, a mutable ordered list of Primitive variants
//     (Point, Line, Polygon, Circle, Region)
//   - Rasterizer: Rasterize and the Bitmap occupancy grid
//   - Compositor: Shape.Sum, the additive composition with bounding-box
//     recentering
//   - Similarity judge: Compare
//   - Builder: the click-to-primitive state machine, with Session as the
//     slot-owning front door for interactive use
//   - Grid engine: Snap over square and triangular lattices
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Shapes constructed with NewPreCentered use coordinates relative to the
// surface center instead; see NewPreCentered.
//
// # Concurrency
//
// All rasterization shares one fixed 800×600 scratch surface. Access is
// serialized internally, so Rasterize, Compare, Sum and DrawCentered are
// safe to call from multiple goroutines; a Shape itself is not safe for
// concurrent mutation.
package shapesum
