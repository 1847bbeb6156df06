package shapesum

import (
	"image"

	"github.com/gogpu/gg"
)

// Mode selects how primitives are rendered.
type Mode int

const (
	// Display renders for humans: 3-unit line strokes, visible discs for
	// points, 80%-alpha fills with outlines.
	Display Mode = iota

	// Occupancy renders for pixel classification: 1-unit strokes, 1x1
	// points, fully opaque fills, no outlines. Occupancy renders must be
	// solid and unambiguous so the per-pixel test is exact.
	Occupancy
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Display:
		return "Display"
	case Occupancy:
		return "Occupancy"
	default:
		return "Unknown"
	}
}

// displayPointRadius is the disc radius used for points in display mode.
const displayPointRadius = 5

// drawPrimitive renders one primitive onto dc. The switch is exhaustive
// over the sealed Primitive variants.
func drawPrimitive(dc *gg.Context, p Primitive, mode Mode, col gg.RGBA) {
	switch p := p.(type) {
	case Point:
		dc.SetColor(col)
		if mode == Display {
			dc.DrawCircle(p.X, p.Y, displayPointRadius)
		} else {
			dc.DrawRectangle(p.X, p.Y, 1, 1)
		}
		_ = dc.Fill()

	case Line:
		dc.SetColor(col)
		if mode == Display {
			dc.SetLineWidth(3)
		} else {
			dc.SetLineWidth(1)
		}
		dc.DrawLine(p.X1, p.Y1, p.X2, p.Y2)
		_ = dc.Stroke()

	case Polygon:
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, q := range p.Points[1:] {
			dc.LineTo(q.X, q.Y)
		}
		dc.ClosePath()
		paintClosed(dc, mode, col)

	case Circle:
		dc.DrawCircle(p.CX, p.CY, p.R)
		paintClosed(dc, mode, col)

	case Region:
		p.Trace(dc)
		paintClosed(dc, mode, col)
	}
}

// paintClosed fills (and in display mode outlines) the current path.
func paintClosed(dc *gg.Context, mode Mode, col gg.RGBA) {
	if mode == Display {
		dc.SetColor(gg.RGBA2(col.R, col.G, col.B, col.A*0.8))
		_ = dc.FillPreserve()
		dc.SetColor(col)
		dc.SetLineWidth(1)
		_ = dc.Stroke()
		return
	}
	dc.SetColor(col)
	_ = dc.Fill()
}

// Bitmap is an occupancy grid: one boolean per pixel of the surface it
// was read from. Bitmaps are produced by classification and by the
// compositor; they are rebuilt from scratch, never mutated by callers.
type Bitmap struct {
	w, h int
	bits []bool
}

// newBitmap creates an all-off bitmap.
func newBitmap(w, h int) Bitmap {
	return Bitmap{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the bitmap width in pixels.
func (b Bitmap) Width() int { return b.w }

// Height returns the bitmap height in pixels.
func (b Bitmap) Height() int { return b.h }

// At reports whether the pixel at (x, y) is on. Out-of-range coordinates
// are off.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.bits[y*b.w+x]
}

// set turns on the pixel at (x, y). Out-of-range coordinates are dropped:
// stamps are clipped to the surface extent.
func (b Bitmap) set(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.bits[y*b.w+x] = true
}

// Count returns the number of on pixels.
func (b Bitmap) Count() int {
	n := 0
	for _, on := range b.bits {
		if on {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of the on pixels in the usual
// half-open image convention, and whether any pixel is on.
func (b Bitmap) Bounds() (image.Rectangle, bool) {
	minX, minY := b.w, b.h
	maxX, maxY := -1, -1
	for y := 0; y < b.h; y++ {
		row := b.bits[y*b.w : (y+1)*b.w]
		for x, on := range row {
			if !on {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Equal reports whether two bitmaps have the same dimensions and the same
// on pixels.
func (b Bitmap) Equal(other Bitmap) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, on := range b.bits {
		if on != other.bits[i] {
			return false
		}
	}
	return true
}

// onPoints returns the coordinates of every on pixel, in row order.
func (b Bitmap) onPoints() []image.Point {
	pts := make([]image.Point, 0, 64)
	for y := 0; y < b.h; y++ {
		row := b.bits[y*b.w : (y+1)*b.w]
		for x, on := range row {
			if on {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// centered returns a copy of b shifted so that the bounding-box center of
// its on pixels lands on the bitmap center. An empty bitmap is returned
// unchanged.
func (b Bitmap) centered() Bitmap {
	r, ok := b.Bounds()
	if !ok {
		return b
	}
	dx := b.w/2 - (r.Min.X+r.Max.X-1)/2
	dy := b.h/2 - (r.Min.Y+r.Max.Y-1)/2
	out := newBitmap(b.w, b.h)
	for _, p := range b.onPoints() {
		out.set(p.X+dx, p.Y+dy)
	}
	return out
}

// classify reads the pixmap back into a bitmap. A pixel is on when its
// four RGBA bytes, taken as one little-endian 32-bit word and shifted
// right by 12 bits, exceed 128. For solid-black-on-transparent occupancy
// renders this marks exactly the pixels with nonzero alpha, separating
// covered pixels (including anti-aliased edges) from untouched background.
func classify(pm *gg.Pixmap) Bitmap {
	bm := newBitmap(pm.Width(), pm.Height())
	data := pm.Data()
	for i, j := 0, 0; i < len(data); i, j = i+4, j+1 {
		word := uint32(data[i]) | uint32(data[i+1])<<8 |
			uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		if word>>12 > 128 {
			bm.bits[j] = true
		}
	}
	return bm
}

// occupancy rasterizes a shape on the scratch surface in occupancy mode
// and classifies the result.
func occupancy(s *Shape) Bitmap {
	var bm Bitmap
	withScratch(func(dc *gg.Context, pm *gg.Pixmap) {
		s.Draw(dc, Occupancy, gg.Black)
		bm = classify(pm)
	})
	return bm
}

// Rasterize renders the shape in occupancy mode on the shared scratch
// surface and returns its occupancy bitmap, sized ScratchWidth by
// ScratchHeight.
func Rasterize(s *Shape) Bitmap {
	return occupancy(s)
}

// RasterizePrimitives rasterizes an ad hoc primitive list, in absolute
// coordinates, without constructing a shape.
func RasterizePrimitives(prims []Primitive) Bitmap {
	var bm Bitmap
	withScratch(func(dc *gg.Context, pm *gg.Pixmap) {
		for _, p := range prims {
			drawPrimitive(dc, p, Occupancy, gg.Black)
		}
		bm = classify(pm)
	})
	return bm
}
