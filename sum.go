package shapesum

import "github.com/gogpu/gg"

// sumBitmap computes the additive composition of a and b as an occupancy
// bitmap: the union of b's occupancy translated to every on pixel of a's
// occupancy, with stamp offsets measured from the scratch center so that
// a point of a at the exact center is the identity stamp. Stamps falling
// outside the scratch extent are clipped. Reports false when a has no on
// pixels (the result is empty and centering is undefined).
//
// The cost is proportional to |a| times |b| in on pixels. That is
// accepted: shapes are surface-sized by construction.
func sumBitmap(a, b *Shape) (Bitmap, bool) {
	oa := occupancy(a)
	ob := occupancy(b)

	res := newBitmap(oa.w, oa.h)
	anchors := oa.onPoints()
	if len(anchors) == 0 {
		return res, false
	}
	stamp := ob.onPoints()
	for _, p := range anchors {
		dx := p.X - oa.w/2
		dy := p.Y - oa.h/2
		for _, q := range stamp {
			res.set(q.X+dx, q.Y+dy)
		}
	}
	logger().Debug("sum computed",
		"anchors", len(anchors), "stamp", len(stamp), "pixels", res.Count())
	return res, true
}

// Sum draws the additive composition of s and other onto dst in the given
// color: the composed occupancy is translated so that its bounding-box
// center lands on dst's center, then painted pixel by pixel. If s has no
// filled pixels, or every stamp was clipped away, nothing is drawn.
func (s *Shape) Sum(other *Shape, dst *gg.Context, col gg.RGBA) {
	res, ok := sumBitmap(s, other)
	if !ok {
		return
	}
	r, ok := res.Bounds()
	if !ok {
		return
	}
	ox := dst.Width()/2 - (r.Min.X+r.Max.X-1)/2
	oy := dst.Height()/2 - (r.Min.Y+r.Max.Y-1)/2
	for _, p := range res.onPoints() {
		dst.SetPixel(p.X+ox, p.Y+oy, col)
	}
}
