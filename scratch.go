package shapesum

import (
	"sync"

	"github.com/gogpu/gg"
)

// The rasterizer, compositor and judge share one fixed-size scratch
// surface for every occupancy read. The pixmap is created alongside the
// context (gg.WithPixmap) so pixel data can be read back directly.
const (
	// ScratchWidth is the width of the shared scratch surface in pixels.
	ScratchWidth = 800
	// ScratchHeight is the height of the shared scratch surface in pixels.
	ScratchHeight = 600
)

var (
	scratchMu sync.Mutex
	scratchDC *gg.Context
	scratchPM *gg.Pixmap
)

// withScratch runs fn with exclusive access to the scratch surface.
// The surface is cleared to transparent before fn runs and again after it
// returns, so every use sees a clean buffer and leaves one behind. fn must
// not call back into withScratch: each occupancy read completes its own
// clear/draw/read/clear cycle before the next begins.
func withScratch(fn func(dc *gg.Context, pm *gg.Pixmap)) {
	scratchMu.Lock()
	defer scratchMu.Unlock()

	if scratchDC == nil {
		scratchPM = gg.NewPixmap(ScratchWidth, ScratchHeight)
		scratchDC = gg.NewContext(ScratchWidth, ScratchHeight, gg.WithPixmap(scratchPM))
	}

	scratchDC.Clear()
	defer scratchDC.Clear()
	fn(scratchDC, scratchPM)
}
