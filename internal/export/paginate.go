package export

import "math"

// Page geometry in millimeters: A4 width, with the height trimmed
// slightly below true A4 so content near a page break is not clipped by
// printer margins.
const (
	PageWidth  = 210.0
	PageHeight = 295.0
)

// PageSlice places the full surface bitmap on one document page. OffsetY
// is the vertical position of the bitmap's top edge on that page: zero on
// the first page, then shifted up by the height already consumed on the
// pages before it.
type PageSlice struct {
	Index   int
	OffsetY float64
}

// ScaledHeight returns the surface bitmap's height after scaling it to the
// fixed page width, preserving aspect ratio.
func ScaledHeight(imgWidth, imgHeight int) float64 {
	if imgWidth <= 0 {
		return 0
	}
	return float64(imgHeight) * PageWidth / float64(imgWidth)
}

// Paginate computes the page placements for a surface of the given scaled
// height. The bitmap goes on page one at offset zero; while unplaced
// height remains, another page is added with the bitmap shifted up by the
// cumulative consumed height. A surface that fits exactly in N pages
// produces exactly N slices, never a trailing blank page.
func Paginate(scaledHeight float64) []PageSlice {
	slices := []PageSlice{{Index: 0, OffsetY: 0}}

	consumed := PageHeight
	remaining := scaledHeight - PageHeight
	for remaining > 0 {
		slices = append(slices, PageSlice{Index: len(slices), OffsetY: -consumed})
		consumed += PageHeight
		remaining -= PageHeight
	}
	return slices
}

// PageCount returns ceil(scaledHeight / PageHeight), with a minimum of one
// page for degenerate heights.
func PageCount(scaledHeight float64) int {
	if scaledHeight <= PageHeight {
		return 1
	}
	return int(math.Ceil(scaledHeight / PageHeight))
}
