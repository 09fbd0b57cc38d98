package export

import (
	"context"
	"log"
)

// Result describes a finished export.
type Result struct {
	Path  string
	Pages int
}

// Exporter runs the two-stage capture-then-paginate pipeline: rasterize
// the full rendered surface, then slice the bitmap across fixed-size
// document pages.
type Exporter struct {
	Rasterizer Rasterizer
	Verbose    bool
}

// NewExporter returns an exporter backed by the headless-browser rasterizer.
func NewExporter() *Exporter {
	return &Exporter{Rasterizer: NewChromeRasterizer()}
}

// Export captures the surface at surfaceURL and writes the paginated
// document to outPath. Any failure is returned as an *Error and leaves no
// partial file; the caller's report state is untouched either way.
func (e *Exporter) Export(ctx context.Context, surfaceURL, outPath string) (*Result, error) {
	raster, err := e.Rasterizer.CaptureFullPage(ctx, surfaceURL)
	if err != nil {
		if _, ok := err.(*Error); ok {
			return nil, err
		}
		return nil, &Error{Stage: "capture", Message: "surface capture failed", Cause: err}
	}

	scaled := ScaledHeight(raster.Width, raster.Height)
	if scaled <= 0 {
		return nil, &Error{Stage: "paginate", Message: "captured bitmap has no extent"}
	}
	slices := Paginate(scaled)

	if e.Verbose {
		log.Printf("[EXPORT] Scaled height %.1fmm across %d pages", scaled, len(slices))
	}

	if err := writePDF(raster, slices, outPath); err != nil {
		return nil, err
	}
	return &Result{Path: outPath, Pages: len(slices)}, nil
}
