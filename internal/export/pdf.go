package export

import (
	"bytes"
	"os"

	"github.com/go-pdf/fpdf"
)

// writePDF places the surface bitmap across the computed page slices and
// writes the finished document to outPath. The document is assembled fully
// in memory first so a failure never leaves a partial file on disk.
func writePDF(raster *Raster, slices []PageSlice, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("surface", opts, bytes.NewReader(raster.PNG))

	for _, slice := range slices {
		pdf.AddPage()
		// Width fixed to the page, height 0 preserves aspect ratio; the
		// negative offset shifts already-consumed content above the page.
		pdf.ImageOptions("surface", 0, slice.OffsetY, PageWidth, 0, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return &Error{Stage: "encode", Message: "failed to encode document", Cause: err}
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return &Error{Stage: "encode", Message: "failed to write document file", Cause: err}
	}
	return nil
}
