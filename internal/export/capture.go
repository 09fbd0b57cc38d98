package export

import (
	"bytes"
	"context"
	"image"
	_ "image/png"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// CaptureScale is the fixed upscaling factor applied when rasterizing the
// surface, for print-quality resolution.
const CaptureScale = 2.0

// DefaultCaptureTimeout bounds a single capture run.
const DefaultCaptureTimeout = 60 * time.Second

// Raster is a full-surface bitmap with its pixel dimensions.
type Raster struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer captures a rendered surface into a single bitmap covering the
// surface's full scroll extent, not just the viewport. The DOM-bound
// capture sits behind this interface so pagination stays testable against
// synthetic rasters.
type Rasterizer interface {
	CaptureFullPage(ctx context.Context, url string) (*Raster, error)
}

// ChromeRasterizer captures surfaces with a headless browser. Requires
// Chrome/Chromium to be installed on the system.
type ChromeRasterizer struct {
	Timeout time.Duration
	Verbose bool
}

// NewChromeRasterizer returns a rasterizer with default settings.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{Timeout: DefaultCaptureTimeout}
}

// CaptureFullPage renders the URL in a headless browser and screenshots
// the full page at the fixed capture scale.
func (r *ChromeRasterizer) CaptureFullPage(ctx context.Context, url string) (*Raster, error) {
	if r.Verbose {
		log.Printf("[CAPTURE] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("allow-file-access-from-files", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultCaptureTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1240, 900, chromedp.EmulateScale(CaptureScale)),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give embedded charts a moment to draw before the screenshot
		chromedp.Sleep(2*time.Second),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, &Error{Stage: "capture", Message: "browser capture failed", Cause: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, &Error{Stage: "capture", Message: "failed to decode captured bitmap", Cause: err}
	}

	if r.Verbose {
		log.Printf("[CAPTURE] Captured %dx%d bitmap (%d bytes)", cfg.Width, cfg.Height, len(shot))
	}
	return &Raster{PNG: shot, Width: cfg.Width, Height: cfg.Height}, nil
}
