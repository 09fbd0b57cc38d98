package render

import (
	_ "embed"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

//go:embed surface.html.tmpl
var surfaceTemplateSource string

var (
	chartingOnce sync.Once
	surfaceTmpl  *template.Template
	chartingErr  error
)

// EnsureChartingReady performs the process-wide one-time setup of the
// rendering primitives: the surface template is parsed and the charting
// defaults are primed. It is idempotent and safe to call from anywhere a
// chart or surface is about to be produced.
func EnsureChartingReady() error {
	chartingOnce.Do(func() {
		surfaceTmpl, chartingErr = template.New("surface").Parse(surfaceTemplateSource)
		if chartingErr != nil {
			chartingErr = &TemplateError{Message: "failed to parse surface template", Cause: chartingErr}
		}
	})
	return chartingErr
}

// RenderHTML writes the composed view as the report surface document.
func RenderHTML(v *View, w io.Writer) error {
	if err := EnsureChartingReady(); err != nil {
		return err
	}
	if err := surfaceTmpl.Execute(w, v); err != nil {
		return &TemplateError{Message: "failed to execute surface template", Cause: err}
	}
	return nil
}

// WriteSurface renders the surface and its radar chart into dir, returning
// the path of the main surface document. The exporter captures this file.
func WriteSurface(v *View, dir string, verbose bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &RenderError{Message: "failed to create surface directory", Cause: err}
	}

	radarPath := filepath.Join(dir, "radar.html")
	radarFile, err := os.Create(radarPath)
	if err != nil {
		return "", &RenderError{Message: "failed to create radar chart file", Cause: err}
	}
	if err := RenderRadarChart(v.Competitiveness.Radar, radarFile); err != nil {
		_ = radarFile.Close()
		return "", err
	}
	if err := radarFile.Close(); err != nil {
		return "", &RenderError{Message: "failed to write radar chart file", Cause: err}
	}

	surfacePath := filepath.Join(dir, "report.html")
	surfaceFile, err := os.Create(surfacePath)
	if err != nil {
		return "", &RenderError{Message: "failed to create surface file", Cause: err}
	}
	if err := RenderHTML(v, surfaceFile); err != nil {
		_ = surfaceFile.Close()
		return "", err
	}
	if err := surfaceFile.Close(); err != nil {
		return "", &RenderError{Message: "failed to write surface file", Cause: err}
	}

	if verbose {
		log.Printf("[RENDER] Surface written to %s", surfacePath)
	}
	return surfacePath, nil
}
