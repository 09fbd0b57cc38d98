package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukesour/school-positioning/internal/config"
	"github.com/lukesour/school-positioning/internal/export"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export a rendered report surface as a paginated PDF",
	Long:  "Captures the full rendered surface with a headless browser and slices it into A4-width document pages. Requires Chrome/Chromium.",
	RunE:  exportCmd,
}

var (
	exportSurfacePath string
	exportOutPath     string
)

func init() {
	exportCommand.Flags().StringVarP(&exportSurfacePath, "surface", "s", "", "Path or URL of the rendered report surface (required)")
	exportCommand.Flags().StringVarP(&exportOutPath, "output", "o", "report.pdf", "Output PDF path")
	_ = exportCommand.MarkFlagRequired("surface")

	rootCmd.AddCommand(exportCommand)
}

// surfaceURL turns a local path into a file:// URL; URLs pass through.
func surfaceURL(pathOrURL string) (string, error) {
	if strings.Contains(pathOrURL, "://") {
		return pathOrURL, nil
	}
	abs, err := filepath.Abs(pathOrURL)
	if err != nil {
		return "", fmt.Errorf("failed to resolve surface path: %w", err)
	}
	return "file://" + abs, nil
}

func exportSurface(ctx context.Context, surfacePath string, cfg config.Config) (string, int, error) {
	url, err := surfaceURL(surfacePath)
	if err != nil {
		return "", 0, err
	}

	exporter := export.NewExporter()
	exporter.Verbose = cfg.Verbose
	if chrome, ok := exporter.Rasterizer.(*export.ChromeRasterizer); ok {
		chrome.Verbose = cfg.Verbose
	}

	outPath := filepath.Join(cfg.Output, "report.pdf")
	result, err := exporter.Export(ctx, url, outPath)
	if err != nil {
		return "", 0, err
	}
	return result.Path, result.Pages, nil
}

func exportCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	url, err := surfaceURL(exportSurfacePath)
	if err != nil {
		return err
	}

	exporter := export.NewExporter()
	exporter.Verbose = flagVerbose
	if chrome, ok := exporter.Rasterizer.(*export.ChromeRasterizer); ok {
		chrome.Verbose = flagVerbose
	}

	result, err := exporter.Export(ctx, url, exportOutPath)
	if err != nil {
		return err
	}
	fmt.Printf("Document exported to %s (%d pages)\n", result.Path, result.Pages)
	return nil
}
