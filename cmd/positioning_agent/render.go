package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukesour/school-positioning/internal/render"
	"github.com/lukesour/school-positioning/internal/report"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a saved report artifact into the HTML surface",
	RunE:  renderCmd,
}

var (
	renderReportPath string
	renderOutput     string
)

func init() {
	renderCommand.Flags().StringVarP(&renderReportPath, "report", "r", "", "Path to a saved report.json artifact (required)")
	renderCommand.Flags().StringVarP(&renderOutput, "output", "o", "out", "Output directory for the surface")
	_ = renderCommand.MarkFlagRequired("report")

	rootCmd.AddCommand(renderCommand)
}

func renderCmd(_ *cobra.Command, _ []string) error {
	r, err := report.Load(renderReportPath)
	if err != nil {
		return err
	}

	surfacePath, err := render.WriteSurface(render.Compose(r), renderOutput, flagVerbose)
	if err != nil {
		return err
	}
	fmt.Printf("Report surface written to %s\n", surfacePath)
	return nil
}
