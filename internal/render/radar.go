package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RadarAxis is one axis of the competitiveness radar.
type RadarAxis struct {
	Name string
	Max  float32
}

// RadarProjection is the fixed 5-axis competitiveness vector shown on the
// competitiveness panel.
type RadarProjection struct {
	Axes   []RadarAxis
	Values []float32
}

// PlaceholderRadar returns the current fixed scoring vector. The
// projection is a placeholder computed independently of report content;
// deriving it from the actual report payload is an open item, so the
// vector is isolated here rather than spread through the composer.
func PlaceholderRadar() RadarProjection {
	return RadarProjection{
		Axes: []RadarAxis{
			{Name: "Academic Strength", Max: 100},
			{Name: "Language Proficiency", Max: 100},
			{Name: "Research Background", Max: 100},
			{Name: "Internship Background", Max: 100},
			{Name: "Institution Prestige", Max: 100},
		},
		Values: []float32{75, 70, 60, 65, 80},
	}
}

// RenderRadarChart writes the radar projection as a standalone chart
// document. The surface embeds it by reference so the chart assets stay
// out of the main report markup.
func RenderRadarChart(proj RadarProjection, w io.Writer) error {
	if err := EnsureChartingReady(); err != nil {
		return &RenderError{Message: "charting initialization failed", Cause: err}
	}

	indicators := make([]*opts.Indicator, 0, len(proj.Axes))
	for _, axis := range proj.Axes {
		indicators = append(indicators, &opts.Indicator{Name: axis.Name, Max: axis.Max})
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Competitiveness Overview",
			Width:     "560px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Competitiveness Overview"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)
	radar.AddSeries("Applicant", []opts.RadarData{{Name: "Applicant", Value: proj.Values}})

	if err := radar.Render(w); err != nil {
		return &RenderError{Message: "failed to render radar chart", Cause: err}
	}
	return nil
}
