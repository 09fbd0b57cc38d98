// Package render composes the tabbed report surface from an analysis
// report. Composition is a pure function of the immutable report; the
// HTML and chart output are written separately so the view itself stays
// testable without a browser.
package render

import (
	"fmt"

	"github.com/lukesour/school-positioning/internal/report"
)

// TabID names one of the four report panels.
type TabID string

const (
	TabCompetitiveness TabID = "competitiveness"
	TabSchools         TabID = "schools"
	TabCases           TabID = "cases"
	TabImprovement     TabID = "improvement"
)

// ImprovementUnavailableNotice is shown when the service returned no
// background-improvement block. The panel is never rendered empty.
const ImprovementUnavailableNotice = "Background improvement suggestions are not available for this report."

// Tab is one named panel of the report surface.
type Tab struct {
	ID    TabID
	Title string
}

// View is the full composed report surface.
type View struct {
	Tabs            []Tab
	Competitiveness CompetitivenessPanel
	Schools         SchoolsPanel
	Cases           CasesPanel
	Improvement     ImprovementPanel
}

// CompetitivenessPanel carries the free-text assessment plus the radar
// projection.
type CompetitivenessPanel struct {
	Strengths  string
	Weaknesses string
	Summary    string
	Radar      RadarProjection
}

// TierColumn is one of the reach/target/safety recommendation columns.
type TierColumn struct {
	Key     string
	Title   string
	Schools []report.School
}

// SchoolsPanel groups the three tier columns with the case-insight text.
type SchoolsPanel struct {
	Tiers        []TierColumn
	CaseInsights string
}

// CaseCard is one comparable-case card with its collapsible comparison.
type CaseCard struct {
	CaseID            int
	Title             string
	GPA               string
	LanguageScore     string
	TestType          string
	HasTestType       bool
	KeyExperiences    string
	UndergraduateInfo string
	Comparison        report.CaseComparison
	SuccessFactors    string
	Takeaways         string
}

// CasesPanel lists the comparable-case cards.
type CasesPanel struct {
	Cards []CaseCard
}

// ImprovementPanel renders the chronological plan, or the unavailable
// notice when the service omitted the block.
type ImprovementPanel struct {
	Available       bool
	Plan            []report.ActionPlan
	StrategySummary string
	Notice          string
}

// Compose builds the tabbed view from a report. It is a pure function:
// the report is not mutated and no I/O happens here.
func Compose(r *report.Report) *View {
	v := &View{
		Tabs: []Tab{
			{ID: TabCompetitiveness, Title: "Competitiveness"},
			{ID: TabSchools, Title: "School Recommendations"},
			{ID: TabCases, Title: "Comparable Cases"},
			{ID: TabImprovement, Title: "Background Improvement"},
		},
		Competitiveness: CompetitivenessPanel{
			Strengths:  r.Competitiveness.Strengths,
			Weaknesses: r.Competitiveness.Weaknesses,
			Summary:    r.Competitiveness.Summary,
			Radar:      PlaceholderRadar(),
		},
		Schools: SchoolsPanel{
			Tiers: []TierColumn{
				{Key: "reach", Title: "Reach", Schools: r.SchoolRecommendations.Reach},
				{Key: "target", Title: "Target", Schools: r.SchoolRecommendations.Target},
				{Key: "safety", Title: "Safety", Schools: r.SchoolRecommendations.Safety},
			},
			CaseInsights: r.SchoolRecommendations.CaseInsights,
		},
	}

	for _, c := range r.SimilarCases {
		v.Cases.Cards = append(v.Cases.Cards, CaseCard{
			CaseID:            c.CaseID,
			Title:             fmt.Sprintf("%s · %s", c.AdmittedUniversity, c.AdmittedProgram),
			GPA:               c.GPA,
			LanguageScore:     c.LanguageScore,
			TestType:          c.LanguageTestType,
			HasTestType:       c.LanguageTestType != "",
			KeyExperiences:    c.KeyExperiences,
			UndergraduateInfo: c.UndergraduateInfo,
			Comparison:        c.Comparison,
			SuccessFactors:    c.SuccessFactors,
			Takeaways:         c.Takeaways,
		})
	}

	if r.HasImprovement() {
		v.Improvement = ImprovementPanel{
			Available:       true,
			Plan:            r.BackgroundImprovement.ActionPlan,
			StrategySummary: r.BackgroundImprovement.StrategySummary,
		}
	} else {
		v.Improvement = ImprovementPanel{Notice: ImprovementUnavailableNotice}
	}

	return v
}
