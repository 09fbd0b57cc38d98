package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukesour/school-positioning/internal/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Competitiveness: report.Competitiveness{
			Strengths:  "Strong quantitative background",
			Weaknesses: "Limited research output",
			Summary:    "Competitive for target programs",
		},
		SchoolRecommendations: report.SchoolRecommendations{
			Reach:        []report.School{{University: "MIT", Program: "MS CS", Reason: "stretch"}},
			Target:       []report.School{{University: "UMich", Program: "MS CS", Reason: "good fit"}},
			Safety:       []report.School{{University: "NEU", Program: "MS CS", Reason: "likely admit"}},
			CaseInsights: "Applicants with similar GPAs landed target-tier admits.",
		},
		SimilarCases: []report.CaseAnalysis{
			{
				CaseID:             7,
				AdmittedUniversity: "UCSD",
				AdmittedProgram:    "MS CS",
				GPA:                "3.6/4.0",
				LanguageScore:      "102",
				LanguageTestType:   "TOEFL",
				UndergraduateInfo:  "985 school, CS major",
				Comparison:         report.CaseComparison{GPA: "similar", University: "comparable", Experience: "stronger internships"},
				SuccessFactors:     "Solid projects",
				Takeaways:          "Add an internship",
			},
			{
				CaseID:             8,
				AdmittedUniversity: "NUS",
				AdmittedProgram:    "MComp",
				GPA:                "86/100",
				LanguageScore:      "7",
				UndergraduateInfo:  "211 school, SE major",
				Comparison:         report.CaseComparison{GPA: "lower", University: "comparable", Experience: "similar"},
				SuccessFactors:     "Strong statement",
				Takeaways:          "GPA is not a blocker",
			},
		},
		BackgroundImprovement: &report.BackgroundImprovement{
			ActionPlan: []report.ActionPlan{
				{Timeframe: "Next 3 months", Action: "Join a research project", Goal: "One publication draft"},
				{Timeframe: "Summer", Action: "Industry internship", Goal: "Production experience"},
			},
			StrategySummary: "Prioritize research exposure before applications open.",
		},
	}
}

func TestCompose_FourTabsInOrder(t *testing.T) {
	v := Compose(sampleReport())

	require.Len(t, v.Tabs, 4)
	assert.Equal(t, TabCompetitiveness, v.Tabs[0].ID)
	assert.Equal(t, TabSchools, v.Tabs[1].ID)
	assert.Equal(t, TabCases, v.Tabs[2].ID)
	assert.Equal(t, TabImprovement, v.Tabs[3].ID)
}

func TestCompose_TierColumns(t *testing.T) {
	v := Compose(sampleReport())

	require.Len(t, v.Schools.Tiers, 3)
	assert.Equal(t, "reach", v.Schools.Tiers[0].Key)
	assert.Equal(t, "target", v.Schools.Tiers[1].Key)
	assert.Equal(t, "safety", v.Schools.Tiers[2].Key)
	assert.Equal(t, "MIT", v.Schools.Tiers[0].Schools[0].University)
	assert.NotEmpty(t, v.Schools.CaseInsights)
}

func TestCompose_TestTypeTagOnlyWhenPresent(t *testing.T) {
	v := Compose(sampleReport())

	require.Len(t, v.Cases.Cards, 2)
	assert.True(t, v.Cases.Cards[0].HasTestType)
	assert.Equal(t, "TOEFL", v.Cases.Cards[0].TestType)
	assert.False(t, v.Cases.Cards[1].HasTestType)
}

func TestCompose_ImprovementPresent(t *testing.T) {
	v := Compose(sampleReport())

	assert.True(t, v.Improvement.Available)
	require.Len(t, v.Improvement.Plan, 2)
	assert.Equal(t, "Next 3 months", v.Improvement.Plan[0].Timeframe)
	assert.Empty(t, v.Improvement.Notice)
}

func TestCompose_ImprovementAbsentGetsNotice(t *testing.T) {
	r := sampleReport()
	r.BackgroundImprovement = nil

	v := Compose(r)

	assert.False(t, v.Improvement.Available)
	assert.Empty(t, v.Improvement.Plan)
	assert.Equal(t, ImprovementUnavailableNotice, v.Improvement.Notice)
}

func TestCompose_DoesNotMutateReport(t *testing.T) {
	r := sampleReport()
	before := *r

	_ = Compose(r)

	assert.Equal(t, before.Competitiveness, r.Competitiveness)
	assert.Equal(t, len(before.SimilarCases), len(r.SimilarCases))
}

func TestPlaceholderRadar_FiveAxes(t *testing.T) {
	proj := PlaceholderRadar()

	require.Len(t, proj.Axes, 5)
	require.Len(t, proj.Values, 5)
	for _, v := range proj.Values {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(100))
	}
}
