// Package report defines the structured analysis result returned by the
// positioning service. A report is read-only once received; the session
// owns it for the lifetime of the report view and discards it on
// back-navigation.
package report

// Competitiveness summarizes the applicant's standing in free text.
type Competitiveness struct {
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
	Summary    string `json:"summary"`
}

// School is a single recommended institution/program pair.
type School struct {
	University string `json:"university"`
	Program    string `json:"program"`
	Reason     string `json:"reason"`
}

// SchoolRecommendations groups suggestions into reach/target/safety tiers.
type SchoolRecommendations struct {
	Reach        []School `json:"reach"`
	Target       []School `json:"target"`
	Safety       []School `json:"safety"`
	CaseInsights string   `json:"case_insights"`
}

// CaseComparison contrasts the applicant with an admitted case.
type CaseComparison struct {
	GPA        string `json:"gpa"`
	University string `json:"university"`
	Experience string `json:"experience"`
}

// CaseAnalysis is one comparable admitted-applicant record.
type CaseAnalysis struct {
	CaseID             int            `json:"case_id"`
	AdmittedUniversity string         `json:"admitted_university"`
	AdmittedProgram    string         `json:"admitted_program"`
	GPA                string         `json:"gpa"`
	LanguageScore      string         `json:"language_score"`
	LanguageTestType   string         `json:"language_test_type,omitempty"`
	KeyExperiences     string         `json:"key_experiences,omitempty"`
	UndergraduateInfo  string         `json:"undergraduate_info"`
	Comparison         CaseComparison `json:"comparison"`
	SuccessFactors     string         `json:"success_factors"`
	Takeaways          string         `json:"takeaways"`
}

// ActionPlan is one chronological step of the improvement plan.
type ActionPlan struct {
	Timeframe string `json:"timeframe"`
	Action    string `json:"action"`
	Goal      string `json:"goal"`
}

// BackgroundImprovement is the optional improvement section. The service
// may omit it entirely; absence is a valid terminal state, not an error.
type BackgroundImprovement struct {
	ActionPlan      []ActionPlan `json:"action_plan"`
	StrategySummary string       `json:"strategy_summary"`
}

// Report is the complete analysis result.
type Report struct {
	Competitiveness       Competitiveness        `json:"competitiveness"`
	SchoolRecommendations SchoolRecommendations  `json:"school_recommendations"`
	SimilarCases          []CaseAnalysis         `json:"similar_cases"`
	BackgroundImprovement *BackgroundImprovement `json:"background_improvement,omitempty"`
}

// HasImprovement reports whether the service returned an improvement plan.
func (r *Report) HasImprovement() bool {
	return r.BackgroundImprovement != nil
}
