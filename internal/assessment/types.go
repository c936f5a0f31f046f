// Package assessment scores a completed questionnaire and defines the
// report written for it.
package assessment

import "github.com/dshills/fitcheck/internal/guidance"

// Score is the result of scoring one answer set. All fields are
// percentages; Skill, and through it Confidence, can exceed 100.
// Answers outside the likert scale or option range are scored as given,
// so dimensions grow with them. Integer math wraps for answers beyond
// about MaxInt/25; schema.ValidateAnswers reports such input.
type Score struct {
	PsychometricFit       int            `json:"psychometricFit"`
	TechnicalScore        int            `json:"technicalScore"`
	WISCAR                WISCAR         `json:"wiscar"`
	OverallRecommendation Recommendation `json:"overallRecommendation"`
	ConfidenceScore       int            `json:"confidenceScore"`
}

// WISCAR holds the six Will, Interest, Skill, Cognitive, Ability and
// Real-world dimensions.
type WISCAR struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"realWorld"`
}

// Components returns the eight percentages averaged into the confidence score.
func (s Score) Components() []int {
	return []int{
		s.PsychometricFit,
		s.TechnicalScore,
		s.WISCAR.Will,
		s.WISCAR.Interest,
		s.WISCAR.Skill,
		s.WISCAR.Cognitive,
		s.WISCAR.Ability,
		s.WISCAR.RealWorld,
	}
}

// Report is the top-level output object.
type Report struct {
	Tool         string                 `json:"tool"`
	Version      string                 `json:"version"`
	SessionID    string                 `json:"sessionId,omitempty"`
	Input        Input                  `json:"input"`
	Score        Score                  `json:"score"`
	Details      Details                `json:"details"`
	CareerPaths  []guidance.CareerMatch `json:"careerPaths"`
	LearningPath []guidance.Checkpoint  `json:"learningPath"`
	Findings     []Finding              `json:"findings,omitempty"`
}

// Input describes the catalog and answers that produced the report.
type Input struct {
	AnswersFile    string `json:"answersFile,omitempty"`
	AnswersHash    string `json:"answersHash,omitempty"`
	Catalog        string `json:"catalog"`
	CatalogVersion int    `json:"catalogVersion"`
	Answered       int    `json:"answered"`
	Total          int    `json:"total"`
}

// Finding is a non-fatal problem noticed in the answers.
type Finding struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// NewReport assembles a report for score, deriving the tier details and
// the display-only career and learning guidance.
func NewReport(tool, version string, in Input, score Score) *Report {
	return &Report{
		Tool:         tool,
		Version:      version,
		Input:        in,
		Score:        score,
		Details:      score.OverallRecommendation.Details(),
		CareerPaths:  guidance.CareerMatches(score.ConfidenceScore),
		LearningPath: guidance.LearningPath(score.TechnicalScore),
	}
}
