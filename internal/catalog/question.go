package catalog

import "strings"

// QuestionType selects how a question is answered and scored.
type QuestionType string

const (
	TypeLikert         QuestionType = "likert"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeAptitude       QuestionType = "aptitude"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeLikert, TypeMultipleChoice, TypeAptitude:
		return true
	}
	return false
}

// Likert answers are integers on this closed scale.
const (
	LikertMin = 1
	LikertMax = 5
)

// LikertLabels names the two ends of a likert scale.
type LikertLabels struct {
	Left  string `yaml:"left" json:"left"`
	Right string `yaml:"right" json:"right"`
}

// Question is a single catalog entry. CorrectAnswer is only meaningful for
// aptitude questions and indexes into Options.
type Question struct {
	ID            string        `yaml:"id" json:"id" validate:"required"`
	Type          QuestionType  `yaml:"type" json:"type" validate:"required,oneof=likert multiple-choice aptitude"`
	Category      string        `yaml:"category" json:"category" validate:"required"`
	Prompt        string        `yaml:"question" json:"question" validate:"required"`
	Options       []string      `yaml:"options,omitempty" json:"options,omitempty"`
	LikertLabels  *LikertLabels `yaml:"likert_labels,omitempty" json:"likertLabels,omitempty"`
	CorrectAnswer *int          `yaml:"correct_answer,omitempty" json:"correctAnswer,omitempty"`
}

// Section is an explicit scoring group derived from the free-text category.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
)

var (
	psychometricMarkers = []string{"Interest", "Personality", "Work Style"}
	technicalMarkers    = []string{"Mathematical", "Statistical", "Data Analysis"}
)

// IsPsychometric reports whether the category names an interest,
// personality or work style trait. Matching is case-sensitive.
func (q Question) IsPsychometric() bool {
	return containsAny(q.Category, psychometricMarkers)
}

// IsTechnical reports whether the category names a quantitative area or
// the question is an aptitude item.
func (q Question) IsTechnical() bool {
	return q.Type == TypeAptitude || containsAny(q.Category, technicalMarkers)
}

// Sections returns every section the question belongs to. A question can
// be in both or in neither.
func (q Question) Sections() []Section {
	var s []Section
	if q.IsPsychometric() {
		s = append(s, SectionPsychometric)
	}
	if q.IsTechnical() {
		s = append(s, SectionTechnical)
	}
	return s
}

// IsCorrect reports whether answer matches the designated correct option.
// Questions without a correct option never match.
func (q Question) IsCorrect(answer int) bool {
	return q.CorrectAnswer != nil && *q.CorrectAnswer == answer
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
