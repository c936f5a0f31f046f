package schema

import (
	"testing"

	"github.com/dshills/fitcheck/internal/answers"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(v int) *int { return &v }

func paths(errs []ValidationError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Path)
	}
	return out
}

func validCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Name:    "mini",
		Version: 1,
		Questions: []catalog.Question{
			{ID: "psych_1", Type: catalog.TypeLikert, Category: "Interest Assessment", Prompt: "I like numbers."},
			{ID: "work_2", Type: catalog.TypeMultipleChoice, Category: "Work Style", Prompt: "Pick one.", Options: []string{"a", "b", "c", "d"}},
			{ID: "tech_1", Type: catalog.TypeAptitude, Category: "Mathematical Foundation", Prompt: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: intPtr(1)},
		},
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{"answers.psych_1", "unknown question"}
	assert.Equal(t, "answers.psych_1: unknown question", e.Error())
}

func TestValidateCatalogBuiltin(t *testing.T) {
	c, err := catalog.LoadBuiltin(catalog.DefaultName)
	require.NoError(t, err)
	assert.Empty(t, ValidateCatalog(c))
}

func TestValidateCatalogValid(t *testing.T) {
	assert.Empty(t, ValidateCatalog(validCatalog()))
}

func TestValidateCatalogStructTags(t *testing.T) {
	c := validCatalog()
	c.Name = ""
	c.Version = 0
	c.Questions[0].Prompt = ""
	c.Questions[1].Type = "essay"

	got := paths(ValidateCatalog(c))
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "version")
	assert.Contains(t, got, "questions[0].question")
	assert.Contains(t, got, "questions[1].type")
}

func TestValidateCatalogNoQuestions(t *testing.T) {
	c := validCatalog()
	c.Questions = nil
	assert.Contains(t, paths(ValidateCatalog(c)), "questions")
}

func TestValidateCatalogSemantics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *catalog.Catalog)
		path   string
	}{
		{"duplicate id", func(c *catalog.Catalog) { c.Questions[1].ID = "psych_1" }, "questions[1].id"},
		{"likert with options", func(c *catalog.Catalog) { c.Questions[0].Options = []string{"x"} }, "questions[0].options"},
		{"likert with key", func(c *catalog.Catalog) { c.Questions[0].CorrectAnswer = intPtr(0) }, "questions[0].correct_answer"},
		{"choice too few options", func(c *catalog.Catalog) { c.Questions[1].Options = []string{"only"} }, "questions[1].options"},
		{"choice with key", func(c *catalog.Catalog) { c.Questions[1].CorrectAnswer = intPtr(0) }, "questions[1].correct_answer"},
		{"aptitude missing key", func(c *catalog.Catalog) { c.Questions[2].CorrectAnswer = nil }, "questions[2].correct_answer"},
		{"aptitude key out of range", func(c *catalog.Catalog) { c.Questions[2].CorrectAnswer = intPtr(2) }, "questions[2].correct_answer"},
		{"aptitude negative key", func(c *catalog.Catalog) { c.Questions[2].CorrectAnswer = intPtr(-1) }, "questions[2].correct_answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)
			assert.Contains(t, paths(ValidateCatalog(c)), tt.path)
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	questions := validCatalog().Questions

	assert.Empty(t, ValidateAnswers(questions, answers.Set{"psych_1": 5, "work_2": 3, "tech_1": 0}))
	assert.Empty(t, ValidateAnswers(questions, answers.Set{}))

	errs := ValidateAnswers(questions, answers.Set{
		"psych_1": 6,
		"work_2":  4,
		"tech_1":  -1,
		"bogus":   1,
	})
	assert.Equal(t, []string{"answers.bogus", "answers.psych_1", "answers.tech_1", "answers.work_2"}, paths(errs))
}

func TestValidateAnswersLikertBounds(t *testing.T) {
	questions := validCatalog().Questions
	for _, v := range []int{1, 5} {
		assert.Empty(t, ValidateAnswers(questions, answers.Set{"psych_1": v}), v)
	}
	for _, v := range []int{0, 6, -2} {
		assert.Len(t, ValidateAnswers(questions, answers.Set{"psych_1": v}), 1, v)
	}
}

func TestValidateAnswersDocument(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{"valid", "catalog: statistical-modeling\nanswers:\n  psych_1: 5\n", true},
		{"empty answers", "answers: {}\n", true},
		{"json", `{"answers": {"tech_1": 1}}`, true},
		{"missing answers", "catalog: statistical-modeling\n", false},
		{"non-integer", "answers:\n  psych_1: 2.5\n", false},
		{"string value", "answers:\n  psych_1: high\n", false},
		{"unknown key", "answers: {}\nuser: bob\n", false},
		{"not an object", "- 1\n- 2\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc any
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &doc))
			errs := ValidateAnswersDocument(doc)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}
