package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/fitcheck/internal/assessment"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/dshills/fitcheck/internal/config"
	"github.com/dshills/fitcheck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Pure function tests ---

func TestTierMeetsThreshold(t *testing.T) {
	tests := []struct {
		tier    assessment.Recommendation
		failOn  string
		want    bool
		wantErr bool
	}{
		{assessment.RecommendationStrongFit, "strong-fit", true, false},
		{assessment.RecommendationStrongFit, "good-fit", false, false},
		{assessment.RecommendationGoodFit, "good-fit", true, false},
		{assessment.RecommendationGoodFit, "needs-preparation", false, false},
		{assessment.RecommendationNeedsPreparation, "NEEDS-PREPARATION", true, false},
		{assessment.RecommendationPoorFit, "needs-preparation", true, false},
		{assessment.RecommendationPoorFit, "poor-fit", true, false},
		{assessment.Recommendation("bogus"), "poor-fit", false, false},
		{assessment.RecommendationPoorFit, "terrible", false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier)+"/"+tt.failOn, func(t *testing.T) {
			got, err := tierMeetsThreshold(tt.tier, tt.failOn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnswer(t *testing.T) {
	likert := catalog.Question{Type: catalog.TypeLikert}
	choice := catalog.Question{Type: catalog.TypeMultipleChoice, Options: []string{"w", "x", "y", "z"}}

	tests := []struct {
		name    string
		q       catalog.Question
		in      string
		want    int
		wantErr bool
	}{
		{"likert low", likert, "1", 1, false},
		{"likert high", likert, "5", 5, false},
		{"likert zero", likert, "0", 0, true},
		{"likert six", likert, "6", 0, true},
		{"likert letter", likert, "a", 0, true},
		{"choice first", choice, "A", 0, false},
		{"choice lower", choice, "d", 3, false},
		{"choice out of range", choice, "e", 0, true},
		{"choice digit", choice, "1", 0, true},
		{"choice word", choice, "ab", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswer(tt.q, tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Command tests ---

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func assertExitCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if wantCode == 0 {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	var ee *exitErr
	require.True(t, errors.As(err, &ee), "expected exitErr, got %T: %v", err, err)
	assert.Equal(t, wantCode, ee.code, ee.msg)
}

const strongAnswers = `catalog: statistical-modeling
answers:
  psych_1: 5
  psych_2: 5
  wiscar_interest: 5
  wiscar_will: 5
  final_commitment: 5
  wiscar_skill: 3
  wiscar_cognitive: 1
  wiscar_learning: 5
  domain_2: 5
  wiscar_reality: 0
  work_2: 3
  tech_1: 1
  tech_2: 2
  tech_3: 1
`

func TestScoreJSON(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "answers.yaml", strongAnswers)

	res := execute(t, "", "score", path)
	assertExitCode(t, res.err, 0)

	var r assessment.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &r))
	assert.Equal(t, toolName, r.Tool)
	assert.Equal(t, version, r.Version)
	assert.Equal(t, "answers.yaml", r.Input.AnswersFile)
	assert.True(t, strings.HasPrefix(r.Input.AnswersHash, "sha256:"))
	assert.Equal(t, catalog.DefaultName, r.Input.Catalog)
	assert.Equal(t, 14, r.Input.Answered)
	assert.Equal(t, 19, r.Input.Total)
	assert.Equal(t, 100, r.Score.TechnicalScore)
	assert.Equal(t, 105, r.Score.WISCAR.Skill)
	assert.Equal(t, 101, r.Score.ConfidenceScore)
	assert.Equal(t, assessment.RecommendationStrongFit, r.Score.OverallRecommendation)
	assert.Len(t, r.CareerPaths, 5)
	assert.Empty(t, r.Findings)
}

func TestScoreMarkdownToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "answers.yaml", strongAnswers)
	out := filepath.Join(dir, "report.md")

	res := execute(t, "", "score", path, "--format", "md", "--out", out)
	assertExitCode(t, res.err, 0)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Assessment Results")
	assert.Contains(t, string(data), "(strong-fit)")
}

func TestScoreJSONAnswersFile(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "answers.json", `{"answers": {}}`)

	res := execute(t, "", "score", path)
	assertExitCode(t, res.err, 0)

	var r assessment.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &r))
	assert.Equal(t, 50, r.Score.PsychometricFit)
	assert.Equal(t, 0, r.Score.TechnicalScore)
	assert.Equal(t, 47, r.Score.ConfidenceScore)
	assert.Equal(t, 0, r.Input.Answered)
}

func TestScoreFindings(t *testing.T) {
	content := "answers:\n  psych_1: 9\n  nope: 1\n"
	path := writeTempFile(t, t.TempDir(), "answers.yaml", content)

	res := execute(t, "", "score", path)
	assertExitCode(t, res.err, 0)
	var r assessment.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &r))
	assert.Len(t, r.Findings, 2)

	res = execute(t, "", "score", path, "--strict")
	assertExitCode(t, res.err, exitValidation)
	assert.Contains(t, res.stderr, "answers.nope")
}

func TestScoreFailOn(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "answers.yaml", "answers: {}\n")

	// Empty answers land in needs-preparation.
	assertExitCode(t, execute(t, "", "score", path, "--fail-on", "needs-preparation").err, exitFailOn)
	assertExitCode(t, execute(t, "", "score", path, "--fail-on", "poor-fit").err, 0)
	assertExitCode(t, execute(t, "", "score", path, "--fail-on", "bogus").err, exitInput)
}

func TestScoreInputErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeTempFile(t, dir, "answers.yaml", "answers: {}\n")
	unknownKey := writeTempFile(t, dir, "extra.yaml", "answers: {}\nuser: sam\n")
	badYAML := writeTempFile(t, dir, "bad.yaml", "answers: [\n")

	assertExitCode(t, execute(t, "", "score", filepath.Join(dir, "missing.yaml")).err, exitInput)
	assertExitCode(t, execute(t, "", "score", badYAML).err, exitInput)
	assertExitCode(t, execute(t, "", "score", unknownKey).err, exitValidation)
	assertExitCode(t, execute(t, "", "score", good, "--format", "xml").err, exitInput)
	assertExitCode(t, execute(t, "", "score", good, "--catalog", "nonexistent").err, exitInput)
}

func TestScoreNonIntegerAnswers(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"string", "answers:\n  psych_1: abc\n"},
		{"float", "answers:\n  psych_1: 2.5\n"},
		{"null", "answers:\n  psych_1: ~\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, dir, tt.name+".yaml", tt.content)
			var out, errOut bytes.Buffer
			cfg := &config.Config{Format: "json"}

			err := runScore(path, cfg, logging.NewNop(), &out, &errOut)
			assertExitCode(t, err, exitValidation)
			assert.Contains(t, errOut.String(), "answers.psych_1")
			assert.Empty(t, out.String())
		})
	}
}

func TestRunScoreDirect(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "answers.yaml", strongAnswers)
	var out, errOut bytes.Buffer
	cfg := &config.Config{Format: "md", FailOn: "good-fit"}

	err := runScore(path, cfg, logging.NewNop(), &out, &errOut)
	assertExitCode(t, err, 0)
	assert.Contains(t, out.String(), "# Assessment Results")
	assert.Empty(t, errOut.String())
}

func TestScoreInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	cat := writeTempFile(t, dir, "broken.yaml", `name: broken
version: 1
questions:
  - id: q1
    type: aptitude
    category: Data Analysis
    question: Pick one.
    options: [a, b]
`)
	answersPath := writeTempFile(t, dir, "answers.yaml", "answers: {q1: 0}\n")

	res := execute(t, "", "score", answersPath, "--catalog", cat)
	assertExitCode(t, res.err, exitValidation)
	assert.Contains(t, res.stderr, "questions[0].correct_answer")
}

func TestScoreCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	cat := writeTempFile(t, dir, "mini.yaml", `name: mini
version: 3
questions:
  - id: q1
    type: likert
    category: Personality
    question: I finish what I start.
  - id: q2
    type: aptitude
    category: Statistical Concepts
    question: Median of 1, 2, 9?
    options: ["2", "4"]
    correct_answer: 0
`)
	answersPath := writeTempFile(t, dir, "answers.yaml", "answers: {q1: 4, q2: 0}\n")

	res := execute(t, "", "score", answersPath, "--catalog", cat)
	assertExitCode(t, res.err, 0)
	var r assessment.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &r))
	assert.Equal(t, "mini", r.Input.Catalog)
	assert.Equal(t, 3, r.Input.CatalogVersion)
	assert.Equal(t, 80, r.Score.PsychometricFit)
	assert.Equal(t, 100, r.Score.TechnicalScore)
}

func TestTake(t *testing.T) {
	c, err := catalog.LoadBuiltin(catalog.DefaultName)
	require.NoError(t, err)

	// One line per question: likert gets 4, choices get B. The first
	// question is answered, revisited with p, and kept with an empty line.
	lines := []string{"4", "p", ""}
	for _, q := range c.Questions[1:] {
		if q.Type == catalog.TypeLikert {
			lines = append(lines, "4")
		} else {
			lines = append(lines, "b")
		}
	}
	res := execute(t, strings.Join(lines, "\n")+"\n", "take", "--format", "json")
	assertExitCode(t, res.err, 0)
	assert.Contains(t, res.stderr, "[1/19]")
	assert.Contains(t, res.stderr, "[19/19]")

	var r assessment.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &r))
	assert.NotEmpty(t, r.SessionID)
	assert.Equal(t, 19, r.Input.Answered)
	assert.Equal(t, 80, r.Score.PsychometricFit)
	// B is correct for tech_1, tech_3 and wiscar_cognitive but not tech_2.
	assert.Equal(t, 75, r.Score.TechnicalScore)
}

func TestTakeRetriesInvalidInput(t *testing.T) {
	c, err := catalog.LoadBuiltin(catalog.DefaultName)
	require.NoError(t, err)

	lines := []string{"", "9", "3"}
	for _, q := range c.Questions[1:] {
		if q.Type == catalog.TypeLikert {
			lines = append(lines, "3")
		} else {
			lines = append(lines, "a")
		}
	}
	res := execute(t, strings.Join(lines, "\n"), "take", "--format", "md")
	assertExitCode(t, res.err, 0)
	assert.Contains(t, res.stderr, "Please choose an answer.")
	assert.Contains(t, res.stderr, "Please enter a number from 1 to 5.")
	assert.Contains(t, res.stdout, "# Assessment Results")
}

func TestTakeInputEnds(t *testing.T) {
	res := execute(t, "4\n5\n", "take")
	assertExitCode(t, res.err, exitInput)
}

func TestCatalogCommand(t *testing.T) {
	res := execute(t, "", "catalog")
	assertExitCode(t, res.err, 0)
	assert.Contains(t, res.stdout, catalog.DefaultName)

	res = execute(t, "", "catalog", catalog.DefaultName)
	assertExitCode(t, res.err, 0)
	assert.Contains(t, res.stdout, "19 questions: 10 likert, 5 multiple-choice, 4 aptitude")
	assert.Contains(t, res.stdout, "wiscar_cognitive")
	assert.Contains(t, res.stdout, "technical")

	assertExitCode(t, execute(t, "", "catalog", "nonexistent").err, exitInput)
}
