package assessment

import (
	"math"

	"github.com/dshills/fitcheck/internal/answers"
	"github.com/dshills/fitcheck/internal/catalog"
)

// Fallbacks used when a section has nothing to score.
const (
	DefaultPsychometricFit = 50
	DefaultTechnicalScore  = 50
)

// Question IDs feeding the WISCAR dimensions.
const (
	IDWill            = "wiscar_will"
	IDFinalCommitment = "final_commitment"
	IDInterest        = "wiscar_interest"
	IDEnjoysNumbers   = "psych_1"
	IDSkill           = "wiscar_skill"
	IDCognitive       = "wiscar_cognitive"
	IDLogicPuzzles    = "psych_2"
	IDLearning        = "wiscar_learning"
	IDProgramming     = "domain_2"
	IDReality         = "wiscar_reality"
	IDProblemSolving  = "work_2"
)

// Compute scores answers against questions. It never fails: missing
// answers fall back to fixed defaults, and neither argument is modified.
func Compute(questions []catalog.Question, ans answers.Set) Score {
	psych := PsychometricFit(questions, ans)
	tech := TechnicalScore(questions, ans)
	w := ComputeWISCAR(ans, tech)

	s := Score{
		PsychometricFit: psych,
		TechnicalScore:  tech,
		WISCAR:          w,
	}
	s.ConfidenceScore = roundHalfUp(mean(s.Components()))
	s.OverallRecommendation = TierFor(s.ConfidenceScore)
	return s
}

// PsychometricFit averages the positive likert answers in the
// psychometric section and maps the 1-5 scale onto 20-100.
func PsychometricFit(questions []catalog.Question, ans answers.Set) int {
	var values []int
	for _, q := range questions {
		if !q.IsPsychometric() || q.Type != catalog.TypeLikert {
			continue
		}
		if v, ok := ans.Get(q.ID); ok && v > 0 {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return DefaultPsychometricFit
	}
	return roundHalfUp(mean(values) * 20)
}

// TechnicalScore is the percentage of aptitude questions in the technical
// section answered with their correct option. Unanswered counts as wrong.
func TechnicalScore(questions []catalog.Question, ans answers.Set) int {
	var count, correct int
	for _, q := range questions {
		if !q.IsTechnical() || q.Type != catalog.TypeAptitude {
			continue
		}
		count++
		if v, ok := ans.Get(q.ID); ok && q.IsCorrect(v) {
			correct++
		}
	}
	if count == 0 {
		return DefaultTechnicalScore
	}
	return roundHalfUp(float64(correct) / float64(count) * 100)
}

// ComputeWISCAR derives the six WISCAR dimensions from fixed questions.
func ComputeWISCAR(ans answers.Set, technicalScore int) WISCAR {
	// Explicit float64 conversion keeps the multiply from fusing with the add.
	skill := float64(valueOr(ans, IDSkill, 1)*25) + float64(float64(technicalScore)*0.3)

	return WISCAR{
		Will:      (valueOr(ans, IDWill, 3) + valueOr(ans, IDFinalCommitment, 3)) * 10,
		Interest:  (valueOr(ans, IDInterest, 3) + valueOr(ans, IDEnjoysNumbers, 3)) * 10,
		Skill:     roundHalfUp(skill),
		Cognitive: (pick(ans, IDCognitive, 1, 5, 3) + valueOr(ans, IDLogicPuzzles, 3)) * 10,
		Ability:   (valueOr(ans, IDLearning, 3) + valueOr(ans, IDProgramming, 3)) * 10,
		RealWorld: (pick(ans, IDReality, 0, 5, 3) + pick(ans, IDProblemSolving, 3, 5, 3)) * 10,
	}
}

// valueOr returns the answer for id, or def when it is absent or zero.
func valueOr(ans answers.Set, id string, def int) int {
	if v, ok := ans.Get(id); ok && v != 0 {
		return v
	}
	return def
}

// pick returns hit when id was answered with want, miss otherwise.
func pick(ans answers.Set, id string, want, hit, miss int) int {
	if v, ok := ans.Get(id); ok && v == want {
		return hit
	}
	return miss
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
