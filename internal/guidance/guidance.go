// Package guidance derives the display-only career matches and learning
// checkpoints shown next to an assessment score.
package guidance

// Match strength labels.
const (
	StrengthStrong = "Strong"
	StrengthGood   = "Good"
	StrengthFair   = "Fair"
)

// CareerMatch is a related role and how well the confidence score fits it.
type CareerMatch struct {
	Title    string `json:"title"`
	Match    int    `json:"match"`
	Strength string `json:"strength"`
}

// Checkpoint is a learning path step, completed once the technical score
// clears its bar.
type Checkpoint struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

var careers = []struct {
	title  string
	offset int
}{
	{"Statistical Modeling Analyst", 0},
	{"Data Scientist (Modeling Focus)", 10},
	{"Quantitative Analyst", 15},
	{"Biostatistician", 20},
	{"Business Analyst", 25},
}

// never marks a checkpoint that no score completes.
const never = -1

var checkpoints = []struct {
	title string
	above int
}{
	{"Foundation: Statistics & Probability", 70},
	{"Programming: Python/R Basics", 50},
	{"Intermediate: Regression Analysis", 80},
	{"Advanced: Machine Learning Models", 90},
	{"Professional: Industry Applications", never},
}

// CareerMatches offsets the confidence score per role, floored at zero.
func CareerMatches(confidence int) []CareerMatch {
	out := make([]CareerMatch, 0, len(careers))
	for _, c := range careers {
		m := confidence - c.offset
		if c.offset > 0 && m < 0 {
			m = 0
		}
		out = append(out, CareerMatch{Title: c.title, Match: m, Strength: Strength(m)})
	}
	return out
}

// Strength labels a match percentage.
func Strength(match int) string {
	switch {
	case match > 70:
		return StrengthStrong
	case match > 50:
		return StrengthGood
	default:
		return StrengthFair
	}
}

// LearningPath marks each checkpoint completed when technicalScore is
// strictly above its bar.
func LearningPath(technicalScore int) []Checkpoint {
	out := make([]Checkpoint, 0, len(checkpoints))
	for _, c := range checkpoints {
		out = append(out, Checkpoint{
			Title:     c.title,
			Completed: c.above != never && technicalScore > c.above,
		})
	}
	return out
}
