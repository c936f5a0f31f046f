// Package render produces Markdown output from an assessment report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/fitcheck/internal/assessment"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *assessment.Report) string {
	var b strings.Builder
	s := r.Score

	b.WriteString("# Assessment Results\n\n")
	fmt.Fprintf(&b, "**Recommendation:** %s (%s)\n", r.Details.Title, s.OverallRecommendation)
	fmt.Fprintf(&b, "**Confidence:** %d%%\n", s.ConfidenceScore)
	if r.Input.Total > 0 {
		fmt.Fprintf(&b, "**Answered:** %d of %d\n", r.Input.Answered, r.Input.Total)
	}
	b.WriteString("\n")
	if r.Details.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Details.Description)
	}

	// Score breakdown
	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Component | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Psychometric Fit | %d%% |\n", s.PsychometricFit)
	fmt.Fprintf(&b, "| Technical Readiness | %d%% |\n", s.TechnicalScore)
	b.WriteString("\n")

	b.WriteString("### WISCAR Analysis\n\n")
	b.WriteString("| Dimension | Score |\n|---|---|\n")
	for _, d := range []struct {
		name  string
		value int
	}{
		{"Will", s.WISCAR.Will},
		{"Interest", s.WISCAR.Interest},
		{"Skill", s.WISCAR.Skill},
		{"Cognitive", s.WISCAR.Cognitive},
		{"Ability", s.WISCAR.Ability},
		{"Real-World Fit", s.WISCAR.RealWorld},
	} {
		fmt.Fprintf(&b, "| %s | %d%% |\n", d.name, d.value)
	}
	b.WriteString("\n")

	if len(r.CareerPaths) > 0 {
		b.WriteString("## Recommended Career Paths\n\n")
		for _, c := range r.CareerPaths {
			fmt.Fprintf(&b, "- %s: %d%% (%s)\n", c.Title, c.Match, c.Strength)
		}
		b.WriteString("\n")
	}

	if len(r.LearningPath) > 0 {
		b.WriteString("## Recommended Learning Path\n\n")
		for _, c := range r.LearningPath {
			mark := " "
			if c.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, c.Title)
		}
		b.WriteString("\n")
	}

	if r.Details.Action != "" {
		fmt.Fprintf(&b, "**Next step:** %s\n\n", r.Details.Action)
	}

	if len(r.Findings) > 0 {
		b.WriteString("## Answer Findings\n\n")
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "- `%s`: %s\n", f.Path, f.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}
