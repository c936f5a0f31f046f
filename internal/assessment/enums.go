package assessment

// Recommendation is the overall fit tier selected from the confidence score.
type Recommendation string

const (
	RecommendationStrongFit        Recommendation = "strong-fit"
	RecommendationGoodFit          Recommendation = "good-fit"
	RecommendationNeedsPreparation Recommendation = "needs-preparation"
	RecommendationPoorFit          Recommendation = "poor-fit"
)

// Lower bounds (inclusive) of each tier.
const (
	StrongFitThreshold        = 80
	GoodFitThreshold          = 65
	NeedsPreparationThreshold = 45
)

func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationStrongFit, RecommendationGoodFit, RecommendationNeedsPreparation, RecommendationPoorFit:
		return true
	}
	return false
}

// Level orders tiers from best (0) to worst (3). Unknown tiers return -1.
func (r Recommendation) Level() int {
	switch r {
	case RecommendationStrongFit:
		return 0
	case RecommendationGoodFit:
		return 1
	case RecommendationNeedsPreparation:
		return 2
	case RecommendationPoorFit:
		return 3
	default:
		return -1
	}
}

// AllRecommendations returns every tier from best to worst.
func AllRecommendations() []Recommendation {
	return []Recommendation{
		RecommendationStrongFit,
		RecommendationGoodFit,
		RecommendationNeedsPreparation,
		RecommendationPoorFit,
	}
}

// TierFor maps a confidence score to its recommendation tier.
func TierFor(confidence int) Recommendation {
	switch {
	case confidence >= StrongFitThreshold:
		return RecommendationStrongFit
	case confidence >= GoodFitThreshold:
		return RecommendationGoodFit
	case confidence >= NeedsPreparationThreshold:
		return RecommendationNeedsPreparation
	default:
		return RecommendationPoorFit
	}
}

// Details is the human-facing summary of a tier.
type Details struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Details returns the headline, description and suggested next action for r.
func (r Recommendation) Details() Details {
	switch r {
	case RecommendationStrongFit:
		return Details{
			Title:       "Strong Fit - Excellent Match!",
			Description: "You have strong alignment across personality, technical skills, and career interests.",
			Action:      "Start your journey today",
		}
	case RecommendationGoodFit:
		return Details{
			Title:       "Good Fit - Great Potential",
			Description: "You show strong potential with some areas for development.",
			Action:      "Focus on skill development",
		}
	case RecommendationNeedsPreparation:
		return Details{
			Title:       "Needs Preparation",
			Description: "Build foundational skills before pursuing this career path.",
			Action:      "Start with prerequisites",
		}
	default:
		return Details{
			Title:       "Consider Alternatives",
			Description: "This career path may not align well with your current profile.",
			Action:      "Explore related fields",
		}
	}
}
