package models

// Category buckets the 0-100 biological impact score. The score measures
// penalty magnitude, so a low score maps to CategoryHigh (best wellness).
type Category string

const (
	CategoryHigh     Category = "High"
	CategoryModerate Category = "Moderate"
	CategoryLow      Category = "Low"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a single advisory card. ID is stable per threshold band
// and is what completion tracking keys on.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	XP          int      `json:"xp"`
	Priority    Priority `json:"priority"`
}

// ScoreResult is the full outcome of one score calculation.
type ScoreResult struct {
	Score                int              `json:"score"`
	Category             Category         `json:"category"`
	Message              string           `json:"message"`
	Persona              string           `json:"persona"`
	PersonaDescription   string           `json:"personaDescription"`
	PredictedStressLevel float64          `json:"predictedStressLevel"`
	Recommendations      []Recommendation `json:"recommendations"`
}
