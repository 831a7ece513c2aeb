package services

import (
	"math"

	"calmquest/config"
	"calmquest/models"
)

// Penalties holds one 0-1 badness value per metric. 0 is ideal.
type Penalties struct {
	Sleep      float64
	Screen     float64
	Exercise   float64
	Water      float64
	Meditation float64
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// SleepPenalty is 0 at exactly 8h and reaches 1 at 4h or 12h.
func SleepPenalty(hours float64) float64 {
	return clamp01(math.Abs(hours-8) / 4)
}

// ScreenPenalty is 0 up to 4h and reaches 1 at 10h.
func ScreenPenalty(hours float64) float64 {
	return clamp01((hours - 4) / 6)
}

// ExercisePenalty is 0 at 30min or more and 1 at none.
func ExercisePenalty(minutes int) float64 {
	return clamp01((30 - float64(minutes)) / 30)
}

// WaterPenalty is 0 at 2.5L and reaches 1 at 1L or 4L.
func WaterPenalty(liters float64) float64 {
	return clamp01(math.Abs(liters-2.5) / 1.5)
}

// MeditationPenalty is 0 at 10min or more and 1 at none.
func MeditationPenalty(minutes int) float64 {
	return clamp01((10 - float64(minutes)) / 10)
}

// ComputePenalties normalizes every metric into its 0-1 penalty.
func ComputePenalties(m models.DailyMetrics) Penalties {
	return Penalties{
		Sleep:      SleepPenalty(m.SleepHours),
		Screen:     ScreenPenalty(m.ScreenTimeHours),
		Exercise:   ExercisePenalty(m.ExerciseMinutes),
		Water:      WaterPenalty(m.WaterIntakeLiters),
		Meditation: MeditationPenalty(m.MeditationMinutes),
	}
}

// WeightedPenalty blends the per-metric penalties into a single 0-1 value.
func WeightedPenalty(p Penalties, w config.FeatureWeights) float64 {
	total := w.SleepHours*p.Sleep +
		w.ScreenTimeHours*p.Screen +
		w.ExerciseMinutes*p.Exercise +
		w.WaterIntakeLiters*p.Water +
		w.MeditationMinutes*p.Meditation
	return clamp01(total)
}

// ComputeImpactScore converts the weighted penalty into the 0-100 score.
func ComputeImpactScore(p Penalties, w config.FeatureWeights) int {
	score := int(math.Round(100 * WeightedPenalty(p, w)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ScoreCategory buckets the score. The score is penalty magnitude, so a low
// score means high biological health.
func ScoreCategory(score int) models.Category {
	switch {
	case score <= 33:
		return models.CategoryHigh
	case score <= 66:
		return models.CategoryModerate
	default:
		return models.CategoryLow
	}
}

// ComputeScore runs the full scoring pipeline for one set of metrics.
func ComputeScore(m models.DailyMetrics, weights config.FeatureWeights, params config.ModelParams) models.ScoreResult {
	penalties := ComputePenalties(m)
	score := ComputeImpactScore(penalties, weights)
	category := ScoreCategory(score)
	stress := PredictStressLevel(m, weights, params)
	persona := SelectPersona(m, penalties, stress)

	return models.ScoreResult{
		Score:                score,
		Category:             category,
		Message:              GenerateMessage(category, penalties, stress),
		Persona:              persona.Name,
		PersonaDescription:   persona.Description,
		PredictedStressLevel: stress,
		Recommendations:      GenerateRecommendations(m, stress),
	}
}
