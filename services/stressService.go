package services

import (
	"math"

	"calmquest/config"
	"calmquest/models"
)

// idealMetrics is the zero-penalty baseline input for the regression.
var idealMetrics = models.DailyMetrics{
	SleepHours:        8,
	ScreenTimeHours:   4,
	ExerciseMinutes:   30,
	WaterIntakeLiters: 2.5,
	MeditationMinutes: 10,
}

func standardize(value, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (value - mean) / std
}

// regressionStress runs the trained linear model: standardize each metric,
// dot with the coefficients, add the intercept.
func regressionStress(m models.DailyMetrics, p config.ModelParams) float64 {
	sum := p.Intercept
	sum += p.Coefficients.SleepHours * standardize(m.SleepHours, p.ScalerMeans.SleepHours, p.ScalerStds.SleepHours)
	sum += p.Coefficients.ScreenTimeHours * standardize(m.ScreenTimeHours, p.ScalerMeans.ScreenTimeHours, p.ScalerStds.ScreenTimeHours)
	sum += p.Coefficients.ExerciseMinutes * standardize(float64(m.ExerciseMinutes), p.ScalerMeans.ExerciseMinutes, p.ScalerStds.ExerciseMinutes)
	sum += p.Coefficients.WaterIntakeLiters * standardize(m.WaterIntakeLiters, p.ScalerMeans.WaterIntakeLiters, p.ScalerStds.WaterIntakeLiters)
	sum += p.Coefficients.MeditationMinutes * standardize(float64(m.MeditationMinutes), p.ScalerMeans.MeditationMinutes, p.ScalerStds.MeditationMinutes)
	return sum
}

// RescaleStress maps the 0-1 weighted penalty onto the displayed 0.5-10
// stress scale. The raw regression is deliberately too mild for the UI, so
// penalties below 0.3 map linearly into [0.5, 4.0] and everything above rises
// steeply through a power curve into [4.0, 10.0].
func RescaleStress(totalPenalty float64) float64 {
	totalPenalty = clamp01(totalPenalty)
	if totalPenalty < 0.3 {
		return 0.5 + (totalPenalty/0.3)*3.5
	}
	return 4.0 + math.Pow((totalPenalty-0.3)/0.7, 0.4)*6.0
}

// PredictStressLevel blends the trained regression with the penalty-driven
// rescaling. The curve dominates; the regression only nudges the result by
// how far the prediction sits above its own optimal baseline.
func PredictStressLevel(m models.DailyMetrics, w config.FeatureWeights, p config.ModelParams) float64 {
	penalties := ComputePenalties(m)
	curve := RescaleStress(WeightedPenalty(penalties, w))

	raw := regressionStress(m, p)
	baseline := regressionStress(idealMetrics, p)
	delta := raw - baseline

	stress := curve + 0.3*delta
	return math.Max(0.5, math.Min(10, stress))
}
