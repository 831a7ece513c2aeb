package config

import (
	"encoding/json"
	"log"
	"os"
)

// FeatureWeights maps each lifestyle metric to its share of the impact score.
// It unmarshals the JSON file named by FEATURE_WEIGHTS_FILE, a flat object
// keyed by metric name, e.g. {"sleep_hours": 0.25, ...}.
type FeatureWeights struct {
	SleepHours        float64 `json:"sleep_hours"`
	ScreenTimeHours   float64 `json:"screen_time_hours"`
	ExerciseMinutes   float64 `json:"exercise_minutes"`
	WaterIntakeLiters float64 `json:"water_intake_liters"`
	MeditationMinutes float64 `json:"meditation_minutes"`
}

// FeatureValues holds one float per metric; reused for regression parameters.
type FeatureValues struct {
	SleepHours        float64 `json:"sleep_hours"`
	ScreenTimeHours   float64 `json:"screen_time_hours"`
	ExerciseMinutes   float64 `json:"exercise_minutes"`
	WaterIntakeLiters float64 `json:"water_intake_liters"`
	MeditationMinutes float64 `json:"meditation_minutes"`
}

// ModelParams are the trained linear-regression parameters. It unmarshals
// the JSON file named by MODEL_PARAMS_FILE: per-metric coefficients, an
// intercept, and the standardization means and stds from training.
type ModelParams struct {
	Coefficients FeatureValues `json:"coefficients"`
	Intercept    float64       `json:"intercept"`
	ScalerMeans  FeatureValues `json:"scaler_means"`
	ScalerStds   FeatureValues `json:"scaler_stds"`
}

// DefaultFeatureWeights is used when no weights file is configured.
func DefaultFeatureWeights() FeatureWeights {
	return FeatureWeights{
		SleepHours:        0.25,
		ScreenTimeHours:   0.20,
		ExerciseMinutes:   0.25,
		WaterIntakeLiters: 0.15,
		MeditationMinutes: 0.15,
	}
}

// DefaultModelParams is used when no trained model file is configured.
func DefaultModelParams() ModelParams {
	return ModelParams{
		Coefficients: FeatureValues{
			SleepHours:        -0.55,
			ScreenTimeHours:   0.42,
			ExerciseMinutes:   -0.38,
			WaterIntakeLiters: -0.21,
			MeditationMinutes: -0.33,
		},
		Intercept: 5.5,
		ScalerMeans: FeatureValues{
			SleepHours:        6.5,
			ScreenTimeHours:   6.0,
			ExerciseMinutes:   45.0,
			WaterIntakeLiters: 2.0,
			MeditationMinutes: 15.0,
		},
		ScalerStds: FeatureValues{
			SleepHours:        1.5,
			ScreenTimeHours:   2.5,
			ExerciseMinutes:   30.0,
			WaterIntakeLiters: 0.8,
			MeditationMinutes: 12.0,
		},
	}
}

// Sum returns the total of all five weights.
func (w FeatureWeights) Sum() float64 {
	return w.SleepHours + w.ScreenTimeHours + w.ExerciseMinutes + w.WaterIntakeLiters + w.MeditationMinutes
}

// Normalized rescales the weights so they sum to exactly 1. Trained weight
// files can drift slightly from 1 due to float rounding.
func (w FeatureWeights) Normalized() FeatureWeights {
	total := w.Sum()
	if total <= 0 {
		return DefaultFeatureWeights()
	}
	return FeatureWeights{
		SleepHours:        w.SleepHours / total,
		ScreenTimeHours:   w.ScreenTimeHours / total,
		ExerciseMinutes:   w.ExerciseMinutes / total,
		WaterIntakeLiters: w.WaterIntakeLiters / total,
		MeditationMinutes: w.MeditationMinutes / total,
	}
}

// LoadFeatureWeights reads the weights file named by FEATURE_WEIGHTS_FILE,
// falling back to the defaults when the file is absent or unreadable.
func LoadFeatureWeights() FeatureWeights {
	path := os.Getenv("FEATURE_WEIGHTS_FILE")
	if path == "" {
		return DefaultFeatureWeights()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Feature weights file %s not readable, using defaults: %v", path, err)
		return DefaultFeatureWeights()
	}
	var w FeatureWeights
	if err := json.Unmarshal(data, &w); err != nil {
		log.Printf("Feature weights file %s not valid JSON, using defaults: %v", path, err)
		return DefaultFeatureWeights()
	}
	return w.Normalized()
}

// LoadModelParams reads the trained model named by MODEL_PARAMS_FILE,
// falling back to the defaults when the file is absent or unreadable.
func LoadModelParams() ModelParams {
	path := os.Getenv("MODEL_PARAMS_FILE")
	if path == "" {
		return DefaultModelParams()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Model params file %s not readable, using defaults: %v", path, err)
		return DefaultModelParams()
	}
	var p ModelParams
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Model params file %s not valid JSON, using defaults: %v", path, err)
		return DefaultModelParams()
	}
	return p
}
