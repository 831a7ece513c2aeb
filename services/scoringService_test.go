package services

import (
	"math"
	"testing"

	"calmquest/config"
	"calmquest/models"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestPenaltyFunctions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sleep optimal 8h", SleepPenalty(8), 0},
		{"sleep 6h", SleepPenalty(6), 0.5},
		{"sleep 10h", SleepPenalty(10), 0.5},
		{"sleep 4h maxed", SleepPenalty(4), 1},
		{"sleep 12h maxed", SleepPenalty(12), 1},
		{"sleep 0h clamped", SleepPenalty(0), 1},
		{"screen at baseline 4h", ScreenPenalty(4), 0},
		{"screen below baseline", ScreenPenalty(2), 0},
		{"screen 7h", ScreenPenalty(7), 0.5},
		{"screen 10h maxed", ScreenPenalty(10), 1},
		{"screen 16h clamped", ScreenPenalty(16), 1},
		{"exercise at target 30min", ExercisePenalty(30), 0},
		{"exercise above target", ExercisePenalty(90), 0},
		{"exercise 15min", ExercisePenalty(15), 0.5},
		{"exercise none", ExercisePenalty(0), 1},
		{"water optimal 2.5L", WaterPenalty(2.5), 0},
		{"water 1.75L", WaterPenalty(1.75), 0.5},
		{"water 1L maxed", WaterPenalty(1), 1},
		{"water 4L maxed", WaterPenalty(4), 1},
		{"water 0L clamped", WaterPenalty(0), 1},
		{"meditation at target 10min", MeditationPenalty(10), 0},
		{"meditation 60min", MeditationPenalty(60), 0},
		{"meditation 5min", MeditationPenalty(5), 0.5},
		{"meditation none", MeditationPenalty(0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !almostEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestSleepPenaltyMonotonicAwayFromOptimum(t *testing.T) {
	prev := SleepPenalty(8)
	for h := 8.25; h <= 12; h += 0.25 {
		cur := SleepPenalty(h)
		if cur <= prev {
			t.Fatalf("penalty not strictly increasing at %vh: %v -> %v", h, prev, cur)
		}
		prev = cur
	}
	prev = SleepPenalty(8)
	for h := 7.75; h >= 4; h -= 0.25 {
		cur := SleepPenalty(h)
		if cur <= prev {
			t.Fatalf("penalty not strictly increasing at %vh: %v -> %v", h, prev, cur)
		}
		prev = cur
	}
}

func TestComputeImpactScoreBounds(t *testing.T) {
	weights := config.DefaultFeatureWeights()
	metrics := []models.DailyMetrics{
		{SleepHours: 8, ScreenTimeHours: 4, ExerciseMinutes: 30, WaterIntakeLiters: 2.5, MeditationMinutes: 10},
		{SleepHours: 4, ScreenTimeHours: 12, ExerciseMinutes: 0, WaterIntakeLiters: 0.5, MeditationMinutes: 0},
		{SleepHours: 6.5, ScreenTimeHours: 7, ExerciseMinutes: 20, WaterIntakeLiters: 2, MeditationMinutes: 5},
		{SleepHours: 0, ScreenTimeHours: 24, ExerciseMinutes: 1440, WaterIntakeLiters: 10, MeditationMinutes: 1440},
	}
	for _, m := range metrics {
		score := ComputeImpactScore(ComputePenalties(m), weights)
		if score < 0 || score > 100 {
			t.Errorf("score %d out of range for %+v", score, m)
		}
	}
}

func TestZeroPenaltiesScoreZeroRegardlessOfWeights(t *testing.T) {
	weightSets := []config.FeatureWeights{
		config.DefaultFeatureWeights(),
		{SleepHours: 1},
		{ScreenTimeHours: 0.5, MeditationMinutes: 0.5},
	}
	for _, w := range weightSets {
		if score := ComputeImpactScore(Penalties{}, w); score != 0 {
			t.Errorf("zero penalties with weights %+v: got score %d, want 0", w, score)
		}
	}
}

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		score int
		want  models.Category
	}{
		{0, models.CategoryHigh},
		{33, models.CategoryHigh},
		{34, models.CategoryModerate},
		{50, models.CategoryModerate},
		{66, models.CategoryModerate},
		{67, models.CategoryLow},
		{100, models.CategoryLow},
	}
	for _, tt := range tests {
		if got := ScoreCategory(tt.score); got != tt.want {
			t.Errorf("ScoreCategory(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestComputeScoreAllOptimal(t *testing.T) {
	m := models.DailyMetrics{SleepHours: 8, ScreenTimeHours: 4, ExerciseMinutes: 30, WaterIntakeLiters: 2.5, MeditationMinutes: 10}
	result := ComputeScore(m, config.DefaultFeatureWeights(), config.DefaultModelParams())

	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if result.Category != models.CategoryHigh {
		t.Errorf("category = %v, want High", result.Category)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d: %+v", len(result.Recommendations), result.Recommendations)
	}
	if result.Persona != "🧘 Resilient Baseline" {
		t.Errorf("persona = %q, want Resilient Baseline", result.Persona)
	}
	if result.PredictedStressLevel < 0.5 || result.PredictedStressLevel > 2 {
		t.Errorf("predicted stress %v, want low (0.5-2)", result.PredictedStressLevel)
	}
}

func TestComputeScoreAllPoor(t *testing.T) {
	m := models.DailyMetrics{SleepHours: 4, ScreenTimeHours: 12, ExerciseMinutes: 0, WaterIntakeLiters: 0.5, MeditationMinutes: 0}
	result := ComputeScore(m, config.DefaultFeatureWeights(), config.DefaultModelParams())

	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if result.Category != models.CategoryLow {
		t.Errorf("category = %v, want Low", result.Category)
	}

	wantIDs := []string{"sleep-critical", "screen-critical", "exercise-none", "water-critical", "meditation-none", "stress-very-high"}
	if len(result.Recommendations) != len(wantIDs) {
		t.Fatalf("got %d recommendations, want %d", len(result.Recommendations), len(wantIDs))
	}
	for i, id := range wantIDs {
		if result.Recommendations[i].ID != id {
			t.Errorf("recommendation[%d] = %q, want %q", i, result.Recommendations[i].ID, id)
		}
		if result.Recommendations[i].Priority != models.PriorityHigh {
			t.Errorf("recommendation %q priority = %v, want high", id, result.Recommendations[i].Priority)
		}
	}
}
