package models

// DailyMetrics is one day's worth of lifestyle inputs in physical units.
type DailyMetrics struct {
	SleepHours        float64 `json:"sleepHours" validate:"min=0,max=24"`
	ScreenTimeHours   float64 `json:"screenTimeHours" validate:"min=0,max=24"`
	ExerciseMinutes   int     `json:"exerciseMinutes" validate:"min=0,max=1440"`
	WaterIntakeLiters float64 `json:"waterIntakeLiters" validate:"min=0,max=10"`
	MeditationMinutes int     `json:"meditationMinutes" validate:"min=0,max=1440"`
}

// LegacySliderMetrics is the old 0-10 slider shape some clients still send.
type LegacySliderMetrics struct {
	Sleep      float64 `json:"sleep" validate:"min=0,max=10"`
	ScreenTime float64 `json:"screenTime" validate:"min=0,max=10"`
	Exercise   float64 `json:"exercise" validate:"min=0,max=10"`
	Water      float64 `json:"water" validate:"min=0,max=10"`
	Meditation float64 `json:"meditation" validate:"min=0,max=10"`
}

// ToDailyMetrics maps slider positions onto physical units. Slider 10 means
// 12h sleep, 16h screen time, 180min exercise, 5L water, 60min meditation.
func (l LegacySliderMetrics) ToDailyMetrics() DailyMetrics {
	return DailyMetrics{
		SleepHours:        l.Sleep * 1.2,
		ScreenTimeHours:   l.ScreenTime * 1.6,
		ExerciseMinutes:   int(l.Exercise * 18),
		WaterIntakeLiters: l.Water * 0.5,
		MeditationMinutes: int(l.Meditation * 6),
	}
}
