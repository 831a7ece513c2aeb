package services

import (
	"sort"

	"calmquest/models"
)

// recommendationXP is the fixed reward for completing any recommendation.
const recommendationXP = 20

var priorityRank = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

func rec(id, title, description string, priority models.Priority) *models.Recommendation {
	return &models.Recommendation{
		ID:          id,
		Title:       title,
		Description: description,
		XP:          recommendationXP,
		Priority:    priority,
	}
}

// sleepRecommendation evaluates the ordered sleep bands. Bands are mutually
// exclusive; 7.5-9 hours produces nothing. IDs are stable because completion
// tracking stores them.
func sleepRecommendation(hours float64) *models.Recommendation {
	switch {
	case hours < 5:
		return rec("sleep-critical", "🚨 Critical: Severe Sleep Deprivation",
			"You slept under 5 hours. Chronic short sleep this severe degrades memory, immunity, and mood. Clear your evening and target at least 7.5 hours tonight.",
			models.PriorityHigh)
	case hours < 6:
		return rec("sleep-low", "⚠️ Low Sleep",
			"Under 6 hours of sleep leaves you running a deficit. Move bedtime earlier by 45 minutes and keep screens out of the last half hour.",
			models.PriorityHigh)
	case hours < 7:
		return rec("sleep-moderate-low", "Slightly Short on Sleep",
			"You are close to the healthy range but still under 7 hours. A consistent bedtime would get you the rest of the way.",
			models.PriorityMedium)
	case hours > 10:
		return rec("sleep-very-high", "Oversleeping",
			"More than 10 hours of sleep can signal poor sleep quality or disrupted rhythm. Aim for a regular 7.5-9 hour window.",
			models.PriorityMedium)
	case hours > 9:
		return rec("sleep-high", "Long Sleep",
			"You slept over 9 hours. If you still feel tired, look at sleep consistency rather than duration.",
			models.PriorityLow)
	case hours >= 7 && hours <= 7.5:
		return rec("sleep-medium-good", "Almost Optimal Sleep",
			"Solid night. Nudging toward 7.5-8 hours would put you squarely in the optimal range.",
			models.PriorityLow)
	default:
		return nil
	}
}

func screenRecommendation(hours float64) *models.Recommendation {
	switch {
	case hours >= 12:
		return rec("screen-critical", "🚨 Critical: Very High Screen Time",
			"Twelve or more hours of screen time crowds out sleep, movement, and recovery. Schedule two screen-free blocks tomorrow.",
			models.PriorityHigh)
	case hours >= 8:
		return rec("screen-high", "⚠️ High Screen Time",
			"Over 8 hours on screens adds cognitive load and eye strain. Try the 20-20-20 rule and a hard cutoff an hour before bed.",
			models.PriorityMedium)
	case hours >= 6:
		return rec("screen-moderate", "Elevated Screen Time",
			"You are above the healthy 4-hour baseline. Swapping 30 minutes of scrolling for a walk pays off quickly.",
			models.PriorityLow)
	default:
		return nil
	}
}

func exerciseRecommendation(minutes int) *models.Recommendation {
	switch {
	case minutes == 0:
		return rec("exercise-none", "🚨 Critical: No Movement Today",
			"You logged no exercise. Even a 10-minute walk lowers stress hormones and boosts endorphins - start there.",
			models.PriorityHigh)
	case minutes < 15:
		return rec("exercise-low", "⚠️ Very Little Exercise",
			"Under 15 minutes of movement is not enough to shift your physiology. Aim for a 30-minute session tomorrow.",
			models.PriorityMedium)
	case minutes < 30:
		return rec("exercise-moderate", "Below Exercise Target",
			"You are moving, just short of the 30-minute target. One brisk walk closes the gap.",
			models.PriorityLow)
	default:
		return nil
	}
}

func waterRecommendation(liters float64) *models.Recommendation {
	switch {
	case liters < 1:
		return rec("water-critical", "🚨 Critical: Severe Dehydration Risk",
			"Under 1 liter of water impairs concentration and energy. Keep a bottle at your desk and refill it twice today.",
			models.PriorityHigh)
	case liters < 1.5:
		return rec("water-low", "⚠️ Low Water Intake",
			"You are well under the 2.5-liter target. Front-load a glass with each meal to catch up.",
			models.PriorityMedium)
	case liters < 2:
		return rec("water-moderate", "Slightly Low Water Intake",
			"Close to target. One extra glass mid-afternoon would cover the gap.",
			models.PriorityLow)
	case liters > 4:
		return rec("water-excess", "Very High Water Intake",
			"Over 4 liters is more than most people need. Spread intake through the day rather than chasing a number.",
			models.PriorityLow)
	default:
		return nil
	}
}

func meditationRecommendation(minutes int) *models.Recommendation {
	switch {
	case minutes == 0:
		return rec("meditation-none", "🚨 No Mindfulness Practice",
			"You logged no meditation. Five minutes of deep breathing resets your nervous system - try it before your next task.",
			models.PriorityHigh)
	case minutes < 5:
		return rec("meditation-low", "⚠️ Very Short Mindfulness Practice",
			"A few minutes is a start. Extending to 10 minutes is where measurable stress reduction begins.",
			models.PriorityMedium)
	case minutes < 10:
		return rec("meditation-moderate", "Almost at Mindfulness Target",
			"You are close to the 10-minute target. Tack on a few breaths at the end of your session.",
			models.PriorityLow)
	default:
		return nil
	}
}

func stressRecommendation(predictedStress float64) *models.Recommendation {
	switch {
	case predictedStress >= 8:
		return rec("stress-very-high", "🚨 Very High Predicted Stress",
			"Your inputs predict a very high stress load. Prioritize sleep and one deliberate recovery block today; consider talking to someone you trust.",
			models.PriorityHigh)
	case predictedStress >= 6:
		return rec("stress-high", "⚠️ Elevated Predicted Stress",
			"Your predicted stress is elevated. Short walks, breathing exercises, and an earlier night all bring it down.",
			models.PriorityMedium)
	default:
		return nil
	}
}

// GenerateRecommendations evaluates every metric band plus predicted stress
// and returns the emitted cards sorted high to low priority. The sort is
// stable so equal-priority cards keep their metric order.
func GenerateRecommendations(m models.DailyMetrics, predictedStress float64) []models.Recommendation {
	out := []models.Recommendation{}
	for _, r := range []*models.Recommendation{
		sleepRecommendation(m.SleepHours),
		screenRecommendation(m.ScreenTimeHours),
		exerciseRecommendation(m.ExerciseMinutes),
		waterRecommendation(m.WaterIntakeLiters),
		meditationRecommendation(m.MeditationMinutes),
		stressRecommendation(predictedStress),
	} {
		if r != nil {
			out = append(out, *r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

// knownRecommendationIDs is every id any band can emit. Completion requests
// for ids outside this set are rejected before touching user state.
var knownRecommendationIDs = map[string]bool{
	"sleep-critical": true, "sleep-low": true, "sleep-moderate-low": true,
	"sleep-very-high": true, "sleep-high": true, "sleep-medium-good": true,
	"screen-critical": true, "screen-high": true, "screen-moderate": true,
	"exercise-none": true, "exercise-low": true, "exercise-moderate": true,
	"water-critical": true, "water-low": true, "water-moderate": true, "water-excess": true,
	"meditation-none": true, "meditation-low": true, "meditation-moderate": true,
	"stress-very-high": true, "stress-high": true,
}

// IsKnownRecommendation reports whether the id belongs to a defined band.
func IsKnownRecommendation(id string) bool {
	return knownRecommendationIDs[id]
}

// FilterCompleted drops recommendations the user already completed today.
func FilterCompleted(recs []models.Recommendation, progress models.UserProgress) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(recs))
	for _, r := range recs {
		if !progress.HasCompletedRecommendation(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
