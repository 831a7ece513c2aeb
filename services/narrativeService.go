package services

import "calmquest/models"

// Persona is a descriptive archetype picked from the day's inputs.
type Persona struct {
	Name        string
	Description string
}

// SelectPersona walks an ordered rule list, first match wins.
func SelectPersona(m models.DailyMetrics, p Penalties, stress float64) Persona {
	switch {
	case p.Sleep >= 0.5 && p.Screen >= 0.25 && stress >= 6:
		return Persona{
			Name:        "🔥 Wired Night Owl",
			Description: "Low sleep combined with high stress and high screen time suggests disrupted recovery patterns.",
		}
	case m.ExerciseMinutes < 15 && p.Sleep >= 0.25:
		return Persona{
			Name:        "📉 Flat-Lined & Exhausted",
			Description: "Low movement and low mood indicate depleted energy and reduced resilience.",
		}
	case m.ScreenTimeHours > 8:
		return Persona{
			Name:        "📱 Doomscrolling Achiever",
			Description: "High screen time with moderate stress suggests cognitive overload and poor recovery.",
		}
	default:
		return Persona{
			Name:        "🧘 Resilient Baseline",
			Description: "Your patterns show overall balanced stress and recovery.",
		}
	}
}

// GenerateMessage picks the canned explanation for the score category. The
// decision table keys on the sleep, screen, and exercise penalties plus the
// predicted stress collapsed onto the same 0-1 scale.
func GenerateMessage(category models.Category, p Penalties, stress float64) string {
	stressPenalty := clamp01(stress / 10)

	switch category {
	case models.CategoryHigh:
		switch {
		case p.Sleep < 0.25 && stressPenalty < 0.5 && p.Screen < 0.5:
			return "Your biological impact score reflects excellent lifestyle balance. Your sleep patterns are optimal, stress levels are well-managed, and screen time is within healthy limits. Continue maintaining these positive habits for sustained wellness."
		case p.Sleep >= 0.5:
			return "Your biological impact score is high, but sleep quality needs attention. While your stress management and lifestyle choices are contributing positively, improving sleep duration and consistency will further enhance your overall biological health."
		case stressPenalty >= 0.75:
			return "Your biological impact score is high, though stress management could be improved. Your sleep and lifestyle habits are solid, but reducing stress through mindfulness or relaxation techniques would optimize your biological wellness."
		default:
			return "Your biological impact score is high, indicating strong overall wellness. Your sleep and stress management are on track, and your lifestyle choices support good biological health. Keep up the excellent work!"
		}

	case models.CategoryModerate:
		switch {
		case p.Sleep >= 0.5 && stressPenalty >= 0.5:
			return "Your biological impact score is moderate, with both sleep and stress areas needing improvement. Focus on establishing a consistent sleep schedule of 7-9 hours and implementing stress-reduction strategies. These changes will significantly improve your biological wellness."
		case p.Sleep >= 0.5:
			return "Your biological impact score is moderate, primarily due to sleep patterns that deviate from the optimal 8-hour range. Your stress management and lifestyle choices are reasonable, but improving sleep quality and duration would boost your biological health."
		case stressPenalty >= 0.5:
			return "Your biological impact score is moderate, with elevated stress levels being a key factor. Your sleep patterns are decent, but implementing stress management techniques such as meditation, exercise, or time management would improve your overall biological wellness."
		case p.Screen >= 0.5 || p.Exercise >= 0.5:
			return "Your biological impact score is moderate, with lifestyle factors like screen time or exercise levels affecting your wellness. Your sleep and stress management are adequate, but balancing screen usage and increasing physical activity would enhance your biological health."
		default:
			return "Your biological impact score is moderate, indicating a balanced but improvable wellness profile. Your sleep, stress, and lifestyle habits are within acceptable ranges, but optimizing each area would move you toward better biological health."
		}

	default: // CategoryLow, worst wellness
		switch {
		case p.Sleep >= 0.75 && stressPenalty >= 0.75:
			return "Your biological impact score is low, with both sleep and stress requiring immediate attention. Prioritize establishing a regular sleep schedule of 7-9 hours and implementing daily stress-reduction practices. These fundamental changes are crucial for improving your biological wellness."
		case p.Sleep >= 0.75:
			return "Your biological impact score is low, primarily due to significant sleep disruption. Aim for 7-9 hours of consistent sleep nightly, as this is foundational to biological health. While stress and lifestyle factors also need attention, sleep improvement should be your top priority."
		case stressPenalty >= 0.75:
			return "Your biological impact score is low, with high stress levels significantly impacting your biological wellness. Implement stress management strategies immediately, such as meditation, regular exercise, or professional support. Your sleep patterns also need attention to support stress recovery."
		default:
			return "Your biological impact score is low, indicating multiple areas need improvement. Focus on establishing healthy sleep patterns (7-9 hours), reducing stress through proven techniques, and balancing screen time with physical activity. These lifestyle changes will significantly improve your biological health."
		}
	}
}
