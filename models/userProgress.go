package models

// UserProgress is the persisted gamification record, one per user.
type UserProgress struct {
	UserID                   string   `bson:"user_id" json:"-"`
	XP                       int      `bson:"xp" json:"xp"`
	Level                    int      `bson:"level" json:"level"`
	XPToNextLevel            int      `bson:"xp_to_next_level" json:"xpToNextLevel"`
	CurrentStreak            int      `bson:"current_streak" json:"currentStreak"`
	LastCheckinDate          string   `bson:"last_checkin_date" json:"lastCheckinDate"` // YYYY-MM-DD, "" before first check-in
	LoginStreak              int      `bson:"login_streak" json:"loginStreak"`
	BadgesUnlocked           []string `bson:"badges_unlocked" json:"badgesUnlocked"`
	DailyTasksCompleted      bool     `bson:"daily_tasks_completed" json:"dailyTasksCompleted"`
	Points                   int      `bson:"points" json:"points"`
	CompletedRecommendations []string `bson:"completed_recommendations" json:"completedRecommendations"`
}

// NewUserProgress returns the zero-state record created on first access.
func NewUserProgress(userID string) UserProgress {
	return UserProgress{
		UserID:                   userID,
		XP:                       0,
		Level:                    1,
		XPToNextLevel:            30,
		CurrentStreak:            0,
		LastCheckinDate:          "",
		LoginStreak:              0,
		BadgesUnlocked:           []string{},
		DailyTasksCompleted:      false,
		Points:                   0,
		CompletedRecommendations: []string{},
	}
}

// HasBadge reports whether the badge id is already unlocked.
func (p UserProgress) HasBadge(id string) bool {
	for _, b := range p.BadgesUnlocked {
		if b == id {
			return true
		}
	}
	return false
}

// HasCompletedRecommendation reports whether the id is in today's completed set.
func (p UserProgress) HasCompletedRecommendation(id string) bool {
	for _, r := range p.CompletedRecommendations {
		if r == id {
			return true
		}
	}
	return false
}

// Badge describes an unlockable achievement.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Badges is the canonical catalog. IDs are stable because clients and the
// persisted badges_unlocked set store them.
var Badges = map[string]Badge{
	"streak3": {
		ID:          "streak3",
		Name:        "Streak Master",
		Description: "Complete daily check-ins for 3 days in a row",
		Icon:        "🔥",
	},
	"allTasks": {
		ID:          "allTasks",
		Name:        "Task Master",
		Description: "Complete all daily inputs in a single day",
		Icon:        "✅",
	},
	"login3": {
		ID:          "login3",
		Name:        "Consistent Logger",
		Description: "Log in 3 days in a row",
		Icon:        "📅",
	},
}
