package services

import (
	"errors"
	"fmt"
	"time"

	"calmquest/models"
)

// Reward amounts. Values are load-bearing for level pacing, change with care.
const (
	loginXP              = 5
	streakBonusXP        = 10
	shortStreakBonusXP   = 5
	dailyTasksXP         = 10
	goodScoreXP          = 20
	checkinPoints        = 25
	recommendationPoints = 25
)

var (
	ErrAlreadyCompleted  = errors.New("recommendation already completed today")
	ErrNotCheckedInToday = errors.New("submit today's check-in first")
)

// XPGain is one line item in a check-in's reward breakdown.
type XPGain struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// CheckinResult is everything a check-in changed.
type CheckinResult struct {
	Progress  models.UserProgress `json:"userData"`
	XPGains   []XPGain            `json:"xpGains"`
	LevelUp   *int                `json:"levelUp"`
	NewBadges []string            `json:"newBadges"`
}

// CompletionResult is everything a recommendation completion changed.
type CompletionResult struct {
	Progress models.UserProgress `json:"userData"`
	XPGain   XPGain              `json:"xpGain"`
	LevelUp  *int                `json:"levelUp"`
}

// CalculateXPToNextLevel returns the XP threshold for leaving the given level.
func CalculateXPToNextLevel(level int) int {
	if level <= 1 {
		return 30
	}
	return 30 + (level-1)*10
}

// AddXP adds XP and cascades level-ups until the threshold holds again. A
// single large award can advance several levels. Returns whether any level-up
// happened and the final level.
func AddXP(p *models.UserProgress, amount int) (bool, int) {
	p.XP += amount
	leveledUp := false
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = CalculateXPToNextLevel(p.Level)
		leveledUp = true
	}
	return leveledUp, p.Level
}

// dayDiff returns whole calendar days from one YYYY-MM-DD date to another.
func dayDiff(from, to string) int {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// nextStreak applies the same-day / consecutive-day / gap rules shared by the
// task and login streaks. lastDate must not equal today (callers guard).
func nextStreak(current int, lastDate, today string) int {
	if lastDate == "" {
		return 1
	}
	switch d := dayDiff(lastDate, today); {
	case d == 1:
		return current + 1
	case d > 1:
		return 1
	default:
		return current
	}
}

// streakBonus is 10 XP from the third consecutive day, 5 on the second.
func streakBonus(streak int) int {
	switch {
	case streak >= 3:
		return streakBonusXP
	case streak == 2:
		return shortStreakBonusXP
	default:
		return 0
	}
}

// CheckBadgeConditions returns badge ids the user newly qualifies for.
func CheckBadgeConditions(p models.UserProgress) []string {
	newly := []string{}
	if p.CurrentStreak >= 3 && !p.HasBadge("streak3") {
		newly = append(newly, "streak3")
	}
	if p.DailyTasksCompleted && !p.HasBadge("allTasks") {
		newly = append(newly, "allTasks")
	}
	if p.LoginStreak >= 3 && !p.HasBadge("login3") {
		newly = append(newly, "login3")
	}
	return newly
}

// ResetDailyState clears the per-day fields when the stored record is from an
// earlier day. Call before reading DailyTasksCompleted or the completed set.
func ResetDailyState(p *models.UserProgress, today string) {
	if p.LastCheckinDate != today {
		p.DailyTasksCompleted = false
		p.CompletedRecommendations = []string{}
	}
}

// ApplyCheckin runs the full check-in state transition for one day. All
// rewards are once per calendar day: a duplicate same-day submission changes
// nothing and awards nothing. LastCheckinDate is only advanced at the end so
// the streak updates can still see the previous date.
func ApplyCheckin(p models.UserProgress, score int, today string) CheckinResult {
	ResetDailyState(&p, today)

	result := CheckinResult{XPGains: []XPGain{}, NewBadges: []string{}}
	award := func(amount int, reason string) {
		if up, level := AddXP(&p, amount); up {
			result.LevelUp = &level
		}
		result.XPGains = append(result.XPGains, XPGain{Amount: amount, Reason: reason})
	}

	if p.LastCheckinDate != today {
		p.LoginStreak = nextStreak(p.LoginStreak, p.LastCheckinDate, today)
		award(loginXP, "Daily Login")

		p.CurrentStreak = nextStreak(p.CurrentStreak, p.LastCheckinDate, today)
		if bonus := streakBonus(p.CurrentStreak); bonus > 0 {
			award(bonus, fmt.Sprintf("%d-Day Streak!", p.CurrentStreak))
		}

		p.DailyTasksCompleted = true
		p.Points += checkinPoints
		award(dailyTasksXP, "Daily Tasks Completed")

		if score >= 40 {
			award(goodScoreXP, "Completed Recommended Tasks")
		}

		p.LastCheckinDate = today
	} else {
		p.DailyTasksCompleted = true
	}

	for _, id := range CheckBadgeConditions(p) {
		p.BadgesUnlocked = append(p.BadgesUnlocked, id)
		result.NewBadges = append(result.NewBadges, id)
	}

	result.Progress = p
	return result
}

// ApplyCompleteRecommendation awards the fixed reward for one recommendation,
// at most once per id per day, and only after today's check-in.
func ApplyCompleteRecommendation(p models.UserProgress, id, today string) (CompletionResult, error) {
	ResetDailyState(&p, today)

	if p.LastCheckinDate != today {
		return CompletionResult{}, ErrNotCheckedInToday
	}
	if p.HasCompletedRecommendation(id) {
		return CompletionResult{}, ErrAlreadyCompleted
	}

	result := CompletionResult{
		XPGain: XPGain{Amount: recommendationXP, Reason: "Recommendation Completed"},
	}
	if up, level := AddXP(&p, recommendationXP); up {
		result.LevelUp = &level
	}
	p.Points += recommendationPoints
	p.CompletedRecommendations = append(p.CompletedRecommendations, id)

	result.Progress = p
	return result, nil
}
