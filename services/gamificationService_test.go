package services

import (
	"errors"
	"testing"

	"calmquest/models"
)

func TestCalculateXPToNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 30},
		{2, 40},
		{3, 50},
		{5, 70},
		{10, 120},
	}
	for _, tt := range tests {
		if got := CalculateXPToNextLevel(tt.level); got != tt.want {
			t.Errorf("CalculateXPToNextLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestAddXPCascade(t *testing.T) {
	p := models.NewUserProgress("u1")

	// 75 XP from scratch: 30 reaches level 2, 40 more reaches level 3,
	// 5 carries over.
	up, level := AddXP(&p, 75)
	if !up {
		t.Error("expected a level-up")
	}
	if level != 3 || p.Level != 3 {
		t.Errorf("level = %d, want 3", p.Level)
	}
	if p.XP != 5 {
		t.Errorf("carried XP = %d, want 5", p.XP)
	}
	if p.XPToNextLevel != 50 {
		t.Errorf("xpToNextLevel = %d, want 50", p.XPToNextLevel)
	}

	up, level = AddXP(&p, 10)
	if up {
		t.Error("unexpected level-up on small award")
	}
	if level != 3 || p.XP != 15 {
		t.Errorf("after small award: level %d xp %d, want level 3 xp 15", level, p.XP)
	}
}

func TestAddXPInvariantAfterProcessing(t *testing.T) {
	p := models.NewUserProgress("u1")
	for _, amount := range []int{29, 1, 200, 7, 500} {
		AddXP(&p, amount)
		if p.XP >= p.XPToNextLevel {
			t.Fatalf("invariant violated after +%d: xp %d >= threshold %d at level %d",
				amount, p.XP, p.XPToNextLevel, p.Level)
		}
	}
}

func TestApplyCheckinFirstEver(t *testing.T) {
	p := models.NewUserProgress("u1")
	result := ApplyCheckin(p, 10, "2025-03-01")
	got := result.Progress

	if got.CurrentStreak != 1 || got.LoginStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", got.CurrentStreak, got.LoginStreak)
	}
	if got.LastCheckinDate != "2025-03-01" {
		t.Errorf("lastCheckinDate = %q", got.LastCheckinDate)
	}
	if !got.DailyTasksCompleted {
		t.Error("dailyTasksCompleted should be true")
	}
	if got.Points != 25 {
		t.Errorf("points = %d, want 25", got.Points)
	}

	// Daily Login 5 + Daily Tasks 10; no streak bonus on streak 1, no
	// good-score bonus below 40.
	if got.XP != 15 {
		t.Errorf("xp = %d, want 15", got.XP)
	}
	wantReasons := []string{"Daily Login", "Daily Tasks Completed"}
	if len(result.XPGains) != len(wantReasons) {
		t.Fatalf("xpGains = %+v, want reasons %v", result.XPGains, wantReasons)
	}
	for i, reason := range wantReasons {
		if result.XPGains[i].Reason != reason {
			t.Errorf("gain[%d] reason = %q, want %q", i, result.XPGains[i].Reason, reason)
		}
	}

	// First check-in completes all daily tasks, which unlocks allTasks.
	if len(result.NewBadges) != 1 || result.NewBadges[0] != "allTasks" {
		t.Errorf("newBadges = %v, want [allTasks]", result.NewBadges)
	}
	if result.LevelUp != nil {
		t.Errorf("levelUp = %v, want nil", *result.LevelUp)
	}
}

func TestApplyCheckinDuplicateSameDay(t *testing.T) {
	p := models.NewUserProgress("u1")
	first := ApplyCheckin(p, 50, "2025-03-01")
	second := ApplyCheckin(first.Progress, 50, "2025-03-01")

	if len(second.XPGains) != 0 {
		t.Errorf("duplicate same-day check-in awarded %+v", second.XPGains)
	}
	if second.Progress.XP != first.Progress.XP {
		t.Errorf("xp changed on duplicate: %d -> %d", first.Progress.XP, second.Progress.XP)
	}
	if second.Progress.CurrentStreak != first.Progress.CurrentStreak {
		t.Errorf("streak changed on duplicate: %d -> %d", first.Progress.CurrentStreak, second.Progress.CurrentStreak)
	}
	if second.Progress.Points != first.Progress.Points {
		t.Errorf("points changed on duplicate: %d -> %d", first.Progress.Points, second.Progress.Points)
	}
}

func TestApplyCheckinStreakProgression(t *testing.T) {
	p := models.NewUserProgress("u1")

	day1 := ApplyCheckin(p, 10, "2025-03-01")
	if day1.Progress.CurrentStreak != 1 {
		t.Fatalf("day 1 streak = %d, want 1", day1.Progress.CurrentStreak)
	}

	day2 := ApplyCheckin(day1.Progress, 10, "2025-03-02")
	if day2.Progress.CurrentStreak != 2 {
		t.Fatalf("day 2 streak = %d, want 2", day2.Progress.CurrentStreak)
	}
	if !hasGain(day2.XPGains, 5, "2-Day Streak!") {
		t.Errorf("day 2 gains missing 5 XP streak bonus: %+v", day2.XPGains)
	}

	day3 := ApplyCheckin(day2.Progress, 10, "2025-03-03")
	if day3.Progress.CurrentStreak != 3 {
		t.Fatalf("day 3 streak = %d, want 3", day3.Progress.CurrentStreak)
	}
	if !hasGain(day3.XPGains, 10, "3-Day Streak!") {
		t.Errorf("day 3 gains missing 10 XP streak bonus: %+v", day3.XPGains)
	}
	if !contains(day3.NewBadges, "streak3") {
		t.Errorf("day 3 should unlock streak3, got %v", day3.NewBadges)
	}
	if !contains(day3.NewBadges, "login3") {
		t.Errorf("day 3 should unlock login3, got %v", day3.NewBadges)
	}
}

func TestApplyCheckinGapResetsStreak(t *testing.T) {
	p := models.NewUserProgress("u1")
	p.CurrentStreak = 5
	p.LoginStreak = 5
	p.LastCheckinDate = "2025-03-01"

	result := ApplyCheckin(p, 10, "2025-03-04")
	if result.Progress.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", result.Progress.CurrentStreak)
	}
	if result.Progress.LoginStreak != 1 {
		t.Errorf("login streak after gap = %d, want 1", result.Progress.LoginStreak)
	}
}

func TestApplyCheckinAcrossMonthBoundary(t *testing.T) {
	p := models.NewUserProgress("u1")
	p.CurrentStreak = 2
	p.LoginStreak = 2
	p.LastCheckinDate = "2025-02-28"

	result := ApplyCheckin(p, 10, "2025-03-01")
	if result.Progress.CurrentStreak != 3 {
		t.Errorf("streak across month boundary = %d, want 3", result.Progress.CurrentStreak)
	}
}

func TestApplyCheckinGoodScoreBonus(t *testing.T) {
	p := models.NewUserProgress("u1")

	with := ApplyCheckin(p, 40, "2025-03-01")
	if !hasGain(with.XPGains, 20, "Completed Recommended Tasks") {
		t.Errorf("score 40 should award the 20 XP bonus: %+v", with.XPGains)
	}

	without := ApplyCheckin(models.NewUserProgress("u2"), 39, "2025-03-01")
	if hasGain(without.XPGains, 20, "Completed Recommended Tasks") {
		t.Errorf("score 39 should not award the bonus: %+v", without.XPGains)
	}
}

func TestApplyCheckinLevelUp(t *testing.T) {
	p := models.NewUserProgress("u1")
	p.XP = 25

	// Gains: login 5 + tasks 10 + good score 20 = 35; 25+5 crosses the
	// level 1 threshold of 30.
	result := ApplyCheckin(p, 50, "2025-03-01")
	if result.LevelUp == nil || *result.LevelUp != 2 {
		t.Fatalf("levelUp = %v, want 2", result.LevelUp)
	}
	if result.Progress.Level != 2 {
		t.Errorf("level = %d, want 2", result.Progress.Level)
	}
	if result.Progress.XPToNextLevel != 40 {
		t.Errorf("xpToNextLevel = %d, want 40", result.Progress.XPToNextLevel)
	}
	if result.Progress.XP != 30 {
		t.Errorf("xp = %d, want 30", result.Progress.XP)
	}
}

func TestApplyCheckinResetsDailyFieldsOnNewDay(t *testing.T) {
	p := models.NewUserProgress("u1")
	day1 := ApplyCheckin(p, 10, "2025-03-01")
	progress := day1.Progress
	progress.CompletedRecommendations = []string{"sleep-low"}

	day2 := ApplyCheckin(progress, 10, "2025-03-02")
	if len(day2.Progress.CompletedRecommendations) != 0 {
		t.Errorf("completed set not reset: %v", day2.Progress.CompletedRecommendations)
	}
}

func TestApplyCompleteRecommendation(t *testing.T) {
	today := "2025-03-01"
	p := models.NewUserProgress("u1")

	// Before any check-in today.
	_, err := ApplyCompleteRecommendation(p, "sleep-low", today)
	if !errors.Is(err, ErrNotCheckedInToday) {
		t.Fatalf("err = %v, want ErrNotCheckedInToday", err)
	}

	checked := ApplyCheckin(p, 10, today)
	if checked.Progress.XP != 15 || checked.Progress.Level != 1 {
		t.Fatalf("after checkin xp = %d level = %d, want 15 at level 1",
			checked.Progress.XP, checked.Progress.Level)
	}
	pointsBefore := checked.Progress.Points

	// 15 + 20 crosses the 30 XP threshold: level 2 with 5 XP carried.
	result, err := ApplyCompleteRecommendation(checked.Progress, "sleep-low", today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Progress.Level != 2 {
		t.Errorf("level = %d, want 2", result.Progress.Level)
	}
	if result.Progress.XP != 5 {
		t.Errorf("xp = %d, want 5", result.Progress.XP)
	}
	if result.Progress.XPToNextLevel != 40 {
		t.Errorf("xpToNextLevel = %d, want 40", result.Progress.XPToNextLevel)
	}
	if result.LevelUp == nil || *result.LevelUp != 2 {
		t.Errorf("levelUp = %v, want 2", result.LevelUp)
	}
	if result.Progress.Points != pointsBefore+25 {
		t.Errorf("points = %d, want %d", result.Progress.Points, pointsBefore+25)
	}
	if !result.Progress.HasCompletedRecommendation("sleep-low") {
		t.Error("id not recorded in completed set")
	}
	if result.XPGain.Amount != 20 {
		t.Errorf("xpGain = %+v, want amount 20", result.XPGain)
	}

	// Second completion of the same id is rejected with no award.
	_, err = ApplyCompleteRecommendation(result.Progress, "sleep-low", today)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
	}

	// A different id still works.
	if _, err := ApplyCompleteRecommendation(result.Progress, "water-low", today); err != nil {
		t.Errorf("different id rejected: %v", err)
	}
}

func TestApplyCompleteRecommendationStaleCheckin(t *testing.T) {
	p := models.NewUserProgress("u1")
	checked := ApplyCheckin(p, 10, "2025-03-01")

	// Yesterday's check-in does not authorize today's completion.
	_, err := ApplyCompleteRecommendation(checked.Progress, "sleep-low", "2025-03-02")
	if !errors.Is(err, ErrNotCheckedInToday) {
		t.Fatalf("err = %v, want ErrNotCheckedInToday", err)
	}
}

func TestCheckBadgeConditionsSkipsUnlocked(t *testing.T) {
	p := models.NewUserProgress("u1")
	p.CurrentStreak = 3
	p.BadgesUnlocked = []string{"streak3"}

	if got := CheckBadgeConditions(p); len(got) != 0 {
		t.Errorf("already-unlocked badge returned again: %v", got)
	}
}

func TestResetDailyState(t *testing.T) {
	p := models.NewUserProgress("u1")
	p.LastCheckinDate = "2025-03-01"
	p.DailyTasksCompleted = true
	p.CompletedRecommendations = []string{"sleep-low"}

	ResetDailyState(&p, "2025-03-02")
	if p.DailyTasksCompleted {
		t.Error("dailyTasksCompleted not reset")
	}
	if len(p.CompletedRecommendations) != 0 {
		t.Error("completed set not reset")
	}

	// Same-day load keeps today's state.
	p.DailyTasksCompleted = true
	p.CompletedRecommendations = []string{"sleep-low"}
	ResetDailyState(&p, "2025-03-01")
	if !p.DailyTasksCompleted || len(p.CompletedRecommendations) != 1 {
		t.Error("same-day reset should be a no-op")
	}
}

func hasGain(gains []XPGain, amount int, reason string) bool {
	for _, g := range gains {
		if g.Amount == amount && g.Reason == reason {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
