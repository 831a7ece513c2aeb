package services

import (
	"context"
	"sync"
	"time"

	"calmquest/models"
)

// ProgressService orchestrates the gamification engine against a store.
// The engine itself is pure; this layer owns the read-modify-write cycle and
// serializes it per user so concurrent requests cannot lose updates.
type ProgressService struct {
	store ProgressStore
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{
		store: store,
		now:   time.Now,
		locks: map[string]*sync.Mutex{},
	}
}

func (s *ProgressService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Today returns the current calendar day as YYYY-MM-DD in UTC.
func (s *ProgressService) Today() string {
	return s.now().UTC().Format("2006-01-02")
}

// GetProgress returns the user's record, lazily zero-state, with stale
// per-day fields cleared. The reset is view-only; nothing is written until
// the next check-in.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (models.UserProgress, error) {
	progress, err := s.store.Load(ctx, userID)
	if err != nil {
		return models.UserProgress{}, err
	}
	ResetDailyState(&progress, s.Today())
	return progress, nil
}

// Checkin applies the daily check-in transition and persists the result.
func (s *ProgressService) Checkin(ctx context.Context, userID string, score int) (CheckinResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.store.Load(ctx, userID)
	if err != nil {
		return CheckinResult{}, err
	}

	result := ApplyCheckin(progress, score, s.Today())

	if err := s.store.Save(ctx, userID, result.Progress); err != nil {
		return CheckinResult{}, err
	}
	return result, nil
}

// CompleteRecommendation awards the reward for one recommendation id and
// persists it. Domain errors (not checked in, already completed) pass
// through unsaved.
func (s *ProgressService) CompleteRecommendation(ctx context.Context, userID, recommendationID string) (CompletionResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.store.Load(ctx, userID)
	if err != nil {
		return CompletionResult{}, err
	}

	result, err := ApplyCompleteRecommendation(progress, recommendationID, s.Today())
	if err != nil {
		return CompletionResult{}, err
	}

	if err := s.store.Save(ctx, userID, result.Progress); err != nil {
		return CompletionResult{}, err
	}
	return result, nil
}
