package services

import (
	"context"
	"sync"
	"time"

	"calmquest/config"
	"calmquest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressStore is the persistence port for UserProgress records. Load must
// return a zero-state record when none exists yet.
type ProgressStore interface {
	Load(ctx context.Context, userID string) (models.UserProgress, error)
	Save(ctx context.Context, userID string, progress models.UserProgress) error
}

// MongoProgressStore persists progress in the "progress" collection, one
// document per user.
type MongoProgressStore struct{}

func NewMongoProgressStore() *MongoProgressStore {
	return &MongoProgressStore{}
}

func (s *MongoProgressStore) Load(ctx context.Context, userID string) (models.UserProgress, error) {
	coll := config.OpenCollection("progress")
	var progress models.UserProgress
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return models.NewUserProgress(userID), nil
	}
	if err != nil {
		return models.UserProgress{}, err
	}
	if progress.BadgesUnlocked == nil {
		progress.BadgesUnlocked = []string{}
	}
	if progress.CompletedRecommendations == nil {
		progress.CompletedRecommendations = []string{}
	}
	return progress, nil
}

func (s *MongoProgressStore) Save(ctx context.Context, userID string, progress models.UserProgress) error {
	coll := config.OpenCollection("progress")
	progress.UserID = userID
	filter := bson.M{"user_id": userID}
	update := bson.D{{Key: "$set", Value: progress}}
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, filter, update, opts)
	return err
}

// MemoryProgressStore keeps progress in a map, for tests and local runs
// without Mongo.
type MemoryProgressStore struct {
	mu      sync.Mutex
	records map[string]models.UserProgress
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{records: map[string]models.UserProgress{}}
}

func (s *MemoryProgressStore) Load(_ context.Context, userID string) (models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.records[userID]; ok {
		return p, nil
	}
	return models.NewUserProgress(userID), nil
}

func (s *MemoryProgressStore) Save(_ context.Context, userID string, progress models.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	progress.UserID = userID
	s.records[userID] = progress
	return nil
}

// mongoTimeout bounds every store round trip started by the service layer.
const mongoTimeout = 10 * time.Second
