package services

import (
	"context"
	"time"

	"calmquest/config"
	"calmquest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordCheckin upserts the history entry for one user and day, so a repeat
// same-day submission overwrites rather than duplicates.
func RecordCheckin(userID, date string, metrics models.DailyMetrics, result models.ScoreResult) (*models.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	coll := config.OpenCollection("checkins")

	record := &models.CheckinRecord{
		ID:                   primitive.NewObjectID(),
		UserID:               userID,
		Date:                 date,
		Metrics:              metrics,
		Score:                result.Score,
		Category:             result.Category,
		Persona:              result.Persona,
		PredictedStressLevel: result.PredictedStressLevel,
		CreatedAt:            time.Now(),
	}

	filter := bson.M{"user_id": userID, "date": date}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "metrics", Value: record.Metrics},
		{Key: "score", Value: record.Score},
		{Key: "category", Value: record.Category},
		{Key: "persona", Value: record.Persona},
		{Key: "predicted_stress_level", Value: record.PredictedStressLevel},
		{Key: "created_at", Value: record.CreatedAt},
	}}}
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetCheckinsByUser returns the user's most recent check-ins, newest first.
func GetCheckinsByUser(userID string, limit int64) ([]models.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	coll := config.OpenCollection("checkins")
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.CheckinRecord
	err = cursor.All(ctx, &out)
	return out, err
}

// CountCheckinsOnDate returns how many users checked in on the given day.
func CountCheckinsOnDate(date string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	coll := config.OpenCollection("checkins")
	return coll.CountDocuments(ctx, bson.M{"date": date})
}

// Admin: users whose latest check-in carries the worst impact scores. A high
// score is high penalty, so sort descending.
func GetAtRiskUsers(limit int64) ([]models.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	coll := config.OpenCollection("checkins")
	pipe := []bson.M{
		{"$sort": bson.M{"date": -1}},
		{"$group": bson.M{
			"_id": "$user_id",
			"doc": bson.M{"$first": "$$ROOT"},
		}},
		{"$replaceRoot": bson.M{"newRoot": "$doc"}},
		{"$sort": bson.M{"score": -1}},
		{"$limit": limit},
	}
	cursor, err := coll.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.CheckinRecord
	err = cursor.All(ctx, &out)
	return out, err
}
