package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckinRecord stores one submitted check-in per user per day (history).
type CheckinRecord struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               string             `bson:"user_id" json:"user_id"`
	Date                 string             `bson:"date" json:"date"` // YYYY-MM-DD
	Metrics              DailyMetrics       `bson:"metrics" json:"metrics"`
	Score                int                `bson:"score" json:"score"`
	Category             Category           `bson:"category" json:"category"`
	Persona              string             `bson:"persona" json:"persona"`
	PredictedStressLevel float64            `bson:"predicted_stress_level" json:"predictedStressLevel"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
}
