package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"calmquest/config"
	"calmquest/helpers"
	"calmquest/models"
	"calmquest/services"

	"github.com/gin-gonic/gin"
)

// App carries the startup-loaded scoring configuration and the progress
// service into the wellness handlers.
type App struct {
	Weights  config.FeatureWeights
	Params   config.ModelParams
	Progress *services.ProgressService

	// RecordHistory writes the day's check-in record. Failures are logged,
	// not fatal: the progression ledger is the source of truth and the
	// same-day guard would hide the awarded gains from a retry.
	RecordHistory func(userID, date string, metrics models.DailyMetrics, result models.ScoreResult) error
}

func NewApp(weights config.FeatureWeights, params config.ModelParams, progress *services.ProgressService) *App {
	return &App{
		Weights:  weights,
		Params:   params,
		Progress: progress,
		RecordHistory: func(userID, date string, metrics models.DailyMetrics, result models.ScoreResult) error {
			_, err := services.RecordCheckin(userID, date, metrics, result)
			return err
		},
	}
}

// CalculateScore computes the biological impact score for the submitted
// metrics. Pure computation, nothing is persisted.
func (a *App) CalculateScore() gin.HandlerFunc {
	return func(c *gin.Context) {
		var metrics models.DailyMetrics
		if err := c.BindJSON(&metrics); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metrics payload"})
			return
		}
		if err := validate.Struct(metrics); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := services.ComputeScore(metrics, a.Weights, a.Params)
		c.JSON(http.StatusOK, result)
	}
}

// CalculateScoreLegacy accepts the old 0-10 slider payload and maps it onto
// physical units before scoring.
func (a *App) CalculateScoreLegacy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sliders models.LegacySliderMetrics
		if err := c.BindJSON(&sliders); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slider payload"})
			return
		}
		if err := validate.Struct(sliders); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := services.ComputeScore(sliders.ToDailyMetrics(), a.Weights, a.Params)
		c.JSON(http.StatusOK, result)
	}
}

// Checkin submits the daily check-in: awards XP, streaks and badges once per
// calendar day, and records the day's metrics in the history collection.
func (a *App) Checkin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			models.DailyMetrics
			Score int `json:"score" validate:"min=0,max=100"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check-in payload"})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := a.Progress.Checkin(c.Request.Context(), userID, body.Score)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// History keeps the server-side computation, not the client's echo.
		scoreResult := services.ComputeScore(body.DailyMetrics, a.Weights, a.Params)
		resp := gin.H{
			"userData":        result.Progress,
			"xpGains":         result.XPGains,
			"levelUp":         result.LevelUp,
			"newBadges":       result.NewBadges,
			"recommendations": services.FilterCompleted(scoreResult.Recommendations, result.Progress),
		}
		if err := a.RecordHistory(userID, a.Progress.Today(), body.DailyMetrics, scoreResult); err != nil {
			log.Printf("Check-in history write failed for user %s: %v", userID, err)
			resp["warning"] = "check-in recorded but history entry could not be saved"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// CompleteRecommendation marks one recommendation done for today.
func (a *App) CompleteRecommendation() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			RecommendationID string `json:"recommendationId" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recommendationId is required"})
			return
		}
		if !services.IsKnownRecommendation(body.RecommendationID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown recommendation"})
			return
		}

		result, err := a.Progress.CompleteRecommendation(c.Request.Context(), userID, body.RecommendationID)
		if errors.Is(err, services.ErrNotCheckedInToday) || errors.Is(err, services.ErrAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetProgress returns the current user's gamification record.
func (a *App) GetProgress() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		progress, err := a.Progress.GetProgress(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, progress)
	}
}

// GetBadges returns the badge catalog with the user's unlocked set.
func (a *App) GetBadges() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		progress, err := a.Progress.GetProgress(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"badges":   models.Badges,
			"unlocked": progress.BadgesUnlocked,
		})
	}
}

// GetMyCheckins returns the current user's check-in history.
func (a *App) GetMyCheckins() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		limit := int64(30)
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}
		checkins, err := services.GetCheckinsByUser(userID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, checkins)
	}
}

// GetAtRiskUsers returns users with the worst latest scores (admin only).
func (a *App) GetAtRiskUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := int64(10)
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}
		records, err := services.GetAtRiskUsers(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}
