package routes

import (
	"calmquest/controllers"
	"calmquest/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup, app *controllers.App) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())
	router.POST("/forgot-password", controllers.ForgotPassword())
	router.POST("/reset-password", controllers.ResetPassword())
	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user (all authenticated)
		protected.GET("/me", controllers.GetMe())

		// ADMIN only
		protected.GET("/users",
			middleware.Authorize("ADMIN"),
			controllers.GetUsers(),
		)
		protected.GET("/admin/at-risk",
			middleware.Authorize("ADMIN"),
			app.GetAtRiskUsers(),
		)

		// USER (self) + ADMIN
		protected.GET("/user/:id",
			middleware.Authorize("ADMIN", "USER"),
			controllers.GetUser(),
		)

		// Scoring (pure computation)
		protected.POST("/calculate-score", app.CalculateScore())
		protected.POST("/calculate-score/legacy", app.CalculateScoreLegacy())

		// Daily check-in and gamification
		protected.POST("/checkin", app.Checkin())
		protected.POST("/complete-recommendation", app.CompleteRecommendation())
		protected.GET("/progress", app.GetProgress())
		protected.GET("/badges", app.GetBadges())
		protected.GET("/checkins", app.GetMyCheckins())
	}
}
