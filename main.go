package main

import (
	"log"
	"os"

	"calmquest/config"
	"calmquest/controllers"
	"calmquest/helpers"
	"calmquest/routes"
	"calmquest/scheduler"
	"calmquest/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	log.Println("Starting application...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	// Scoring configuration is resolved once here; the fallback to the
	// built-in defaults happens at startup, not inside the engine.
	weights := config.LoadFeatureWeights()
	params := config.LoadModelParams()

	progress := services.NewProgressService(services.NewMongoProgressStore())
	app := controllers.NewApp(weights, params, progress)

	//Init gin router
	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api, app)

	r.Static("/static", "./static")
	r.GET("/", func(c *gin.Context) { c.File("./static/index.html") })
	r.GET("/login", func(c *gin.Context) { c.File("./static/index.html") })
	r.GET("/signup", func(c *gin.Context) { c.File("./static/signup.html") })
	r.GET("/dashboard", func(c *gin.Context) { c.File("./static/dashboard.html") })

	s := scheduler.New()
	s.Start()
	defer s.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	//Start the server
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
