package routes

import (
	"SuratMutasi/handlers"
	"SuratMutasi/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, db *gorm.DB) {
	letterHandler := handlers.NewLetterHandler(db)
	trackHandler := handlers.NewTrackHandler(db)
	authHandler := handlers.NewAuthHandler(db)
	operatorHandler := handlers.NewOperatorHandler(db)

	// Public
	app.Get("/health-check", handlers.HealthCheck)
	app.Get("/track", trackHandler.ShowTrackForm)
	app.Post("/track", trackHandler.TrackLetter)

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)
	api.Get("/me", middleware.RequireAuth(), authHandler.Me)

	// Letters CRUD (operator terautentikasi)
	letters := api.Group("/letters", middleware.RequireAuth())
	letters.Get("/", letterHandler.ListLetters)
	letters.Post("/", letterHandler.CreateLetter)
	letters.Get("/:id", letterHandler.GetLetterByID)
	letters.Put("/:id", letterHandler.UpdateLetter)
	letters.Patch("/:id/progress", letterHandler.UpdateLetterProgress)
	letters.Delete("/:id", letterHandler.DeleteLetter)

	api.Get("/dashboard", middleware.RequireAuth(), letterHandler.Dashboard)

	// ----- ADMIN OPERATORS -----
	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.Post("/operators", operatorHandler.CreateOperator)
	admin.Get("/operators", operatorHandler.ListOperators)
}
