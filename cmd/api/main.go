package main

import (
	"log"
	"os"

	"SuratMutasi/config"
	"SuratMutasi/middleware"
	"SuratMutasi/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := config.ConnectDB()

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	routes.Register(app, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 API running on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
