package main

import (
	"log"
	"stagi/config"
	"stagi/database"
	authRoutes "stagi/routers/authRoutes"
	internshipRoutes "stagi/routers/internshipRoutes"
	learningRoutes "stagi/routers/learningRoutes"
	"stagi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded resumes and content files
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	internshipRoutes.SetupInternshipRoutes(app)
	internshipRoutes.SetupAdminInternshipRoutes(app)
	learningRoutes.SetupLearningRoutes(app)
	learningRoutes.SetupAdminLearningRoutes(app)

	// Nightly repair of cached progress percents
	utils.StartProgressScheduler(database.Database.Db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
