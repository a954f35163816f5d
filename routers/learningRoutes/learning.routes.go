package learningRoutes

import (
	controllers "stagi/controllers/learning"
	"stagi/middleware"
	validators "stagi/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes sets up intern-facing learning routes
func SetupLearningRoutes(app *fiber.App) {
	learningGroup := app.Group("/learning")

	// Progress overview and path content
	learningGroup.Get("/my", middleware.JWTMiddleware, controllers.GetMyLearningProgress)
	learningGroup.Get("/path/:id", middleware.JWTMiddleware, validators.PathID(), controllers.GetMyPathDetails)

	// Task completion
	learningGroup.Post("/task/:id/complete", middleware.JWTMiddleware, validators.CompleteTask(), controllers.MarkTaskComplete)
}
