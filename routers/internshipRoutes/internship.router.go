package internshipRoutes

import (
	controllers "stagi/controllers/internship"
	"stagi/middleware"
	validators "stagi/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupInternshipRoutes sets up candidate-facing internship routes
func SetupInternshipRoutes(app *fiber.App) {
	internshipGroup := app.Group("/internship")

	// Browsing open postings
	internshipGroup.Get("/list", middleware.JWTMiddleware, validators.InternshipList(), controllers.GetOpenInternships)
	internshipGroup.Get("/:id", middleware.JWTMiddleware, validators.InternshipID(), controllers.GetInternshipDetails)

	// Applying
	internshipGroup.Post("/:id/apply", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("apply-internship"), validators.SubmitApplication(), controllers.SubmitApplication)
	internshipGroup.Post("/resume", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("apply-internship"), controllers.UploadResume)

	// Application tracking
	userGroup := app.Group("/user")
	userGroup.Get("/applications", middleware.JWTMiddleware, controllers.GetMyApplications)
}
