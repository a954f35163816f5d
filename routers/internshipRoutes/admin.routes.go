package internshipRoutes

import (
	controllers "stagi/controllers/internship"
	"stagi/middleware"
	validators "stagi/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminInternshipRoutes sets up admin internship and application routes
func SetupAdminInternshipRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/internship")

	// Internship CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, validators.CreateInternship(), controllers.AdminCreateInternship)
	adminGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateInternship(), controllers.AdminUpdateInternship)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, validators.InternshipID(), controllers.AdminDeleteInternship)
	adminGroup.Get("/list", middleware.JWTMiddleware, validators.InternshipList(), controllers.AdminGetInternships)

	// Application review
	applicationGroup := app.Group("/admin")
	applicationGroup.Get("/applications", middleware.JWTMiddleware, validators.ApplicationQuery(), controllers.AdminGetApplications)
	applicationGroup.Put("/application/:id/status", middleware.JWTMiddleware, validators.UpdateApplicationStatus(), controllers.AdminUpdateApplicationStatus)
}
