package learningRoutes

import (
	controllers "stagi/controllers/learning"
	"stagi/middleware"
	validators "stagi/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminLearningRoutes sets up admin learning path management routes
func SetupAdminLearningRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/learning")

	// Learning Path CRUD
	adminGroup.Post("/path", middleware.JWTMiddleware, validators.CreatePath(), controllers.AdminCreatePath)
	adminGroup.Put("/path/:id", middleware.JWTMiddleware, validators.UpdatePath(), controllers.AdminUpdatePath)
	adminGroup.Delete("/path/:id", middleware.JWTMiddleware, validators.PathID(), controllers.AdminDeletePath)
	adminGroup.Get("/path/list", middleware.JWTMiddleware, controllers.AdminGetPaths)
	adminGroup.Get("/path/:id", middleware.JWTMiddleware, validators.PathID(), controllers.AdminGetPathDetails)

	// Module Management
	adminGroup.Post("/path/:id/module", middleware.JWTMiddleware, validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/module/:id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/module/:id", middleware.JWTMiddleware, validators.ModuleID(), controllers.AdminDeleteModule)

	// Task Management
	adminGroup.Post("/module/:id/task", middleware.JWTMiddleware, validators.CreateTask(), controllers.AdminCreateTask)
	adminGroup.Put("/task/:id", middleware.JWTMiddleware, validators.UpdateTask(), controllers.AdminUpdateTask)
	adminGroup.Delete("/task/:id", middleware.JWTMiddleware, validators.TaskID(), controllers.AdminDeleteTask)

	// Progress Tracking
	internGroup := app.Group("/admin/intern")
	internGroup.Get("/:user_id/progress", middleware.JWTMiddleware, validators.InternID(), controllers.AdminGetInternProgress)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, controllers.AdminDashboardStats)
}
