package instructorRoutes

import (
	controllers "campus/controllers/instructor"
	"campus/middleware"
	"campus/models"
	validators "campus/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up instructor application routes
func SetupInstructorRoutes(app *fiber.App) {
	app.Post("/as-instructor", middleware.JWTMiddleware, validators.Apply(), controllers.Apply)
	app.Get("/applied-instructors/:email", middleware.JWTMiddleware, controllers.AppliedByEmail)
	app.Patch("/application-status/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.ApplicationStatus(), controllers.ChangeApplicationStatus)
}
