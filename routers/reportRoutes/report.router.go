package reportRoutes

import (
	controllers "campus/controllers/report"
	"campus/middleware"
	"campus/models"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes sets up aggregation routes
func SetupReportRoutes(app *fiber.App) {
	app.Get("/popular-classes", controllers.PopularClasses)
	app.Get("/popular-instructors", controllers.PopularInstructors)
	app.Get("/admin-stats", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.AdminStats)
	app.Get("/enrolled-classes/:email", middleware.JWTMiddleware, controllers.EnrolledClasses)
}
