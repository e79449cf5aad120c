package classRoutes

import (
	controllers "campus/controllers/catalog"
	"campus/middleware"
	"campus/models"
	validators "campus/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up catalog routes
func SetupClassRoutes(app *fiber.App) {
	app.Post("/new-class", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CreateClass(), controllers.CreateClass)

	app.Get("/classes", middleware.JWTMiddleware, controllers.GetAllClasses)
	app.Get("/classes/:email", middleware.JWTMiddleware, controllers.GetClassesByInstructor)
	app.Get("/approved-classes", controllers.GetApprovedClasses)
	app.Get("/classes-manage", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetClassesManage)
	app.Get("/class/:id", validators.ClassID(), controllers.GetClassByID)

	app.Patch("/change-status/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.ClassID(), validators.ChangeStatus(), controllers.ChangeStatus)
	app.Put("/update-class/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.ClassID(), validators.UpdateClass(), controllers.UpdateClass)
}
