package userRoutes

import (
	controllers "campus/controllers/user"
	"campus/middleware"
	"campus/models"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile CRUD routes
func SetupUserRoutes(app *fiber.App) {
	app.Post("/new-user", controllers.CreateUser)
	app.Get("/users", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetUsers)
	app.Get("/users/:id", middleware.JWTMiddleware, controllers.GetUserByID)
	app.Get("/user/:email", middleware.JWTMiddleware, controllers.GetUserByEmail)
	app.Put("/update-user/:id", middleware.JWTMiddleware, controllers.UpdateUser)
	app.Delete("/delete-user/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteUser)
}
