package cartRoutes

import (
	controllers "campus/controllers/cart"
	"campus/middleware"
	validators "campus/validators/cart"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(app *fiber.App) {
	app.Post("/add-to-cart", middleware.JWTMiddleware, validators.AddToCart(), controllers.AddToCart)
	app.Get("/cart/:email", middleware.JWTMiddleware, controllers.GetCartByEmail)
	app.Get("/cart-item/:id", middleware.JWTMiddleware, controllers.GetCartItem)
	app.Delete("/delete-cart-item/:id", middleware.JWTMiddleware, controllers.DeleteCartItem)
}
