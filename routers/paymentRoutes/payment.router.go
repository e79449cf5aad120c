package paymentRoutes

import (
	controllers "campus/controllers/payment"
	"campus/middleware"
	validators "campus/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout and ledger routes
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, validators.CreateIntent(), controllers.CreatePaymentIntent)
	app.Post("/payment-info", middleware.JWTMiddleware, validators.PaymentInfo(), controllers.PaymentInfo)
	app.Get("/payment-history/:email", middleware.JWTMiddleware, controllers.PaymentHistory)
	app.Get("/payment-history-length/:email", middleware.JWTMiddleware, controllers.PaymentHistoryLength)
}
