package main

import (
	"campus/config"
	"campus/database"
	"campus/gateway"
	paymentController "campus/controllers/payment"
	authRoutes "campus/routers/authRoutes"
	cartRoutes "campus/routers/cartRoutes"
	classRoutes "campus/routers/classRoutes"
	instructorRoutes "campus/routers/instructorRoutes"
	paymentRoutes "campus/routers/paymentRoutes"
	reportRoutes "campus/routers/reportRoutes"
	userRoutes "campus/routers/userRoutes"
	"campus/services"
	"campus/utils"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire the payment gateway and the settlement service
	stripe := gateway.NewStripeClient(config.AppConfig.StripeApiURL, config.AppConfig.StripeSecretKey)
	paymentController.Gateway = stripe
	paymentController.Svc = services.NewSettlement(database.Database.Db, stripe)

	reaper := utils.InitializeCartReaper()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)

	// Shut down cleanly on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if reaper != nil {
			reaper.Stop()
		}
		app.Shutdown()
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}

	database.Close()
	log.Println("Database connection closed")
}
