package paymentController

import (
	"campus/database"
	"campus/gateway"
	"campus/middleware"
	"campus/models"
	"campus/services"
	"campus/utils"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
)

// Gateway is the payment-intent client, wired in main
var Gateway gateway.Client

// Svc is the settlement service, wired in main
var Svc *services.Settlement

// CreatePaymentIntent asks the gateway for an intent covering the given price
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	if Gateway == nil {
		return middleware.ErrorJson(c, fiber.StatusBadGateway, middleware.KindGateway, "Payment gateway is not configured!")
	}

	amountCents := int64(math.Round(reqData.Price * 100))
	intent, err := Gateway.CreateIntent(amountCents, "usd")
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.ErrorJson(c, fiber.StatusBadGateway, middleware.KindGateway, "Failed to create payment intent!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// PaymentInfo settles a confirmed purchase: seats, enrollment, cart and ledger
// move in one transaction inside the settlement service
func PaymentInfo(c *fiber.Ctx) error {
	userEmail, ok := c.Locals("email").(string)
	if !ok || userEmail == "" {
		return middleware.ErrorJson(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		ClassIDs      []uint  `json:"class_ids"`
		TransactionID string  `json:"transaction_id"`
		Amount        float64 `json:"amount"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	result, err := Svc.Settle(services.SettleInput{
		UserEmail:     userEmail,
		ClassIDs:      reqData.ClassIDs,
		TransactionID: reqData.TransactionID,
		Amount:        reqData.Amount,
	})
	if err != nil {
		return middleware.FromServiceError(c, err, "Failed to settle payment!")
	}

	// Receipt is best effort; the purchase already settled
	go func(email string, amount float64, classes []models.Class) {
		names := make([]string, 0, len(classes))
		for _, cl := range classes {
			names = append(names, cl.Name)
		}
		if err := utils.SendReceiptEmail(email, amount, names); err != nil {
			log.Printf("Error sending receipt email: %v", err)
		}
	}(userEmail, reqData.Amount, result.Classes)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment settled successfully!", result)
}

// PaymentHistory lists a user's payments, newest first
func PaymentHistory(c *fiber.Ctx) error {
	email := c.Params("email")

	var payments []models.Payment
	if err := database.Database.Db.Where("user_email = ?", email).
		Preload("Classes").Order("date desc").Find(&payments).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch payment history!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", payments)
}

// PaymentHistoryLength counts a user's payments without materializing them
func PaymentHistoryLength(c *fiber.Ctx) error {
	email := c.Params("email")

	var total int64
	if err := database.Database.Db.Model(&models.Payment{}).Where("user_email = ?", email).Count(&total).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to count payment history!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history length fetched successfully!", fiber.Map{
		"total": total,
	})
}
