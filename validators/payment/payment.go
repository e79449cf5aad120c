package paymentValidator

import (
	"campus/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		if reqData.Price <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"price": "Price must be greater than 0!"})
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func PaymentInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassIDs      []uint  `json:"class_ids"`
			TransactionID string  `json:"transaction_id"`
			Amount        float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if len(reqData.ClassIDs) == 0 {
			errors["class_ids"] = "At least one class ID is required!"
		}
		for _, id := range reqData.ClassIDs {
			if id == 0 {
				errors["class_ids"] = "Class IDs must be positive!"
				break
			}
		}
		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transaction_id"] = "Transaction ID is required!"
		}
		if reqData.Amount < 0 {
			errors["amount"] = "Amount must be a non-negative number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
