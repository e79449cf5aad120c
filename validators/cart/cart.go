package cartValidator

import (
	"campus/middleware"

	"github.com/gofiber/fiber/v2"
)

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID uint `json:"class_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		if reqData.ClassID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"class_id": "Class ID is required!"})
		}

		c.Locals("validatedCartAdd", reqData)
		return c.Next()
	}
}
