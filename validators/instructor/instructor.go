package instructorValidator

import (
	"campus/middleware"
	"campus/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Experience string `json:"experience"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Email == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

func ApplicationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		if reqData.Status != models.ApplicationApproved && reqData.Status != models.ApplicationDenied {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status must be approved or denied!"})
		}

		c.Locals("validatedApplicationStatus", reqData)
		return c.Next()
	}
}
