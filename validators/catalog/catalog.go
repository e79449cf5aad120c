package catalogValidator

import (
	"campus/middleware"
	"campus/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClassID validates the :id route parameter
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Class ID is required!")
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid Class ID!")
		}

		c.Locals("classID", id)
		return c.Next()
	}
}

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string  `json:"name"`
			Image           string  `json:"image"`
			Description     string  `json:"description"`
			InstructorName  string  `json:"instructor_name"`
			InstructorEmail string  `json:"instructor_email"`
			Price           float64 `json:"price"`
			AvailableSeats  int     `json:"available_seats"`
			VideoLink       string  `json:"video_link"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Fields must match their declared types!"})
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		}
		if strings.TrimSpace(reqData.InstructorEmail) == "" {
			errors["instructor_email"] = "Instructor email is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must be a non-negative number!"
		}
		if reqData.AvailableSeats < 0 {
			errors["available_seats"] = "Available seats must be a non-negative number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string   `json:"name"`
			Image          string   `json:"image"`
			Description    string   `json:"description"`
			Price          *float64 `json:"price"`
			AvailableSeats *int     `json:"available_seats"`
			TotalEnrolled  *int     `json:"total_enrolled"`
			VideoLink      string   `json:"video_link"`
		})

		// Non-numeric input for the numeric fields fails the parse
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Numeric fields must be numbers!"})
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		}
		if reqData.Price == nil || *reqData.Price < 0 {
			errors["price"] = "Price must be a non-negative number!"
		}
		if reqData.AvailableSeats == nil || *reqData.AvailableSeats < 0 {
			errors["available_seats"] = "Available seats must be a non-negative number!"
		}
		if reqData.TotalEnrolled == nil || *reqData.TotalEnrolled < 0 {
			errors["total_enrolled"] = "Total enrolled must be a non-negative number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClassUpdate", reqData)
		return c.Next()
	}
}

func ChangeStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Status != models.ClassApproved && reqData.Status != models.ClassDenied {
			errors["status"] = "Status must be approved or denied!"
		}
		if reqData.Status == models.ClassDenied && strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Reason is required when denying a class!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
