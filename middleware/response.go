package middleware

import (
	"campus/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Stable machine-readable error kinds surfaced to clients
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindCapacity     = "capacity"
	KindConflict     = "conflict"
	KindGateway      = "gateway"
	KindStore        = "store"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorJson responds with a machine-readable kind plus a human message
func ErrorJson(c *fiber.Ctx, statusCode int, kind, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  false,
		"kind":    kind,
		"message": message,
		"data":    nil,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"kind":    KindValidation,
		"message": "Validation failed!",
		"data":    errs,
	})
}

// FromServiceError maps a service error to its HTTP response
func FromServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return ErrorJson(c, fiber.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, services.ErrCapacity):
		return ErrorJson(c, fiber.StatusConflict, KindCapacity, err.Error())
	case errors.Is(err, services.ErrConflict):
		return ErrorJson(c, fiber.StatusConflict, KindConflict, err.Error())
	case errors.Is(err, services.ErrGateway):
		return ErrorJson(c, fiber.StatusBadGateway, KindGateway, err.Error())
	case errors.Is(err, services.ErrValidation):
		return ErrorJson(c, fiber.StatusUnprocessableEntity, KindValidation, err.Error())
	}
	return ErrorJson(c, fiber.StatusInternalServerError, KindStore, fallback)
}
