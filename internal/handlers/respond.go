package handlers

import (
	"errors"
	"fmt"
	"log"

	"staffdir/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const duplicateEmailMessage = "Email already in use. Please use a different email."

// parseAndValidate decodes the JSON body into req and runs the struct validators.
// It writes the 400 response itself and returns false when the request is unusable.
func parseAndValidate(c *fiber.Ctx, validate *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing request body for %s: %v", c.Path(), err)
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// respondError maps a service error onto the HTTP response. notFound is the message
// used for a missing record.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": notFound})
	case errors.Is(err, services.ErrDuplicateEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": duplicateEmailMessage})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password."})
	default:
		log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error. Please try again later.",
		})
	}
}

// ErrorHandler is the Fiber fallback for errors returned by handlers or middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	return respondError(c, err, "Not found")
}
