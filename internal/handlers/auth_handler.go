package handlers

import (
	"errors"
	"log"

	"staffdir/internal/metrics"
	"staffdir/internal/models"
	"staffdir/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	metrics     *metrics.Metrics
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/create", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister handles new account registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		h.metrics.ObserveRegistration("invalid")
		return err
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
	}
	if err := h.authService.RegisterUser(c.UserContext(), user); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			h.metrics.ObserveRegistration("duplicate")
		case errors.Is(err, services.ErrValidation):
			h.metrics.ObserveRegistration("invalid")
		default:
			h.metrics.ObserveRegistration("error")
			log.Printf("Error registering user: %v", err)
		}
		return respondError(c, err, "User not found")
	}

	h.metrics.ObserveRegistration("created")
	// models.User never serializes the password hash
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin handles login and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Both email and password are required.",
		})
	}

	result, err := h.authService.LoginUser(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.metrics.ObserveLogin("invalid_credentials")
		} else {
			h.metrics.ObserveLogin("error")
		}
		return respondError(c, err, "User not found")
	}

	h.metrics.ObserveLogin("success")
	return c.JSON(result)
}
