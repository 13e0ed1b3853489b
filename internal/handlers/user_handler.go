package handlers

import (
	"staffdir/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles account listing and maintenance.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/getAll", h.HandleGetUsers)
	userRoutes.Put("/update/:id", h.HandleUpdateUser)
	userRoutes.Delete("/delete/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists every account.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(users)
}

// HandleUpdateUser applies a partial update to an account.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), req.toUpdate())
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(user)
}

// HandleDeleteUser removes an account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
