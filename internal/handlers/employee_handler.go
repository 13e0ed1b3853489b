package handlers

import (
	"staffdir/internal/middleware"
	"staffdir/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const employeeNotFound = "Employee not found"

// EmployeeHandler handles HTTP requests for employees. Every route expects
// middleware.AuthRequired to have run.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the employee routes behind the given auth middleware.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	employeeRoutes := router.Group("/employees", auth)
	employeeRoutes.Post("/create", h.HandleCreateEmployee)
	employeeRoutes.Get("/getAll", h.HandleGetEmployees)
	employeeRoutes.Get("/get/:id", h.HandleGetEmployeeByID)
	employeeRoutes.Put("/update/:id", h.HandleUpdateEmployee)
	employeeRoutes.Delete("/delete/:id", h.HandleDeleteEmployee)
}

// HandleCreateEmployee creates an employee owned by the caller.
func (h *EmployeeHandler) HandleCreateEmployee(c *fiber.Ctx) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return fiber.ErrForbidden
	}

	var req CreateEmployeeRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	employee := req.toModel()
	if err := h.service.CreateEmployee(c.UserContext(), adminID, employee); err != nil {
		return respondError(c, err, employeeNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// HandleGetEmployees lists the caller's employees.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return fiber.ErrForbidden
	}

	employees, err := h.service.GetEmployeesByAdmin(c.UserContext(), adminID)
	if err != nil {
		return respondError(c, err, employeeNotFound)
	}
	return c.JSON(employees)
}

// HandleGetEmployeeByID retrieves a single employee.
func (h *EmployeeHandler) HandleGetEmployeeByID(c *fiber.Ctx) error {
	callerID, _ := middleware.UserIDFromContext(c)

	employee, err := h.service.GetEmployeeByID(c.UserContext(), callerID, c.Params("id"))
	if err != nil {
		return respondError(c, err, employeeNotFound)
	}
	return c.JSON(employee)
}

// HandleUpdateEmployee applies a partial update to an employee.
func (h *EmployeeHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	callerID, _ := middleware.UserIDFromContext(c)

	var req UpdateEmployeeRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	employee, err := h.service.UpdateEmployee(c.UserContext(), callerID, c.Params("id"), req.toUpdate())
	if err != nil {
		return respondError(c, err, employeeNotFound)
	}
	return c.JSON(employee)
}

// HandleDeleteEmployee removes an employee.
func (h *EmployeeHandler) HandleDeleteEmployee(c *fiber.Ctx) error {
	callerID, _ := middleware.UserIDFromContext(c)

	if err := h.service.DeleteEmployee(c.UserContext(), callerID, c.Params("id")); err != nil {
		return respondError(c, err, employeeNotFound)
	}
	return c.JSON(fiber.Map{
		"message": "Employee deleted successfully",
	})
}
