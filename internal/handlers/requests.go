package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"staffdir/internal/models"
)

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name        string        `json:"name" validate:"required,max=100"`
	Email       string        `json:"email" validate:"required,email"`
	Password    string        `json:"password" validate:"required,min=6,max=72"`
	PhoneNumber string        `json:"phoneNumber" validate:"required"`
	Gender      models.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a partial account update. Password is stored as sent.
type UpdateUserRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=100"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	Password    *string        `json:"password" validate:"omitempty"`
	PhoneNumber *string        `json:"phoneNumber"`
	Gender      *models.Gender `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

func (r UpdateUserRequest) toUpdate() models.UserUpdate {
	return models.UserUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Gender:      r.Gender,
	}
}

// CreateEmployeeRequest represents the request body for a new employee.
// There is no adminId field: ownership comes from the bearer token.
type CreateEmployeeRequest struct {
	Name        string        `json:"name" validate:"required,max=100"`
	Email       string        `json:"email" validate:"required,email"`
	Gender      models.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	Age         Age           `json:"age" validate:"required,gt=0,lt=150"`
	Role        models.Role   `json:"role" validate:"required,oneof=Developer Tester Designer"`
	PhoneNumber string        `json:"phoneNumber" validate:"required"`
	JoiningDate string        `json:"joiningDate" validate:"required"`
}

func (r CreateEmployeeRequest) toModel() *models.Employee {
	return &models.Employee{
		Name:        r.Name,
		Email:       r.Email,
		Gender:      r.Gender,
		Age:         int(r.Age),
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		JoiningDate: r.JoiningDate,
	}
}

// UpdateEmployeeRequest is a partial employee update. Fields the client echoes back
// such as _id or adminId are ignored.
type UpdateEmployeeRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=100"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	Gender      *models.Gender `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Age         *Age           `json:"age" validate:"omitempty,gt=0,lt=150"`
	Role        *models.Role   `json:"role" validate:"omitempty,oneof=Developer Tester Designer"`
	PhoneNumber *string        `json:"phoneNumber"`
	JoiningDate *string        `json:"joiningDate"`
}

func (r UpdateEmployeeRequest) toUpdate() models.EmployeeUpdate {
	update := models.EmployeeUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Gender:      r.Gender,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		JoiningDate: r.JoiningDate,
	}
	if r.Age != nil {
		age := int(*r.Age)
		update.Age = &age
	}
	return update
}

// Age accepts either a JSON number or a numeric string; the mobile client sends
// the raw text field value.
type Age int

// UnmarshalJSON implements json.Unmarshaler.
func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("age must be an integer, got %s", data)
	}
	*a = Age(n)
	return nil
}
