package models

import "time"

// Role is the job role of an employee.
type Role string

const (
	RoleDeveloper Role = "Developer"
	RoleTester    Role = "Tester"
	RoleDesigner  Role = "Designer"
)

// Employee is a directory record owned by exactly one admin User.
type Employee struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(16);not null"`
	Age         int       `json:"age"`
	Role        Role      `json:"role" gorm:"type:varchar(16);not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"type:varchar(32)"`
	JoiningDate string    `json:"joiningDate" gorm:"type:varchar(32)"` // free-form, not parsed
	AdminID     string    `json:"adminId" gorm:"index;type:varchar(36);not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
