package models

import "time"

// Gender is the closed set of values accepted for users and employees.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// User represents an admin account. Employees are scoped to the user that created them.
type User struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password    string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	PhoneNumber string    `json:"phoneNumber" gorm:"type:varchar(32)"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(16)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
