package dto

import "time"

// CustomerDto is the wire form of a customer. CustomerID is assigned by the
// store and ignored on input.
type CustomerDto struct {
	CustomerID  uint      `json:"customerId,omitempty"`
	FullName    string    `json:"fullName" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email,max=100"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" validate:"omitempty,max=15"`
	Address     *string   `json:"address,omitempty" validate:"omitempty,max=200"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
}

var customerMessages = map[string]string{
	"CustomerDto.FullName.required":    "Full name is required",
	"CustomerDto.FullName.max":         "Full name cannot exceed 100 characters",
	"CustomerDto.Email.required":       "Email is required",
	"CustomerDto.Email.email":          "Invalid email format",
	"CustomerDto.Email.max":            "Email cannot exceed 100 characters",
	"CustomerDto.PhoneNumber.max":      "Phone number cannot exceed 15 characters",
	"CustomerDto.Address.max":          "Address cannot exceed 200 characters",
	"CustomerDto.DateOfBirth.required": "Date of Birth is required",
}
