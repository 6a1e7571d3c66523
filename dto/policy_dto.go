package dto

import "time"

// PolicyDto is the wire form of a policy. Status may be omitted on input and
// defaults to "Active".
type PolicyDto struct {
	PolicyID      uint      `json:"policyId,omitempty"`
	PolicyNumber  string    `json:"policyNumber" validate:"required,max=50"`
	PolicyType    string    `json:"policyType" validate:"required,max=100"` // Health, Vehicle, Life, etc.
	PremiumAmount float64   `json:"premiumAmount" validate:"gt=0"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required"`
	Status        string    `json:"status,omitempty" validate:"omitempty,max=50"`
	CustomerID    uint      `json:"customerId" validate:"required"`
}

var policyMessages = map[string]string{
	"PolicyDto.PolicyNumber.required":  "Policy number is required",
	"PolicyDto.PolicyNumber.max":       "Policy number cannot exceed 50 characters",
	"PolicyDto.PolicyType.required":    "Policy type is required",
	"PolicyDto.PolicyType.max":         "Policy type cannot exceed 100 characters",
	"PolicyDto.PremiumAmount.gt":       "Premium amount must be greater than zero",
	"PolicyDto.StartDate.required":     "Start date is required",
	"PolicyDto.EndDate.required":       "End date is required",
	"PolicyDto.Status.max":             "Status cannot exceed 50 characters",
	"PolicyDto.CustomerID.required":    "Customer ID is required",
}
