package dto

import "time"

// ClaimDto is the wire form of a claim. Status may be omitted on input and
// defaults to "Pending".
type ClaimDto struct {
	ClaimID     uint      `json:"claimId,omitempty"`
	ClaimNumber string    `json:"claimNumber" validate:"required,max=50"`
	ClaimDate   time.Time `json:"claimDate" validate:"required"`
	ClaimAmount float64   `json:"claimAmount" validate:"gt=0"`
	Status      string    `json:"status,omitempty" validate:"omitempty,max=50"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	PolicyID    uint      `json:"policyId" validate:"required"`
}

var claimMessages = map[string]string{
	"ClaimDto.ClaimNumber.required": "Claim Number is required",
	"ClaimDto.ClaimNumber.max":      "Claim Number cannot exceed 50 characters",
	"ClaimDto.ClaimDate.required":   "Claim Date is required",
	"ClaimDto.ClaimAmount.gt":       "Claim Amount must be greater than zero",
	"ClaimDto.Status.max":           "Status cannot exceed 50 characters",
	"ClaimDto.Description.max":      "Description cannot exceed 500 characters",
	"ClaimDto.PolicyID.required":    "Policy ID is required",
}
