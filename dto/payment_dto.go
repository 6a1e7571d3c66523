package dto

import "time"

// PaymentDto is the wire form of a payment.
type PaymentDto struct {
	PaymentID     uint      `json:"paymentId,omitempty"`
	PaymentDate   time.Time `json:"paymentDate" validate:"required"`
	AmountPaid    float64   `json:"amountPaid" validate:"gt=0"`
	PaymentMode   string    `json:"paymentMode" validate:"required,max=50"`
	TransactionID string    `json:"transactionId" validate:"required,max=20"`
	PolicyID      uint      `json:"policyId" validate:"required"`
}

var paymentMessages = map[string]string{
	"PaymentDto.PaymentDate.required":   "Payment date is required",
	"PaymentDto.AmountPaid.gt":          "Amount paid must be greater than zero",
	"PaymentDto.PaymentMode.required":   "Payment mode is required",
	"PaymentDto.PaymentMode.max":        "Payment mode cannot exceed 50 characters",
	"PaymentDto.TransactionID.required": "Transaction ID is required",
	"PaymentDto.TransactionID.max":      "Transaction ID cannot exceed 20 characters",
	"PaymentDto.PolicyID.required":      "Policy ID is required",
}
