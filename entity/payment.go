package entity

import "time"

// Payment records a premium payment on a policy. TransactionID is the
// natural key.
type Payment struct {
	ID            uint      `json:"paymentId" gorm:"primaryKey"`
	PaymentDate   time.Time `json:"paymentDate" gorm:"not null"`
	AmountPaid    float64   `json:"amountPaid" gorm:"type:decimal(18,2);not null"`
	PaymentMode   string    `json:"paymentMode" gorm:"type:varchar(50);not null"`
	TransactionID string    `json:"transactionId" gorm:"type:varchar(20);uniqueIndex;not null"`

	PolicyID uint   `json:"policyId" gorm:"index;not null"`
	Policy   Policy `json:"-"`
}
