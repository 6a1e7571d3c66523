package entity

import "time"

// Claim is filed against a policy. ClaimNumber is the natural key.
type Claim struct {
	ID          uint      `json:"claimId" gorm:"primaryKey"`
	ClaimNumber string    `json:"claimNumber" gorm:"type:varchar(50);uniqueIndex;not null"`
	ClaimDate   time.Time `json:"claimDate" gorm:"not null"`
	ClaimAmount float64   `json:"claimAmount" gorm:"type:decimal(18,2);not null"`
	Status      string    `json:"status" gorm:"type:varchar(50);not null;default:'Pending'"`
	Description *string   `json:"description,omitempty" gorm:"type:varchar(500)"`

	PolicyID uint   `json:"policyId" gorm:"index;not null"`
	Policy   Policy `json:"-"`
}
