package entity

import "time"

// Policy is an insurance policy owned by a customer. PolicyNumber is the
// natural key. Deleting a policy removes its claims and payments through the
// schema-level cascade.
type Policy struct {
	ID            uint      `json:"policyId" gorm:"primaryKey"`
	PolicyNumber  string    `json:"policyNumber" gorm:"type:varchar(50);uniqueIndex;not null"`
	PolicyType    string    `json:"policyType" gorm:"type:varchar(100);not null"`
	PremiumAmount float64   `json:"premiumAmount" gorm:"type:decimal(18,2);not null"`
	StartDate     time.Time `json:"startDate" gorm:"not null"`
	EndDate       time.Time `json:"endDate" gorm:"not null"`
	Status        string    `json:"status" gorm:"type:varchar(50);not null;default:'Active'"`

	CustomerID uint     `json:"customerId" gorm:"index;not null"`
	Customer   Customer `json:"-"`

	Claims   []Claim   `json:"-" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
	Payments []Payment `json:"-" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}
