package entity

import "time"

// Customer is a policy holder. Email is the natural key: every external
// lookup uses it, the integer id stays internal to the store.
type Customer struct {
	ID          uint      `json:"customerId" gorm:"primaryKey"`
	FullName    string    `json:"fullName" gorm:"type:varchar(100);not null"`
	Email       string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" gorm:"type:varchar(15)"`
	Address     *string   `json:"address,omitempty" gorm:"type:varchar(200)"`
	DateOfBirth time.Time `json:"dateOfBirth" gorm:"not null"`

	Policies []Policy `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}
