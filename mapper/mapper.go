// Package mapper copies fields between stored entities and their wire
// records. The copy is purely structural: no conversions, no derived fields.
package mapper

import (
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/entity"
)

// Mapper is built once at startup and handed to every service.
type Mapper struct{}

func New() *Mapper { return &Mapper{} }

func (m *Mapper) CustomerToEntity(d *dto.CustomerDto) *entity.Customer {
	return &entity.Customer{
		FullName:    d.FullName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		DateOfBirth: d.DateOfBirth,
	}
}

func (m *Mapper) CustomerToDto(e *entity.Customer) *dto.CustomerDto {
	return &dto.CustomerDto{
		CustomerID:  e.ID,
		FullName:    e.FullName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		DateOfBirth: e.DateOfBirth,
	}
}

func (m *Mapper) CustomerDtos(es []entity.Customer) []dto.CustomerDto {
	out := make([]dto.CustomerDto, 0, len(es))
	for i := range es {
		out = append(out, *m.CustomerToDto(&es[i]))
	}
	return out
}

// MergeCustomer overwrites every stored field with the inbound record
// (full-replace semantics). The surrogate id is never touched.
func (m *Mapper) MergeCustomer(d *dto.CustomerDto, e *entity.Customer) {
	e.FullName = d.FullName
	e.Email = d.Email
	e.PhoneNumber = d.PhoneNumber
	e.Address = d.Address
	e.DateOfBirth = d.DateOfBirth
}

func (m *Mapper) PolicyToEntity(d *dto.PolicyDto) *entity.Policy {
	return &entity.Policy{
		PolicyNumber:  d.PolicyNumber,
		PolicyType:    d.PolicyType,
		PremiumAmount: d.PremiumAmount,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        d.Status,
		CustomerID:    d.CustomerID,
	}
}

func (m *Mapper) PolicyToDto(e *entity.Policy) *dto.PolicyDto {
	return &dto.PolicyDto{
		PolicyID:      e.ID,
		PolicyNumber:  e.PolicyNumber,
		PolicyType:    e.PolicyType,
		PremiumAmount: e.PremiumAmount,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Status:        e.Status,
		CustomerID:    e.CustomerID,
	}
}

func (m *Mapper) PolicyDtos(es []entity.Policy) []dto.PolicyDto {
	out := make([]dto.PolicyDto, 0, len(es))
	for i := range es {
		out = append(out, *m.PolicyToDto(&es[i]))
	}
	return out
}

func (m *Mapper) MergePolicy(d *dto.PolicyDto, e *entity.Policy) {
	e.PolicyNumber = d.PolicyNumber
	e.PolicyType = d.PolicyType
	e.PremiumAmount = d.PremiumAmount
	e.StartDate = d.StartDate
	e.EndDate = d.EndDate
	e.Status = d.Status
	e.CustomerID = d.CustomerID
}

func (m *Mapper) ClaimToEntity(d *dto.ClaimDto) *entity.Claim {
	return &entity.Claim{
		ClaimNumber: d.ClaimNumber,
		ClaimDate:   d.ClaimDate,
		ClaimAmount: d.ClaimAmount,
		Status:      d.Status,
		Description: d.Description,
		PolicyID:    d.PolicyID,
	}
}

func (m *Mapper) ClaimToDto(e *entity.Claim) *dto.ClaimDto {
	return &dto.ClaimDto{
		ClaimID:     e.ID,
		ClaimNumber: e.ClaimNumber,
		ClaimDate:   e.ClaimDate,
		ClaimAmount: e.ClaimAmount,
		Status:      e.Status,
		Description: e.Description,
		PolicyID:    e.PolicyID,
	}
}

func (m *Mapper) ClaimDtos(es []entity.Claim) []dto.ClaimDto {
	out := make([]dto.ClaimDto, 0, len(es))
	for i := range es {
		out = append(out, *m.ClaimToDto(&es[i]))
	}
	return out
}

// MergeClaim overwrites every stored field, including the claim number, so
// an update addressed by the old number may rename the claim.
func (m *Mapper) MergeClaim(d *dto.ClaimDto, e *entity.Claim) {
	e.ClaimNumber = d.ClaimNumber
	e.ClaimDate = d.ClaimDate
	e.ClaimAmount = d.ClaimAmount
	e.Status = d.Status
	e.Description = d.Description
	e.PolicyID = d.PolicyID
}

func (m *Mapper) PaymentToEntity(d *dto.PaymentDto) *entity.Payment {
	return &entity.Payment{
		PaymentDate:   d.PaymentDate,
		AmountPaid:    d.AmountPaid,
		PaymentMode:   d.PaymentMode,
		TransactionID: d.TransactionID,
		PolicyID:      d.PolicyID,
	}
}

func (m *Mapper) PaymentToDto(e *entity.Payment) *dto.PaymentDto {
	return &dto.PaymentDto{
		PaymentID:     e.ID,
		PaymentDate:   e.PaymentDate,
		AmountPaid:    e.AmountPaid,
		PaymentMode:   e.PaymentMode,
		TransactionID: e.TransactionID,
		PolicyID:      e.PolicyID,
	}
}

func (m *Mapper) PaymentDtos(es []entity.Payment) []dto.PaymentDto {
	out := make([]dto.PaymentDto, 0, len(es))
	for i := range es {
		out = append(out, *m.PaymentToDto(&es[i]))
	}
	return out
}

func (m *Mapper) MergePayment(d *dto.PaymentDto, e *entity.Payment) {
	e.PaymentDate = d.PaymentDate
	e.AmountPaid = d.AmountPaid
	e.PaymentMode = d.PaymentMode
	e.TransactionID = d.TransactionID
	e.PolicyID = d.PolicyID
}
