package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/apperr"
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/mapper"
	paymentpkg "github.com/keerthi6166/insurance-backend/payment"
)

// paymentService implements PaymentService.
type paymentService struct {
	repo     paymentpkg.PaymentRepository
	mapper   *mapper.Mapper
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPaymentService(repo paymentpkg.PaymentRepository, m *mapper.Mapper, v *validator.Validate, logger zerolog.Logger) paymentpkg.PaymentService {
	return &paymentService{
		repo:     repo,
		mapper:   m,
		validate: v,
		logger:   logger.With().Str("component", "payment-service").Logger(),
	}
}

// GetAllPayments returns every payment. An empty table is reported as a
// not-found fault, not an empty list.
func (s *paymentService) GetAllPayments(ctx context.Context) ([]dto.PaymentDto, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing payments failed")
		return nil, err
	}
	if len(payments) == 0 {
		s.logger.Warn().Msg("no payments found")
		return nil, apperr.NotFound(paymentpkg.NoPaymentsFound)
	}
	return s.mapper.PaymentDtos(payments), nil
}

func (s *paymentService) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*dto.PaymentDto, error) {
	p, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("transaction_id", transactionID).Msg("payment not found")
			return nil, apperr.NotFound(paymentpkg.PaymentNotFound)
		}
		return nil, err
	}
	return s.mapper.PaymentToDto(p), nil
}

func (s *paymentService) GetPaymentsByPolicyNumber(ctx context.Context, policyNumber string) ([]dto.PaymentDto, error) {
	payments, err := s.repo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		s.logger.Warn().Str("policy_number", policyNumber).Msg("no payments for policy")
		return nil, apperr.NotFound(paymentpkg.NoPaymentsFound)
	}
	return s.mapper.PaymentDtos(payments), nil
}

func (s *paymentService) AddNewPayment(ctx context.Context, d *dto.PaymentDto) (*dto.PaymentDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}

	exists, err := s.repo.TransactionIDExists(ctx, d.TransactionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(paymentpkg.PaymentAlreadyExist)
	}

	created, err := s.repo.Store(ctx, s.mapper.PaymentToEntity(d))
	if err != nil {
		s.logger.Error().Err(err).Str("transaction_id", d.TransactionID).Msg("storing payment failed")
		return nil, err
	}
	return s.mapper.PaymentToDto(created), nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, d *dto.PaymentDto) (*dto.PaymentDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByTransactionID(ctx, d.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("transaction_id", d.TransactionID).Msg("payment not found for update")
			return nil, apperr.NotFound(paymentpkg.PaymentNotFound)
		}
		return nil, err
	}

	s.mapper.MergePayment(d, existing)
	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("transaction_id", d.TransactionID).Msg("updating payment failed")
		return nil, err
	}
	return s.mapper.PaymentToDto(updated), nil
}

func (s *paymentService) DeletePayment(ctx context.Context, transactionID string) (bool, error) {
	existing, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("transaction_id", transactionID).Msg("payment not found for delete")
			return false, apperr.NotFound(paymentpkg.PaymentNotFound)
		}
		return false, err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("transaction_id", transactionID).Msg("deleting payment failed")
		return false, err
	}
	return true, nil
}
