package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/apperr"
	customerpkg "github.com/keerthi6166/insurance-backend/customer"
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/mapper"
)

// customerService implements CustomerService.
type customerService struct {
	repo     customerpkg.CustomerRepository
	mapper   *mapper.Mapper
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCustomerService constructs a CustomerService backed by the provided
// repository. Mapper, validator and logger are passed in explicitly; the
// service holds no ambient state.
func NewCustomerService(repo customerpkg.CustomerRepository, m *mapper.Mapper, v *validator.Validate, logger zerolog.Logger) customerpkg.CustomerService {
	return &customerService{
		repo:     repo,
		mapper:   m,
		validate: v,
		logger:   logger.With().Str("component", "customer-service").Logger(),
	}
}

// GetAllCustomers returns every customer. An empty table is reported as a
// not-found fault, not an empty list.
func (s *customerService) GetAllCustomers(ctx context.Context) ([]dto.CustomerDto, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing customers failed")
		return nil, err
	}
	if len(customers) == 0 {
		s.logger.Warn().Msg("no customers found")
		return nil, apperr.NotFound(customerpkg.CustomerNotFound)
	}
	return s.mapper.CustomerDtos(customers), nil
}

func (s *customerService) GetCustomerByEmail(ctx context.Context, email string) (*dto.CustomerDto, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("email", email).Msg("customer not found")
			return nil, apperr.NotFound(customerpkg.CustomerNotFound)
		}
		return nil, err
	}
	return s.mapper.CustomerToDto(c), nil
}

func (s *customerService) AddNewCustomer(ctx context.Context, d *dto.CustomerDto) (*dto.CustomerDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}

	// Pre-check on the natural key; the unique index stays the final
	// arbiter under concurrent inserts.
	exists, err := s.repo.EmailExists(ctx, d.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(customerpkg.CustomerAlreadyExist)
	}

	created, err := s.repo.Store(ctx, s.mapper.CustomerToEntity(d))
	if err != nil {
		s.logger.Error().Err(err).Str("email", d.Email).Msg("storing customer failed")
		return nil, err
	}
	return s.mapper.CustomerToDto(created), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, d *dto.CustomerDto) (*dto.CustomerDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, d.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("email", d.Email).Msg("customer not found for update")
			return nil, apperr.NotFound(customerpkg.CustomerNotFound)
		}
		return nil, err
	}

	s.mapper.MergeCustomer(d, existing)
	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("email", d.Email).Msg("updating customer failed")
		return nil, err
	}
	return s.mapper.CustomerToDto(updated), nil
}

// DeleteCustomer removes the customer; the schema cascades the delete to the
// customer's policies and their claims and payments.
func (s *customerService) DeleteCustomer(ctx context.Context, email string) (bool, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("email", email).Msg("customer not found for delete")
			return false, apperr.NotFound(customerpkg.CustomerNotFound)
		}
		return false, err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("deleting customer failed")
		return false, err
	}
	return true, nil
}
