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
	policypkg "github.com/keerthi6166/insurance-backend/policy"
)

// policyService implements PolicyService.
type policyService struct {
	repo     policypkg.PolicyRepository
	mapper   *mapper.Mapper
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPolicyService(repo policypkg.PolicyRepository, m *mapper.Mapper, v *validator.Validate, logger zerolog.Logger) policypkg.PolicyService {
	return &policyService{
		repo:     repo,
		mapper:   m,
		validate: v,
		logger:   logger.With().Str("component", "policy-service").Logger(),
	}
}

// GetAllPolicies returns every policy. An empty table is reported as a
// not-found fault, not an empty list.
func (s *policyService) GetAllPolicies(ctx context.Context) ([]dto.PolicyDto, error) {
	policies, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing policies failed")
		return nil, err
	}
	if len(policies) == 0 {
		s.logger.Warn().Msg("no policies found")
		return nil, apperr.NotFound(policypkg.NoPoliciesFound)
	}
	return s.mapper.PolicyDtos(policies), nil
}

func (s *policyService) GetPolicyByPolicyNumber(ctx context.Context, policyNumber string) (*dto.PolicyDto, error) {
	p, err := s.repo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("policy_number", policyNumber).Msg("policy not found")
			return nil, apperr.NotFound(policypkg.PolicyNotFound)
		}
		return nil, err
	}
	return s.mapper.PolicyToDto(p), nil
}

func (s *policyService) GetPoliciesByCustomerEmail(ctx context.Context, email string) ([]dto.PolicyDto, error) {
	policies, err := s.repo.GetByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		s.logger.Warn().Str("email", email).Msg("no policies for customer")
		return nil, apperr.NotFound(policypkg.NoPoliciesFound)
	}
	return s.mapper.PolicyDtos(policies), nil
}

func (s *policyService) AddNewPolicy(ctx context.Context, d *dto.PolicyDto) (*dto.PolicyDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = policypkg.DefaultStatus
	}

	exists, err := s.repo.PolicyNumberExists(ctx, d.PolicyNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(policypkg.PolicyAlreadyExist)
	}

	created, err := s.repo.Store(ctx, s.mapper.PolicyToEntity(d))
	if err != nil {
		s.logger.Error().Err(err).Str("policy_number", d.PolicyNumber).Msg("storing policy failed")
		return nil, err
	}
	return s.mapper.PolicyToDto(created), nil
}

func (s *policyService) UpdatePolicy(ctx context.Context, d *dto.PolicyDto) (*dto.PolicyDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = policypkg.DefaultStatus
	}

	existing, err := s.repo.GetByPolicyNumber(ctx, d.PolicyNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("policy_number", d.PolicyNumber).Msg("policy not found for update")
			return nil, apperr.NotFound(policypkg.PolicyNotFound)
		}
		return nil, err
	}

	s.mapper.MergePolicy(d, existing)
	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("policy_number", d.PolicyNumber).Msg("updating policy failed")
		return nil, err
	}
	return s.mapper.PolicyToDto(updated), nil
}

// DeletePolicy removes the policy; the schema cascades the delete to the
// policy's claims and payments.
func (s *policyService) DeletePolicy(ctx context.Context, policyNumber string) (bool, error) {
	existing, err := s.repo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("policy_number", policyNumber).Msg("policy not found for delete")
			return false, apperr.NotFound(policypkg.PolicyNotFound)
		}
		return false, err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("policy_number", policyNumber).Msg("deleting policy failed")
		return false, err
	}
	return true, nil
}
