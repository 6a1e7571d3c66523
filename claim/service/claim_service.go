package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/apperr"
	claimpkg "github.com/keerthi6166/insurance-backend/claim"
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/mapper"
)

// claimService implements ClaimService.
type claimService struct {
	repo     claimpkg.ClaimRepository
	mapper   *mapper.Mapper
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewClaimService(repo claimpkg.ClaimRepository, m *mapper.Mapper, v *validator.Validate, logger zerolog.Logger) claimpkg.ClaimService {
	return &claimService{
		repo:     repo,
		mapper:   m,
		validate: v,
		logger:   logger.With().Str("component", "claim-service").Logger(),
	}
}

// GetAllClaims returns every claim. An empty table is reported as a
// not-found fault, not an empty list.
func (s *claimService) GetAllClaims(ctx context.Context) ([]dto.ClaimDto, error) {
	claims, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing claims failed")
		return nil, err
	}
	if len(claims) == 0 {
		s.logger.Warn().Msg("no claims found")
		return nil, apperr.NotFound(claimpkg.NoClaimsFound)
	}
	return s.mapper.ClaimDtos(claims), nil
}

func (s *claimService) GetClaimByClaimNumber(ctx context.Context, claimNumber string) (*dto.ClaimDto, error) {
	c, err := s.repo.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("claim_number", claimNumber).Msg("claim not found")
			return nil, apperr.NotFound(claimpkg.ClaimNotFound)
		}
		return nil, err
	}
	return s.mapper.ClaimToDto(c), nil
}

func (s *claimService) GetClaimsByPolicyNumber(ctx context.Context, policyNumber string) ([]dto.ClaimDto, error) {
	claims, err := s.repo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		return nil, err
	}
	if len(claims) == 0 {
		s.logger.Warn().Str("policy_number", policyNumber).Msg("no claims for policy")
		return nil, apperr.NotFound(claimpkg.NoClaimsFound)
	}
	return s.mapper.ClaimDtos(claims), nil
}

func (s *claimService) AddNewClaim(ctx context.Context, d *dto.ClaimDto) (*dto.ClaimDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = claimpkg.DefaultStatus
	}

	exists, err := s.repo.ClaimNumberExists(ctx, d.ClaimNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(claimpkg.ClaimAlreadyExist)
	}

	created, err := s.repo.Store(ctx, s.mapper.ClaimToEntity(d))
	if err != nil {
		s.logger.Error().Err(err).Str("claim_number", d.ClaimNumber).Msg("storing claim failed")
		return nil, err
	}
	return s.mapper.ClaimToDto(created), nil
}

// UpdateClaim looks the claim up by the claimNumber argument, then replaces
// every stored field with the body, including the claim number itself.
func (s *claimService) UpdateClaim(ctx context.Context, claimNumber string, d *dto.ClaimDto) (*dto.ClaimDto, error) {
	if err := dto.Validate(s.validate, d); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = claimpkg.DefaultStatus
	}

	existing, err := s.repo.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("claim_number", claimNumber).Msg("claim not found for update")
			return nil, apperr.NotFound(claimpkg.ClaimNotFound)
		}
		return nil, err
	}

	s.mapper.MergeClaim(d, existing)
	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("claim_number", claimNumber).Msg("updating claim failed")
		return nil, err
	}
	return s.mapper.ClaimToDto(updated), nil
}

func (s *claimService) DeleteClaim(ctx context.Context, claimNumber string) (bool, error) {
	existing, err := s.repo.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("claim_number", claimNumber).Msg("claim not found for delete")
			return false, apperr.NotFound(claimpkg.ClaimNotFound)
		}
		return false, err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("claim_number", claimNumber).Msg("deleting claim failed")
		return false, err
	}
	return true, nil
}
