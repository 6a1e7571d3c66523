package claim

import (
	"context"

	"github.com/keerthi6166/insurance-backend/dto"
)

// DefaultStatus is applied when a claim is created without a status.
const DefaultStatus = "Pending"

// ClaimService exposes claim business operations. All lookups use the claim
// number natural key.
type ClaimService interface {
	GetAllClaims(ctx context.Context) ([]dto.ClaimDto, error)
	GetClaimByClaimNumber(ctx context.Context, claimNumber string) (*dto.ClaimDto, error)
	GetClaimsByPolicyNumber(ctx context.Context, policyNumber string) ([]dto.ClaimDto, error)
	AddNewClaim(ctx context.Context, d *dto.ClaimDto) (*dto.ClaimDto, error)
	// UpdateClaim locates the row by claimNumber, not by the number inside
	// the body, so an update may rename the claim.
	UpdateClaim(ctx context.Context, claimNumber string, d *dto.ClaimDto) (*dto.ClaimDto, error)
	DeleteClaim(ctx context.Context, claimNumber string) (bool, error)
}
