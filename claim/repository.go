package claim

import (
	"context"

	"github.com/keerthi6166/insurance-backend/entity"
)

// ClaimRepository specifies claim related database operations.
type ClaimRepository interface {
	GetAll(ctx context.Context) ([]entity.Claim, error)
	GetByClaimNumber(ctx context.Context, claimNumber string) (*entity.Claim, error)
	// GetByPolicyNumber joins through the owning policy and returns every
	// claim whose policy has the given policy number.
	GetByPolicyNumber(ctx context.Context, policyNumber string) ([]entity.Claim, error)
	ClaimNumberExists(ctx context.Context, claimNumber string) (bool, error)
	Store(ctx context.Context, c *entity.Claim) (*entity.Claim, error)
	Save(ctx context.Context, c *entity.Claim) (*entity.Claim, error)
	Delete(ctx context.Context, c *entity.Claim) error
}
