package policy

import (
	"context"

	"github.com/keerthi6166/insurance-backend/dto"
)

// DefaultStatus is applied when a policy is created without a status.
const DefaultStatus = "Active"

// PolicyService exposes policy business operations. All lookups use the
// policy number natural key.
type PolicyService interface {
	GetAllPolicies(ctx context.Context) ([]dto.PolicyDto, error)
	GetPolicyByPolicyNumber(ctx context.Context, policyNumber string) (*dto.PolicyDto, error)
	GetPoliciesByCustomerEmail(ctx context.Context, email string) ([]dto.PolicyDto, error)
	AddNewPolicy(ctx context.Context, d *dto.PolicyDto) (*dto.PolicyDto, error)
	// UpdatePolicy locates the row by the policy number inside the body; the
	// number is expected to remain unchanged.
	UpdatePolicy(ctx context.Context, d *dto.PolicyDto) (*dto.PolicyDto, error)
	DeletePolicy(ctx context.Context, policyNumber string) (bool, error)
}
