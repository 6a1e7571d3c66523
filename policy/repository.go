package policy

import (
	"context"

	"github.com/keerthi6166/insurance-backend/entity"
)

// PolicyRepository specifies policy related database operations.
type PolicyRepository interface {
	GetAll(ctx context.Context) ([]entity.Policy, error)
	GetByPolicyNumber(ctx context.Context, policyNumber string) (*entity.Policy, error)
	// GetByCustomerEmail joins through the owning customer and returns every
	// policy whose customer has the given email.
	GetByCustomerEmail(ctx context.Context, email string) ([]entity.Policy, error)
	PolicyNumberExists(ctx context.Context, policyNumber string) (bool, error)
	Store(ctx context.Context, p *entity.Policy) (*entity.Policy, error)
	Save(ctx context.Context, p *entity.Policy) (*entity.Policy, error)
	Delete(ctx context.Context, p *entity.Policy) error
}
