package payment

import (
	"context"

	"github.com/keerthi6166/insurance-backend/entity"
)

// PaymentRepository specifies payment related database operations.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]entity.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	// GetByPolicyNumber joins through the owning policy and returns every
	// payment whose policy has the given policy number.
	GetByPolicyNumber(ctx context.Context, policyNumber string) ([]entity.Payment, error)
	TransactionIDExists(ctx context.Context, transactionID string) (bool, error)
	Store(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
	Save(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
	Delete(ctx context.Context, p *entity.Payment) error
}
