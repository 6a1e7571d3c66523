package payment

import (
	"context"

	"github.com/keerthi6166/insurance-backend/dto"
)

// PaymentService exposes payment business operations. All lookups use the
// transaction id natural key.
type PaymentService interface {
	GetAllPayments(ctx context.Context) ([]dto.PaymentDto, error)
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*dto.PaymentDto, error)
	GetPaymentsByPolicyNumber(ctx context.Context, policyNumber string) ([]dto.PaymentDto, error)
	AddNewPayment(ctx context.Context, d *dto.PaymentDto) (*dto.PaymentDto, error)
	// UpdatePayment locates the row by the transaction id inside the body;
	// the id is expected to remain unchanged.
	UpdatePayment(ctx context.Context, d *dto.PaymentDto) (*dto.PaymentDto, error)
	DeletePayment(ctx context.Context, transactionID string) (bool, error)
}
