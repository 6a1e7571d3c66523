package customer

import (
	"context"

	"github.com/keerthi6166/insurance-backend/entity"
)

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Save(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, c *entity.Customer) error
}
