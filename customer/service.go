package customer

import (
	"context"

	"github.com/keerthi6166/insurance-backend/dto"
)

// CustomerService exposes customer business operations. All lookups use the
// email natural key.
type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]dto.CustomerDto, error)
	GetCustomerByEmail(ctx context.Context, email string) (*dto.CustomerDto, error)
	AddNewCustomer(ctx context.Context, d *dto.CustomerDto) (*dto.CustomerDto, error)
	// UpdateCustomer locates the row by the email inside the body; the email
	// is expected to remain unchanged.
	UpdateCustomer(ctx context.Context, d *dto.CustomerDto) (*dto.CustomerDto, error)
	DeleteCustomer(ctx context.Context, email string) (bool, error)
}
