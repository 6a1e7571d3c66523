package repository

import (
	"context"

	"gorm.io/gorm"

	customerpkg "github.com/keerthi6166/insurance-backend/customer"
	"github.com/keerthi6166/insurance-backend/entity"
)

// GormCustomerRepo implements customer.CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) GetAll(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) Save(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) Delete(ctx context.Context, c *entity.Customer) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
