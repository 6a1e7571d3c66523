package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/entity"
	policypkg "github.com/keerthi6166/insurance-backend/policy"
)

// GormPolicyRepo implements policy.PolicyRepository using GORM.
type GormPolicyRepo struct {
	db *gorm.DB
}

func NewGormPolicyRepo(db *gorm.DB) policypkg.PolicyRepository {
	return &GormPolicyRepo{db: db}
}

func (r *GormPolicyRepo) GetAll(ctx context.Context) ([]entity.Policy, error) {
	var policies []entity.Policy
	if err := r.db.WithContext(ctx).Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *GormPolicyRepo) GetByPolicyNumber(ctx context.Context, policyNumber string) (*entity.Policy, error) {
	var p entity.Policy
	if err := r.db.WithContext(ctx).First(&p, "policy_number = ?", policyNumber).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPolicyRepo) GetByCustomerEmail(ctx context.Context, email string) ([]entity.Policy, error) {
	var policies []entity.Policy
	err := r.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = policies.customer_id").
		Where("customers.email = ?", email).
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *GormPolicyRepo) PolicyNumberExists(ctx context.Context, policyNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Policy{}).Where("policy_number = ?", policyNumber).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPolicyRepo) Store(ctx context.Context, p *entity.Policy) (*entity.Policy, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPolicyRepo) Save(ctx context.Context, p *entity.Policy) (*entity.Policy, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPolicyRepo) Delete(ctx context.Context, p *entity.Policy) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
