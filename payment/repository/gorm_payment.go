package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/entity"
	paymentpkg "github.com/keerthi6166/insurance-backend/payment"
)

// GormPaymentRepo implements payment.PaymentRepository using GORM.
type GormPaymentRepo struct {
	db *gorm.DB
}

func NewGormPaymentRepo(db *gorm.DB) paymentpkg.PaymentRepository {
	return &GormPaymentRepo{db: db}
}

func (r *GormPaymentRepo) GetAll(ctx context.Context) ([]entity.Payment, error) {
	var payments []entity.Payment
	if err := r.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.db.WithContext(ctx).First(&p, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepo) GetByPolicyNumber(ctx context.Context, policyNumber string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN policies ON policies.id = payments.policy_id").
		Where("policies.policy_number = ?", policyNumber).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormPaymentRepo) TransactionIDExists(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Payment{}).Where("transaction_id = ?", transactionID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPaymentRepo) Store(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPaymentRepo) Save(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPaymentRepo) Delete(ctx context.Context, p *entity.Payment) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
