package repository

import (
	"context"

	"gorm.io/gorm"

	claimpkg "github.com/keerthi6166/insurance-backend/claim"
	"github.com/keerthi6166/insurance-backend/entity"
)

// GormClaimRepo implements claim.ClaimRepository using GORM.
type GormClaimRepo struct {
	db *gorm.DB
}

func NewGormClaimRepo(db *gorm.DB) claimpkg.ClaimRepository {
	return &GormClaimRepo{db: db}
}

func (r *GormClaimRepo) GetAll(ctx context.Context) ([]entity.Claim, error) {
	var claims []entity.Claim
	if err := r.db.WithContext(ctx).Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *GormClaimRepo) GetByClaimNumber(ctx context.Context, claimNumber string) (*entity.Claim, error) {
	var c entity.Claim
	if err := r.db.WithContext(ctx).First(&c, "claim_number = ?", claimNumber).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormClaimRepo) GetByPolicyNumber(ctx context.Context, policyNumber string) ([]entity.Claim, error) {
	var claims []entity.Claim
	err := r.db.WithContext(ctx).
		Joins("JOIN policies ON policies.id = claims.policy_id").
		Where("policies.policy_number = ?", policyNumber).
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *GormClaimRepo) ClaimNumberExists(ctx context.Context, claimNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Claim{}).Where("claim_number = ?", claimNumber).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormClaimRepo) Store(ctx context.Context, c *entity.Claim) (*entity.Claim, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormClaimRepo) Save(ctx context.Context, c *entity.Claim) (*entity.Claim, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormClaimRepo) Delete(ctx context.Context, c *entity.Claim) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
