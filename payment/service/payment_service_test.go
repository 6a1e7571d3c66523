package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/keerthi6166/insurance-backend/apperr"
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/entity"
	"github.com/keerthi6166/insurance-backend/mapper"
	paymentpkg "github.com/keerthi6166/insurance-backend/payment"
	paymentrepo "github.com/keerthi6166/insurance-backend/payment/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.Policy{},
		&entity.Claim{},
		&entity.Payment{},
	))
	return db
}

func setupService(t *testing.T) (paymentpkg.PaymentService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewPaymentService(paymentrepo.NewGormPaymentRepo(db), mapper.New(), validator.New(), zerolog.Nop())
	return svc, db
}

func seedPolicy(t *testing.T, db *gorm.DB, number string) entity.Policy {
	t.Helper()
	c := entity.Customer{
		FullName:    "Jane Doe",
		Email:       number + "@example.com",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&c).Error)
	p := entity.Policy{
		PolicyNumber:  number,
		PolicyType:    "Health",
		PremiumAmount: 250,
		StartDate:     time.Now(),
		EndDate:       time.Now().AddDate(1, 0, 0),
		Status:        "Active",
		CustomerID:    c.ID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func validPayment(txn string, policyID uint) *dto.PaymentDto {
	return &dto.PaymentDto{
		PaymentDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		AmountPaid:    250,
		PaymentMode:   "Card",
		TransactionID: txn,
		PolicyID:      policyID,
	}
}

func TestAddNewPaymentRoundTrip(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	p := seedPolicy(t, db, "POL1")

	in := validPayment("TXN1", p.ID)
	created, err := svc.AddNewPayment(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.PaymentID)

	got, err := svc.GetPaymentByTransactionID(ctx, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, created.PaymentID, got.PaymentID)
	assert.Equal(t, 250.0, got.AmountPaid)
	assert.Equal(t, "Card", got.PaymentMode)
	assert.Equal(t, p.ID, got.PolicyID)
}

func TestAddNewPaymentDuplicateTransaction(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	p := seedPolicy(t, db, "POL1")

	_, err := svc.AddNewPayment(ctx, validPayment("TXN1", p.ID))
	require.NoError(t, err)

	_, err = svc.AddNewPayment(ctx, validPayment("TXN1", p.ID))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.Equal(t, paymentpkg.PaymentAlreadyExist, err.Error())
}

func TestAddNewPaymentValidation(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	p := seedPolicy(t, db, "POL1")

	t.Run("zero amount hits the range rule", func(t *testing.T) {
		in := validPayment("TXN1", p.ID)
		in.AmountPaid = 0
		_, err := svc.AddNewPayment(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Amount paid must be greater than zero")
	})

	t.Run("missing payment mode", func(t *testing.T) {
		in := validPayment("TXN1", p.ID)
		in.PaymentMode = ""
		_, err := svc.AddNewPayment(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Payment mode is required")
	})
}

func TestGetAllPaymentsEmptyTable(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetAllPayments(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, paymentpkg.NoPaymentsFound, err.Error())
}

func TestGetPaymentsByPolicyNumber(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	t.Run("no matches is not found", func(t *testing.T) {
		_, err := svc.GetPaymentsByPolicyNumber(ctx, "POL404")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("returns the policy's payments only", func(t *testing.T) {
		p1 := seedPolicy(t, db, "POL1")
		p2 := seedPolicy(t, db, "POL2")

		_, err := svc.AddNewPayment(ctx, validPayment("TXN1", p1.ID))
		require.NoError(t, err)
		_, err = svc.AddNewPayment(ctx, validPayment("TXN2", p2.ID))
		require.NoError(t, err)

		got, err := svc.GetPaymentsByPolicyNumber(ctx, "POL1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "TXN1", got[0].TransactionID)
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		svc, db := setupService(t)
		p := seedPolicy(t, db, "POL1")
		_, err := svc.UpdatePayment(ctx, validPayment("TXN404", p.ID))
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("overwrites every field", func(t *testing.T) {
		svc, db := setupService(t)
		p := seedPolicy(t, db, "POL1")
		created, err := svc.AddNewPayment(ctx, validPayment("TXN1", p.ID))
		require.NoError(t, err)

		upd := validPayment("TXN1", p.ID)
		upd.AmountPaid = 300
		upd.PaymentMode = "UPI"
		updated, err := svc.UpdatePayment(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, created.PaymentID, updated.PaymentID)

		got, err := svc.GetPaymentByTransactionID(ctx, "TXN1")
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.AmountPaid)
		assert.Equal(t, "UPI", got.PaymentMode)
	})
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.DeletePayment(ctx, "TXN404")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("removes the row", func(t *testing.T) {
		svc, db := setupService(t)
		p := seedPolicy(t, db, "POL1")
		_, err := svc.AddNewPayment(ctx, validPayment("TXN1", p.ID))
		require.NoError(t, err)

		ok, err := svc.DeletePayment(ctx, "TXN1")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = svc.GetPaymentByTransactionID(ctx, "TXN1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}
