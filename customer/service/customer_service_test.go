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
	customerpkg "github.com/keerthi6166/insurance-backend/customer"
	customerrepo "github.com/keerthi6166/insurance-backend/customer/repository"
	"github.com/keerthi6166/insurance-backend/dto"
	"github.com/keerthi6166/insurance-backend/entity"
	"github.com/keerthi6166/insurance-backend/mapper"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test.
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

func setupService(t *testing.T) (customerpkg.CustomerService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCustomerService(customerrepo.NewGormCustomerRepo(db), mapper.New(), validator.New(), zerolog.Nop())
	return svc, db
}

func validCustomer(email string) *dto.CustomerDto {
	phone := "555-0100"
	addr := "1 Main St"
	return &dto.CustomerDto{
		FullName:    "Jane Doe",
		Email:       email,
		PhoneNumber: &phone,
		Address:     &addr,
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddNewCustomerRoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	in := validCustomer("jane@example.com")
	created, err := svc.AddNewCustomer(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.CustomerID)

	got, err := svc.GetCustomerByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.CustomerID, got.CustomerID)
	assert.Equal(t, in.FullName, got.FullName)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, *in.PhoneNumber, *got.PhoneNumber)
	assert.Equal(t, *in.Address, *got.Address)
	assert.True(t, in.DateOfBirth.Equal(got.DateOfBirth))
}

func TestAddNewCustomerDuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AddNewCustomer(ctx, validCustomer("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.AddNewCustomer(ctx, validCustomer("jane@example.com"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.Equal(t, customerpkg.CustomerAlreadyExist, err.Error())
}

func TestAddNewCustomerValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("missing email", func(t *testing.T) {
		in := validCustomer("")
		_, err := svc.AddNewCustomer(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Email is required")
	})

	t.Run("bad email format", func(t *testing.T) {
		in := validCustomer("not-an-email")
		_, err := svc.AddNewCustomer(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		in := &dto.CustomerDto{}
		_, err := svc.AddNewCustomer(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Full name is required")
		assert.Contains(t, err.Error(), "Email is required")
		assert.Contains(t, err.Error(), "Date of Birth is required")
	})
}

func TestGetAllCustomersEmptyTable(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetAllCustomers(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, customerpkg.CustomerNotFound, err.Error())
}

func TestGetCustomerByEmailMissing(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetCustomerByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.UpdateCustomer(ctx, validCustomer("nobody@example.com"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("overwrites every field", func(t *testing.T) {
		svc, _ := setupService(t)
		created, err := svc.AddNewCustomer(ctx, validCustomer("jane@example.com"))
		require.NoError(t, err)

		phone := "555-0199"
		addr := "9 Elm St"
		upd := &dto.CustomerDto{
			FullName:    "Jane A. Doe",
			Email:       "jane@example.com",
			PhoneNumber: &phone,
			Address:     &addr,
			DateOfBirth: time.Date(1991, 7, 2, 0, 0, 0, 0, time.UTC),
		}
		updated, err := svc.UpdateCustomer(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, created.CustomerID, updated.CustomerID)

		got, err := svc.GetCustomerByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Jane A. Doe", got.FullName)
		assert.Equal(t, "555-0199", *got.PhoneNumber)
		assert.Equal(t, "9 Elm St", *got.Address)
		assert.True(t, upd.DateOfBirth.Equal(got.DateOfBirth))
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.DeleteCustomer(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("cascades to policies, claims and payments", func(t *testing.T) {
		svc, db := setupService(t)
		created, err := svc.AddNewCustomer(ctx, validCustomer("jane@example.com"))
		require.NoError(t, err)

		p := entity.Policy{
			PolicyNumber:  "POL1",
			PolicyType:    "Health",
			PremiumAmount: 250,
			StartDate:     time.Now(),
			EndDate:       time.Now().AddDate(1, 0, 0),
			Status:        "Active",
			CustomerID:    created.CustomerID,
		}
		require.NoError(t, db.Create(&p).Error)
		require.NoError(t, db.Create(&entity.Claim{
			ClaimNumber: "CLM1", ClaimDate: time.Now(), ClaimAmount: 100, Status: "Pending", PolicyID: p.ID,
		}).Error)
		require.NoError(t, db.Create(&entity.Payment{
			PaymentDate: time.Now(), AmountPaid: 250, PaymentMode: "Card", TransactionID: "TXN1", PolicyID: p.ID,
		}).Error)

		ok, err := svc.DeleteCustomer(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, ok)

		for _, model := range []any{&entity.Customer{}, &entity.Policy{}, &entity.Claim{}, &entity.Payment{}} {
			var count int64
			require.NoError(t, db.Model(model).Count(&count).Error)
			assert.Zero(t, count)
		}
	})
}
