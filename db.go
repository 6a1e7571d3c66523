package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/entity"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDatabase(logger zerolog.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "insurance"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
	)

	// TranslateError lets the error translator recognize unique-constraint
	// violations that slip past the pre-insert checks.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	// Parents first so the cascade foreign keys can be created.
	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Policy{},
		&entity.Claim{},
		&entity.Payment{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	return db
}
