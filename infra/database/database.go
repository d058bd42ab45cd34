package database

import (
	"errors"
	"time"

	countrymodel "github.com/amirasaad/countrypulse/infra/repository/country"
	"github.com/amirasaad/countrypulse/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the shared connection pool. The handle is created once at startup
// and passed to every component; nothing holds it as ambient global state.
func New(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates the countries table and its case-insensitive natural-key
// index. LOWER(name) uniqueness backs the reconciliation contract: at most
// one row per country name ignoring case.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&countrymodel.Country{}); err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_countries_name_lower ON countries (LOWER(name))",
	).Error
}
