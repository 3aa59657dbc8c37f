package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

// OpenDatabase connects to postgres and migrates the schema. The handle is
// returned to the caller and threaded into every store and handler explicitly;
// there is no package-level database state.
func OpenDatabase(cfg AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}

// Migrate applies the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Destination{},
		&models.CustomVehicleType{},
		&models.Vehicle{},
		&models.Order{},
		&models.Compute{},
		&models.Route{},
		&models.RouteStop{},
	)
}
