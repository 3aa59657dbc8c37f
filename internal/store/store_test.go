package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"fleet_dispatch/internal/models"
)

// testDB opens a fresh in-memory sqlite database per test. The pool is pinned
// to one connection because every new sqlite :memory: connection is a new,
// empty database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Destination{},
		&models.CustomVehicleType{},
		&models.Vehicle{},
		&models.Order{},
		&models.Compute{},
		&models.Route{},
		&models.RouteStop{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, accountID uint) models.Order {
	t.Helper()
	order := models.Order{
		AccountID:           accountID,
		Status:              models.StatusActive,
		DestinationSnapshot: []byte(`[{"id":1}]`),
		VehicleSnapshot:     []byte(`[{"id":1}]`),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func seedCompute(t *testing.T, db *gorm.DB, accountID, orderID uint, status models.ComputeStatus) models.Compute {
	t.Helper()
	compute := models.Compute{
		AccountID:     accountID,
		OrderID:       orderID,
		Status:        models.StatusActive,
		ComputeStatus: status,
	}
	if err := db.Create(&compute).Error; err != nil {
		t.Fatalf("seed compute: %v", err)
	}
	return compute
}
