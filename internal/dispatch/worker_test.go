package dispatch

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// Apply never touches redis, so the worker can run against a nil client here.
func testWorker(t *testing.T) (*Worker, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Compute{}, &models.Route{}, &models.RouteStop{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewWorker(nil, store.NewRouteStore(db), "results", "dispatchers", "test"), db
}

func seedCompute(t *testing.T, db *gorm.DB, status models.ComputeStatus) models.Compute {
	t.Helper()
	compute := models.Compute{AccountID: 1, OrderID: 1, ComputeStatus: status, Status: models.StatusActive}
	if err := db.Create(&compute).Error; err != nil {
		t.Fatalf("seed compute: %v", err)
	}
	return compute
}

func TestApplyComputing(t *testing.T) {
	w, db := testWorker(t)
	compute := seedCompute(t, db, models.ComputePending)

	start := int64(1700000000)
	applied, err := w.Apply(context.Background(), ComputeResult{
		ComputeID: compute.ID,
		Status:    "computing",
		StartTime: &start,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !applied {
		t.Fatal("Apply reported not applied")
	}

	var got models.Compute
	if err := db.First(&got, compute.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ComputeStatus != models.ComputeComputing {
		t.Errorf("status = %q, want computing", got.ComputeStatus)
	}
	if got.StartTime == nil || *got.StartTime != start {
		t.Errorf("start_time = %v, want %d", got.StartTime, start)
	}
}

func TestApplyCompletedWritesRoutes(t *testing.T) {
	w, db := testWorker(t)
	compute := seedCompute(t, db, models.ComputeComputing)

	end := int64(1700000500)
	applied, err := w.Apply(context.Background(), ComputeResult{
		ComputeID: compute.ID,
		Status:    "completed",
		EndTime:   &end,
		Routes: []ResultRoute{
			{VehicleID: 2, TotalDistance: 800, Stops: []ResultStop{
				{DestinationID: 5, Sequence: 1, ArrivalTime: 60, Demand: 4},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !applied {
		t.Fatal("Apply reported not applied")
	}

	var got models.Compute
	if err := db.First(&got, compute.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ComputeStatus != models.ComputeCompleted {
		t.Errorf("status = %q, want completed", got.ComputeStatus)
	}
	var routeCount, stopCount int64
	db.Model(&models.Route{}).Where("compute_id = ?", compute.ID).Count(&routeCount)
	db.Model(&models.RouteStop{}).Count(&stopCount)
	if routeCount != 1 || stopCount != 1 {
		t.Errorf("routes = %d, stops = %d, want 1 and 1", routeCount, stopCount)
	}
}

func TestApplyFailedRecordsReason(t *testing.T) {
	w, db := testWorker(t)
	compute := seedCompute(t, db, models.ComputeComputing)

	applied, err := w.Apply(context.Background(), ComputeResult{
		ComputeID:  compute.ID,
		Status:     "failed",
		FailReason: "no feasible route",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !applied {
		t.Fatal("Apply reported not applied")
	}

	var got models.Compute
	if err := db.First(&got, compute.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ComputeStatus != models.ComputeFailed {
		t.Errorf("status = %q, want failed", got.ComputeStatus)
	}
	if got.FailReason != "no feasible route" {
		t.Errorf("fail_reason = %q", got.FailReason)
	}
}

func TestApplyDroppedOnCancelledCompute(t *testing.T) {
	w, db := testWorker(t)
	compute := seedCompute(t, db, models.ComputeCancelled)

	applied, err := w.Apply(context.Background(), ComputeResult{
		ComputeID: compute.ID,
		Status:    "completed",
		Routes: []ResultRoute{
			{VehicleID: 2, Stops: []ResultStop{{DestinationID: 5, Sequence: 1}}},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if applied {
		t.Error("late result applied over cancelled compute")
	}

	var routeCount int64
	db.Model(&models.Route{}).Where("compute_id = ?", compute.ID).Count(&routeCount)
	if routeCount != 0 {
		t.Errorf("routes = %d, want 0", routeCount)
	}
}
