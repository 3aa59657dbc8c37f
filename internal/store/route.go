package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

// RouteResult is one vehicle's path as reported by the solver.
type RouteResult struct {
	VehicleID     uint
	TotalDistance int
	TotalTime     int
	TotalLoad     int
	Stops         []StopResult
}

// StopResult is one visit within a RouteResult.
type StopResult struct {
	DestinationID uint
	Sequence      int
	ArrivalTime   int
	Demand        int
}

// RouteStore composes a compute's result graph one relation hop at a time.
// Each hop is a single query keyed by the parent id; authorization happened
// when the parent compute was resolved.
type RouteStore struct {
	db *gorm.DB
}

func NewRouteStore(db *gorm.DB) *RouteStore {
	return &RouteStore{db: db}
}

// ByCompute returns the routes of one compute, unordered.
func (s *RouteStore) ByCompute(ctx context.Context, computeID uint) ([]models.Route, error) {
	var routes []models.Route
	if err := s.db.WithContext(ctx).
		Where("compute_id = ?", computeID).
		Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// Stops returns a route's stops strictly ascending by sequence. Gaps in the
// sequence values are tolerated; no renumbering happens anywhere.
func (s *RouteStore) Stops(ctx context.Context, routeID uint) ([]models.RouteStop, error) {
	var stops []models.RouteStop
	if err := s.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("sequence ASC").
		Find(&stops).Error; err != nil {
		return nil, err
	}
	return stops, nil
}

// Vehicle resolves a route's vehicle reference. A vehicle deleted after the
// route was computed resolves to nil, never an error.
func (s *RouteStore) Vehicle(ctx context.Context, vehicleID uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).
		Where("id = ? AND status <> ?", vehicleID, models.StatusDeleted).
		First(&vehicle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// Destination resolves a stop's destination reference, nil-tolerant like
// Vehicle.
func (s *RouteStore) Destination(ctx context.Context, destinationID uint) (*models.Destination, error) {
	var destination models.Destination
	err := s.db.WithContext(ctx).
		Where("id = ? AND status <> ?", destinationID, models.StatusDeleted).
		First(&destination).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

// ApplyResult persists one solver outcome in a single transaction: the
// compute's terminal status plus all routes and their stops. The conditional
// UPDATE skips computes already in a terminal state, so a result arriving
// after a cancel is dropped whole; the returned bool reports whether anything
// was applied. Cancellation is advisory: the solver may well finish a
// cancelled job, and this is where that late output dies.
func (s *RouteStore) ApplyResult(ctx context.Context, computeID uint, status models.ComputeStatus, failReason string, startTime, endTime *int64, routes []RouteResult) (bool, error) {
	applied := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"compute_status": status,
			"updated_at":     time.Now().Unix(),
		}
		if failReason != "" {
			updates["fail_reason"] = failReason
		}
		if startTime != nil {
			updates["start_time"] = *startTime
		}
		if endTime != nil {
			updates["end_time"] = *endTime
		}
		res := tx.Model(&models.Compute{}).
			Where("id = ? AND compute_status NOT IN ?", computeID, models.TerminalComputeStatuses).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already terminal, drop the result
		}

		for _, r := range routes {
			route := models.Route{
				ComputeID:     computeID,
				VehicleID:     r.VehicleID,
				TotalDistance: r.TotalDistance,
				TotalTime:     r.TotalTime,
				TotalLoad:     r.TotalLoad,
			}
			if err := tx.Create(&route).Error; err != nil {
				return err
			}
			for _, st := range r.Stops {
				stop := models.RouteStop{
					RouteID:       route.ID,
					DestinationID: st.DestinationID,
					Sequence:      st.Sequence,
					ArrivalTime:   st.ArrivalTime,
					Demand:        st.Demand,
				}
				if err := tx.Create(&stop).Error; err != nil {
					return err
				}
			}
		}
		applied = true
		return nil
	})
	return applied, err
}

// MarkComputing records that the solver picked the job up. Terminal jobs are
// left alone for the same reason as in ApplyResult.
func (s *RouteStore) MarkComputing(ctx context.Context, computeID uint, startTime int64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Compute{}).
		Where("id = ? AND compute_status NOT IN ?", computeID, models.TerminalComputeStatuses).
		Updates(map[string]interface{}{
			"compute_status": models.ComputeComputing,
			"start_time":     startTime,
			"updated_at":     time.Now().Unix(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
