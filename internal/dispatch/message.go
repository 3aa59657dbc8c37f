package dispatch

import (
	"encoding/json"
	"fmt"

	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// ComputeRequest is the message handed to the external route-optimization
// engine. It carries the order's frozen snapshots so the solver never reads
// our database.
type ComputeRequest struct {
	MessageID           string          `json:"message_id"`
	ComputeID           uint            `json:"compute_id"`
	AccountID           uint            `json:"account_id"`
	OrderID             uint            `json:"order_id"`
	DestinationSnapshot json.RawMessage `json:"destination_snapshot"`
	VehicleSnapshot     json.RawMessage `json:"vehicle_snapshot"`
	Data                json.RawMessage `json:"data,omitempty"`
}

// Validate does minimal field checks so the solver never sees a dirty message.
func (m ComputeRequest) Validate() error {
	if m.MessageID == "" {
		return fmt.Errorf("message_id is required")
	}
	if m.ComputeID == 0 {
		return fmt.Errorf("compute_id is required")
	}
	if m.AccountID == 0 {
		return fmt.Errorf("account_id is required")
	}
	if m.OrderID == 0 {
		return fmt.Errorf("order_id is required")
	}
	if len(m.DestinationSnapshot) == 0 {
		return fmt.Errorf("destination_snapshot is required")
	}
	if len(m.VehicleSnapshot) == 0 {
		return fmt.Errorf("vehicle_snapshot is required")
	}
	return nil
}

// ResultRoute is one vehicle's path inside a ComputeResult.
type ResultRoute struct {
	VehicleID     uint         `json:"vehicle_id"`
	TotalDistance int          `json:"total_distance"`
	TotalTime     int          `json:"total_time"`
	TotalLoad     int          `json:"total_load"`
	Stops         []ResultStop `json:"stops"`
}

// ResultStop is one visit inside a ResultRoute.
type ResultStop struct {
	DestinationID uint `json:"destination_id"`
	Sequence      int  `json:"sequence"`
	ArrivalTime   int  `json:"arrival_time"`
	Demand        int  `json:"demand"`
}

// ComputeResult is what the solver publishes when a job finishes (or when it
// picks one up, status computing).
type ComputeResult struct {
	ComputeID  uint          `json:"compute_id"`
	Status     string        `json:"status"` // computing | completed | failed
	FailReason string        `json:"fail_reason,omitempty"`
	StartTime  *int64        `json:"start_time,omitempty"`
	EndTime    *int64        `json:"end_time,omitempty"`
	Routes     []ResultRoute `json:"routes,omitempty"`
}

func (m ComputeResult) Validate() error {
	if m.ComputeID == 0 {
		return fmt.Errorf("compute_id is required")
	}
	switch models.ComputeStatus(m.Status) {
	case models.ComputeComputing:
		if len(m.Routes) != 0 {
			return fmt.Errorf("computing result must not carry routes")
		}
	case models.ComputeCompleted:
	case models.ComputeFailed:
		if len(m.Routes) != 0 {
			return fmt.Errorf("failed result must not carry routes")
		}
	default:
		return fmt.Errorf("unknown result status %q", m.Status)
	}
	for i, r := range m.Routes {
		if r.VehicleID == 0 {
			return fmt.Errorf("route %d: vehicle_id is required", i)
		}
		for j, st := range r.Stops {
			if st.DestinationID == 0 {
				return fmt.Errorf("route %d stop %d: destination_id is required", i, j)
			}
		}
	}
	return nil
}

// StoreRoutes converts the solver shape into the store's write shape.
func (m ComputeResult) StoreRoutes() []store.RouteResult {
	out := make([]store.RouteResult, 0, len(m.Routes))
	for _, r := range m.Routes {
		route := store.RouteResult{
			VehicleID:     r.VehicleID,
			TotalDistance: r.TotalDistance,
			TotalTime:     r.TotalTime,
			TotalLoad:     r.TotalLoad,
		}
		for _, st := range r.Stops {
			route.Stops = append(route.Stops, store.StopResult{
				DestinationID: st.DestinationID,
				Sequence:      st.Sequence,
				ArrivalTime:   st.ArrivalTime,
				Demand:        st.Demand,
			})
		}
		out = append(out, route)
	}
	return out
}
