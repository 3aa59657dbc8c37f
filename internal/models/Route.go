package models

// Route is one vehicle's planned path, produced by a completed Compute.
// VehicleID may reference a vehicle deleted after the job finished; readers
// resolve that to nil rather than an error.
type Route struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	Status    Status `gorm:"default:active" json:"status"`

	ComputeID     uint `gorm:"index;not null" json:"compute_id"`
	VehicleID     uint `gorm:"not null" json:"vehicle_id"`
	TotalDistance int  `json:"total_distance"`
	TotalTime     int  `json:"total_time"`
	TotalLoad     int  `json:"total_load"`
}

// RouteStop is one ordered visit within a Route. Sequence defines a strict
// total order; values need not be contiguous.
type RouteStop struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`

	RouteID       uint `gorm:"index;not null" json:"route_id"`
	DestinationID uint `gorm:"not null" json:"destination_id"`
	Sequence      int  `json:"sequence"`
	ArrivalTime   int  `json:"arrival_time"`
	Demand        int  `json:"demand"`
}
