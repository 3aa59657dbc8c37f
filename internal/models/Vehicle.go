package models

import (
	"gorm.io/datatypes"
)

// Vehicle is a dispatchable unit. VehicleType references a CustomVehicleType,
// DepotID an optional Destination the vehicle starts and ends at. Both may go
// stale after the referenced row is soft-deleted; readers resolve them to nil.
type Vehicle struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	Status    Status `gorm:"default:active" json:"status"`

	VehicleNumber     string         `json:"vehicle_number"`
	VehicleType       uint           `json:"vehicle_type"`
	DepotID           *uint          `json:"depot_id"`
	Data              datatypes.JSON `json:"data"`
	CommentForAccount string         `json:"comment_for_account"`
}
