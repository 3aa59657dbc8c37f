package models

import (
	"gorm.io/datatypes"
)

// Order is a dispatch request. The destination and vehicle snapshots are
// frozen copies of the inventory at creation time so later edits or deletes
// cannot change what a compute job was asked to solve.
type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	Status    Status `gorm:"default:active" json:"status"`

	DestinationSnapshot datatypes.JSON `gorm:"not null" json:"destination_snapshot"`
	VehicleSnapshot     datatypes.JSON `gorm:"not null" json:"vehicle_snapshot"`
	Data                datatypes.JSON `json:"data"`
	CommentForAccount   string         `json:"comment_for_account"`
}
