package models

import (
	"gorm.io/datatypes"
)

// Compute is one route-computation job against an Order. AccountID duplicates
// the order's owner so every lifecycle query can scope on a single column.
// The external solver transitions ComputeStatus asynchronously; this service
// only creates jobs and marks them cancelled.
type Compute struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	Status    Status `gorm:"default:active" json:"status"`

	OrderID           uint           `gorm:"index;not null" json:"order_id"`
	ComputeStatus     ComputeStatus  `gorm:"default:initial" json:"compute_status"`
	StartTime         *int64         `json:"start_time"`
	EndTime           *int64         `json:"end_time"`
	FailReason        string         `json:"fail_reason"`
	Data              datatypes.JSON `json:"data"`
	CommentForAccount string         `json:"comment_for_account"`
}
