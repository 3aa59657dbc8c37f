package models

import (
	"gorm.io/datatypes"
)

// CustomVehicleType is an account-defined vehicle class with a cargo capacity.
type CustomVehicleType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	Status    Status `gorm:"default:active" json:"status"`

	Name              string         `json:"name"`
	Capacity          int            `json:"capacity"`
	Data              datatypes.JSON `json:"data"`
	CommentForAccount string         `json:"comment_for_account"`
}
