package models

import (
	"gorm.io/datatypes"
)

// Destination is a deliverable location. Lat/lng are kept as strings exactly
// as the API receives them; the solver parses coordinates on its side.
type Destination struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	AccountID uint   `gorm:"index;not null" json:"account_id"`
	Status    Status `gorm:"default:active" json:"status"`

	Name              string         `json:"name"`
	Address           string         `json:"address"`
	Lat               string         `json:"lat"`
	Lng               string         `json:"lng"`
	Data              datatypes.JSON `json:"data"`
	CommentForAccount string         `json:"comment_for_account"`
}
