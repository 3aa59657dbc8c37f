package models

import (
	"gorm.io/datatypes"
)

// Account is the tenant that owns every other entity. Its ID is the scoping
// key the rest of the schema filters on.
type Account struct {
	ID        uint   `gorm:"primaryKey" json:"account_id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
	Status    Status `gorm:"default:active" json:"status"`

	AccountName     string         `gorm:"column:account;unique;not null" json:"account"`
	Email           string         `gorm:"unique;not null" json:"email"`
	Password        string         `json:"-"` // bcrypt hash, never serialized
	PeopleName      string         `json:"people_name"`
	CompanyName     string         `json:"company_name"`
	CompanyIndustry string         `json:"company_industry"`
	Phone           string         `json:"phone"`
	Point           int            `json:"point"`
	AccountRole     AccountRole    `gorm:"default:normal" json:"account_role"`
	Data            datatypes.JSON `json:"data"`
}
