package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

// accountID reads the owner id the auth middleware stored in the gin context.
func accountID(c *gin.Context) uint {
	return c.MustGet("account_id").(uint)
}

// scoped builds the account-scoped base query, honoring an optional ?status=
// filter and hiding soft-deleted rows by default.
func scoped(db *gorm.DB, c *gin.Context) *gorm.DB {
	q := db.Where("account_id = ?", accountID(c))
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status <> ?", models.StatusDeleted)
	}
	return q.Order("id ASC")
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// softDelete flips status in one ownership-scoped UPDATE; false means the row
// is missing, foreign or already deleted.
func softDelete(db *gorm.DB, c *gin.Context, model interface{}, id uint) (bool, error) {
	res := db.Model(model).
		Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		Updates(map[string]interface{}{
			"status":     models.StatusDeleted,
			"updated_at": time.Now().Unix(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
