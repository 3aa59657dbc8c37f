package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

// OrderController exposes orders over REST. Orders carry immutable snapshots,
// so there is no update endpoint.
type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func (oc *OrderController) List(c *gin.Context) {
	var orders []models.Order
	if err := scoped(oc.DB, c).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing orders: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (oc *OrderController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var order models.Order
	err := oc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (oc *OrderController) Create(c *gin.Context) {
	var input struct {
		DestinationSnapshot datatypes.JSON `json:"destination_snapshot" binding:"required"`
		VehicleSnapshot     datatypes.JSON `json:"vehicle_snapshot" binding:"required"`
		Data                datatypes.JSON `json:"data"`
		CommentForAccount   string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order input: " + err.Error()})
		return
	}

	order := models.Order{
		AccountID:           accountID(c),
		Status:              models.StatusActive,
		DestinationSnapshot: input.DestinationSnapshot,
		VehicleSnapshot:     input.VehicleSnapshot,
		Data:                input.Data,
		CommentForAccount:   input.CommentForAccount,
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": order})
}

func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	deleted, err := softDelete(oc.DB, c, &models.Order{}, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order: " + err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
