package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := scoped(vc.DB, c).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (vc *VehicleController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var vehicle models.Vehicle
	err := vc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&vehicle).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicle})
}

func (vc *VehicleController) Create(c *gin.Context) {
	var input struct {
		VehicleNumber     string         `json:"vehicle_number" binding:"required"`
		VehicleType       uint           `json:"vehicle_type" binding:"required"`
		DepotID           *uint          `json:"depot_id"`
		Data              datatypes.JSON `json:"data"`
		CommentForAccount string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	vehicle := models.Vehicle{
		AccountID:         accountID(c),
		Status:            models.StatusActive,
		VehicleNumber:     input.VehicleNumber,
		VehicleType:       input.VehicleType,
		DepotID:           input.DepotID,
		Data:              input.Data,
		CommentForAccount: input.CommentForAccount,
	}
	if err := vc.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": vehicle})
}

func (vc *VehicleController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var vehicle models.Vehicle
	err := vc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&vehicle).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var input struct {
		VehicleNumber     *string         `json:"vehicle_number"`
		VehicleType       *uint           `json:"vehicle_type"`
		DepotID           *uint           `json:"depot_id"`
		Data              *datatypes.JSON `json:"data"`
		CommentForAccount *string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	if input.VehicleNumber != nil {
		vehicle.VehicleNumber = *input.VehicleNumber
	}
	if input.VehicleType != nil {
		vehicle.VehicleType = *input.VehicleType
	}
	if input.DepotID != nil {
		vehicle.DepotID = input.DepotID
	}
	if input.Data != nil {
		vehicle.Data = *input.Data
	}
	if input.CommentForAccount != nil {
		vehicle.CommentForAccount = *input.CommentForAccount
	}

	if err := vc.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicle})
}

func (vc *VehicleController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	deleted, err := softDelete(vc.DB, c, &models.Vehicle{}, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle: " + err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
