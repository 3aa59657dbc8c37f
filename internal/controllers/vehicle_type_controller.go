package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

type VehicleTypeController struct {
	DB *gorm.DB
}

func NewVehicleTypeController(db *gorm.DB) *VehicleTypeController {
	return &VehicleTypeController{DB: db}
}

func (vc *VehicleTypeController) List(c *gin.Context) {
	var vehicleTypes []models.CustomVehicleType
	if err := scoped(vc.DB, c).Find(&vehicleTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicle types: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicleTypes})
}

func (vc *VehicleTypeController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var vehicleType models.CustomVehicleType
	err := vc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&vehicleType).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicleType})
}

func (vc *VehicleTypeController) Create(c *gin.Context) {
	var input struct {
		Name              string         `json:"name" binding:"required"`
		Capacity          int            `json:"capacity" binding:"required"`
		Data              datatypes.JSON `json:"data"`
		CommentForAccount string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	vehicleType := models.CustomVehicleType{
		AccountID:         accountID(c),
		Status:            models.StatusActive,
		Name:              input.Name,
		Capacity:          input.Capacity,
		Data:              input.Data,
		CommentForAccount: input.CommentForAccount,
	}
	if err := vc.DB.Create(&vehicleType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle type: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": vehicleType})
}

func (vc *VehicleTypeController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var vehicleType models.CustomVehicleType
	err := vc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&vehicleType).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle type not found"})
		return
	}

	var input struct {
		Name              *string         `json:"name"`
		Capacity          *int            `json:"capacity"`
		Data              *datatypes.JSON `json:"data"`
		CommentForAccount *string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	if input.Name != nil {
		vehicleType.Name = *input.Name
	}
	if input.Capacity != nil {
		vehicleType.Capacity = *input.Capacity
	}
	if input.Data != nil {
		vehicleType.Data = *input.Data
	}
	if input.CommentForAccount != nil {
		vehicleType.CommentForAccount = *input.CommentForAccount
	}

	if err := vc.DB.Save(&vehicleType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle type: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicleType})
}

func (vc *VehicleTypeController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	deleted, err := softDelete(vc.DB, c, &models.CustomVehicleType{}, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle type: " + err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle type deleted"})
}
