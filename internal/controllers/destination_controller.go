package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
)

type DestinationController struct {
	DB *gorm.DB
}

func NewDestinationController(db *gorm.DB) *DestinationController {
	return &DestinationController{DB: db}
}

func (dc *DestinationController) List(c *gin.Context) {
	var destinations []models.Destination
	if err := scoped(dc.DB, c).Find(&destinations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing destinations: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": destinations})
}

func (dc *DestinationController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var destination models.Destination
	err := dc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&destination).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": destination})
}

func (dc *DestinationController) Create(c *gin.Context) {
	var input struct {
		Name              string         `json:"name" binding:"required"`
		Address           string         `json:"address" binding:"required"`
		Lat               string         `json:"lat" binding:"required"`
		Lng               string         `json:"lng" binding:"required"`
		Data              datatypes.JSON `json:"data"`
		CommentForAccount string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateDestination: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	destination := models.Destination{
		AccountID:         accountID(c),
		Status:            models.StatusActive,
		Name:              input.Name,
		Address:           input.Address,
		Lat:               input.Lat,
		Lng:               input.Lng,
		Data:              input.Data,
		CommentForAccount: input.CommentForAccount,
	}
	if err := dc.DB.Create(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create destination: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": destination})
}

func (dc *DestinationController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	var destination models.Destination
	err := dc.DB.Where("id = ? AND account_id = ? AND status <> ?", id, accountID(c), models.StatusDeleted).
		First(&destination).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	var input struct {
		Name              *string         `json:"name"`
		Address           *string         `json:"address"`
		Lat               *string         `json:"lat"`
		Lng               *string         `json:"lng"`
		Data              *datatypes.JSON `json:"data"`
		CommentForAccount *string         `json:"comment_for_account"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	if input.Name != nil {
		destination.Name = *input.Name
	}
	if input.Address != nil {
		destination.Address = *input.Address
	}
	if input.Lat != nil {
		destination.Lat = *input.Lat
	}
	if input.Lng != nil {
		destination.Lng = *input.Lng
	}
	if input.Data != nil {
		destination.Data = *input.Data
	}
	if input.CommentForAccount != nil {
		destination.CommentForAccount = *input.CommentForAccount
	}

	if err := dc.DB.Save(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update destination: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": destination})
}

func (dc *DestinationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	deleted, err := softDelete(dc.DB, c, &models.Destination{}, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete destination: " + err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
}
