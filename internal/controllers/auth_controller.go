package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type signupInput struct {
	Account         string `json:"account" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	PeopleName      string `json:"people_name" binding:"required"`
	CompanyName     string `json:"company_name"`
	CompanyIndustry string `json:"company_industry"`
	Phone           string `json:"phone"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	account := models.Account{
		AccountName:     input.Account,
		Email:           input.Email,
		Password:        hash,
		PeopleName:      input.PeopleName,
		CompanyName:     input.CompanyName,
		CompanyIndustry: input.CompanyIndustry,
		Phone:           input.Phone,
		AccountRole:     models.RoleNormal,
		Status:          models.StatusActive,
	}
	if err := ac.DB.Create(&account).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "account or email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(account.ID, account.AccountRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"account": account,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Account  string `json:"account" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var account models.Account
	err := ac.DB.Where("account = ? AND status <> ?", body.Account, models.StatusDeleted).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found or invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(account.ID, account.AccountRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"account": account,
	})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
