package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/controllers"
)

func AuthRoutes(r *gin.Engine, deps Deps) {
	ctrl := controllers.NewAuthController(deps.DB)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctrl.Signup)
		auth.POST("/login", ctrl.Login)
	}
}
