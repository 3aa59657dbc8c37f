package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/controllers"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
)

func VehicleRoutes(r *gin.Engine, deps Deps) {
	ctrl := controllers.NewVehicleController(deps.DB)

	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("", ctrl.List)
		vehicles.GET("/:id", ctrl.Get)
	}

	writes := r.Group("/vehicles")
	writes.Use(middleware.RequireMinRole(models.RoleNormal))
	{
		writes.POST("", ctrl.Create)
		writes.PUT("/:id", ctrl.Update)
		writes.DELETE("/:id", ctrl.Delete)
	}
}
