package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/controllers"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
)

func VehicleTypeRoutes(r *gin.Engine, deps Deps) {
	ctrl := controllers.NewVehicleTypeController(deps.DB)

	vehicleTypes := r.Group("/vehicle-types")
	vehicleTypes.Use(middleware.RequireAuth())
	{
		vehicleTypes.GET("", ctrl.List)
		vehicleTypes.GET("/:id", ctrl.Get)
	}

	writes := r.Group("/vehicle-types")
	writes.Use(middleware.RequireMinRole(models.RoleNormal))
	{
		writes.POST("", ctrl.Create)
		writes.PUT("/:id", ctrl.Update)
		writes.DELETE("/:id", ctrl.Delete)
	}
}
