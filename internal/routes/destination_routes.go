package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/controllers"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
)

func DestinationRoutes(r *gin.Engine, deps Deps) {
	ctrl := controllers.NewDestinationController(deps.DB)

	destinations := r.Group("/destinations")
	destinations.Use(middleware.RequireAuth())
	{
		destinations.GET("", ctrl.List)
		destinations.GET("/:id", ctrl.Get)
	}

	writes := r.Group("/destinations")
	writes.Use(middleware.RequireMinRole(models.RoleNormal))
	{
		writes.POST("", ctrl.Create)
		writes.PUT("/:id", ctrl.Update)
		writes.DELETE("/:id", ctrl.Delete)
	}
}
