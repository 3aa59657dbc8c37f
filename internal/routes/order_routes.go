package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/controllers"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
)

func OrderRoutes(r *gin.Engine, deps Deps) {
	ctrl := controllers.NewOrderController(deps.DB)

	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.GET("", ctrl.List)
		orders.GET("/:id", ctrl.Get)
	}

	writes := r.Group("/orders")
	writes.Use(middleware.RequireMinRole(models.RoleNormal))
	{
		writes.POST("", ctrl.Create)
		writes.DELETE("/:id", ctrl.Delete)
	}
}
