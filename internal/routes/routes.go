package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps is everything the HTTP surface needs, threaded in from main.
type Deps struct {
	DB           *gorm.DB
	GraphHandler http.Handler
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, deps)
	DestinationRoutes(r, deps)
	VehicleTypeRoutes(r, deps)
	VehicleRoutes(r, deps)
	OrderRoutes(r, deps)
	GraphQLRoutes(r, deps)

	return r
}
