package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_dispatch/internal/middleware"
)

// GraphQLRoutes mounts the GraphQL endpoint. Auth is optional at the HTTP
// layer; unauthenticated callers still reach register/login, and every other
// field raises its own unauthenticated error.
func GraphQLRoutes(r *gin.Engine, deps Deps) {
	gql := r.Group("/graphql")
	gql.Use(middleware.OptionalAuth())
	{
		gql.POST("", gin.WrapH(deps.GraphHandler))
		gql.GET("", gin.WrapH(deps.GraphHandler))
	}
}
