// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	usershandler "user_backend/internal/feature/users/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all application routes.
func NewRouter(users *usershandler.UserHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// User account management
	api := r.Group("/api")
	{
		api.POST("/usuarios", users.Create)
		api.GET("/usuarios", users.Get)
		api.PUT("/usuarios/:id", users.Update)
		api.DELETE("/usuarios", users.Delete)
	}

	return r
}
