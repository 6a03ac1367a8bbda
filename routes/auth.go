package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/threadline/storefront-api/controllers/auth"
	"github.com/threadline/storefront-api/store"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, s store.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.SignupHandler(s)) // POST /auth/signup
		authGroup.POST("/login", authControllers.LoginHandler(s))   // POST /auth/login
	}
}
