package routes

import (
	"github.com/gin-gonic/gin"
	healthControllers "github.com/threadline/storefront-api/controllers/health"
	"github.com/threadline/storefront-api/store"
)

// SetupRoutes is the single entry‐point that wires up every route group.
func SetupRoutes(r *gin.Engine, s store.Store) {
	// Liveness + diagnostics
	r.GET("/", healthControllers.HomeHandler())
	r.GET("/test", healthControllers.DiagnosticsHandler(s))

	// Public auth routes
	SetupAuthRoutes(r, s)

	// Catalog
	SetupProductRoutes(r, s)

	// Shopping cart
	SetupCartRoutes(r, s)

	// Checkout
	SetupCheckoutRoutes(r, s)
}
