package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/threadline/storefront-api/controllers/order"
	"github.com/threadline/storefront-api/store"
)

// SetupCheckoutRoutes registers the mock checkout endpoint.
func SetupCheckoutRoutes(r *gin.Engine, s store.Store) {
	r.POST("/checkout", orderControllers.CheckoutHandler(s))
}
