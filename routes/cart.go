package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/threadline/storefront-api/controllers/cart"
	"github.com/threadline/storefront-api/store"
)

// SetupCartRoutes registers all “/cart/*” endpoints.
func SetupCartRoutes(r *gin.Engine, s store.Store) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/:user_id", cartControllers.GetCartHandler(s))      // GET /cart/:user_id
		cartGroup.POST("/:user_id/add", cartControllers.AddItemHandler(s)) // POST /cart/:user_id/add
	}
}
