package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/threadline/storefront-api/controllers/product"
	"github.com/threadline/storefront-api/store"
)

// SetupProductRoutes registers the catalog endpoints.
func SetupProductRoutes(r *gin.Engine, s store.Store) {
	r.GET("/products", productcontroller.GetProducts(s))           // GET /products
	r.POST("/products", productcontroller.CreateProductHandler(s)) // POST /products
}
