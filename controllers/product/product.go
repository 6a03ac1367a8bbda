package productcontroller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
	"go.mongodb.org/mongo-driver/bson"
)

// defaultListLimit caps catalog listings; there is no pagination.
const defaultListLimit = 100

type CreateProductRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Price       float64                 `json:"price" binding:"gte=0"`
	Category    string                  `json:"category" binding:"required"`
	Images      []models.ProductImage   `json:"images" binding:"omitempty,dive"`
	Variants    []models.ProductVariant `json:"variants"`
	InStock     *bool                   `json:"in_stock"` // defaults to true when omitted
}

func (r CreateProductRequest) toProduct() models.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return models.Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Images:      r.Images,
		Variants:    r.Variants,
		InStock:     inStock,
	}
}

// -------- Core Logic --------

// ListProducts returns up to limit products in store-native order.
func ListProducts(ctx context.Context, s store.Store, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var products []models.Product
	if err := s.Find(ctx, models.ProductCollection, bson.M{}, limit, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct persists the product as given. The category is not
// checked for existence.
func CreateProduct(ctx context.Context, s store.Store, req CreateProductRequest) (string, error) {
	return s.Insert(ctx, models.ProductCollection, req.toProduct())
}

// -------- Handlers --------

// GET /products
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := ListProducts(c.Request.Context(), s, defaultListLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /products
func CreateProductHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pid, err := CreateProduct(c.Request.Context(), s, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_id": pid})
	}
}
