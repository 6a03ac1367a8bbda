package productcontroller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	productcontroller "github.com/threadline/storefront-api/controllers/product"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCreateAndListProducts(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	pid, err := productcontroller.CreateProduct(ctx, s, productcontroller.CreateProductRequest{
		Title:    "Tee",
		Price:    15,
		Category: "shirts",
		Images:   []models.ProductImage{{URL: "https://img/tee.jpg", Alt: "front"}},
		Variants: []models.ProductVariant{{Size: "M", Color: "black", Stock: 4}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pid)

	products, err := productcontroller.ListProducts(ctx, s, 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tee", products[0].Title)
	assert.Equal(t, 15.0, products[0].Price)
	assert.True(t, products[0].InStock) // defaults to true when omitted
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, 4, products[0].Variants[0].Stock)
}

func TestListProductsHonorsLimit(t *testing.T) {
	s := store.NewMemory("testdb")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := productcontroller.CreateProduct(ctx, s, productcontroller.CreateProductRequest{
			Title: "Tee", Price: 10, Category: "shirts",
		})
		require.NoError(t, err)
	}

	products, err := productcontroller.ListProducts(ctx, s, 2)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductHandlers(t *testing.T) {
	s := store.NewMemory("testdb")
	r := gin.New()
	r.GET("/products", productcontroller.GetProducts(s))
	r.POST("/products", productcontroller.CreateProductHandler(s))

	post := func(payload any) *httptest.ResponseRecorder {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	// Empty catalog lists as an empty array, not null.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = post(gin.H{"title": "Tee", "price": 15, "category": "shirts"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		ProductID string `json:"product_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ProductID)

	// Zero price is allowed, negative is not.
	w = post(gin.H{"title": "Freebie", "price": 0, "category": "promo"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = post(gin.H{"title": "Bad", "price": -1, "category": "shirts"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Required fields enforced by binding.
	w = post(gin.H{"price": 5, "category": "shirts"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = post(gin.H{"title": "NoCat", "price": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Listings never expose internal identifiers.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotEmpty(t, raw)
	for _, doc := range raw {
		assert.NotContains(t, doc, "_id")
		assert.NotContains(t, doc, "id")
	}
}
