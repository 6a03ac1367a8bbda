package cartControllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
	"go.mongodb.org/mongo-driver/bson"
)

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"` // defaults to 1 when omitted
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CartResponse struct {
	CartID string            `json:"cart_id"`
	Items  []models.CartItem `json:"items"`
}

// -------- Core Logic --------

// GetOrCreateCart looks up the user's cart and lazily creates an empty
// one when absent. One-cart-per-user is enforced only by this
// lookup-before-create: concurrent first-time calls for the same user
// can create two carts.
func GetOrCreateCart(ctx context.Context, s store.Store, userID string) (*CartResponse, error) {
	var cart models.Cart
	err := s.FindOne(ctx, models.CartCollection, bson.M{"user_id": userID}, &cart)
	if errors.Is(err, store.ErrNotFound) {
		now := time.Now().UTC()
		cid, err := s.Insert(ctx, models.CartCollection, models.Cart{
			UserID:    userID,
			Items:     []models.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}
		return &CartResponse{CartID: cid, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return &CartResponse{CartID: cart.ID.Hex(), Items: items}, nil
}

// AddItem appends item to the user's cart, creating the cart when
// absent. Duplicate (product_id, size, color) lines accumulate rather
// than merging quantities. Two concurrent calls for the same user can
// lose an update; the full item sequence is rewritten on each call.
func AddItem(ctx context.Context, s store.Store, userID string, item models.CartItem) (*CartResponse, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	var cart models.Cart
	err := s.FindOne(ctx, models.CartCollection, bson.M{"user_id": userID}, &cart)
	if errors.Is(err, store.ErrNotFound) {
		now := time.Now().UTC()
		items := []models.CartItem{item}
		cid, err := s.Insert(ctx, models.CartCollection, models.Cart{
			UserID:    userID,
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}
		return &CartResponse{CartID: cid, Items: items}, nil
	}
	if err != nil {
		return nil, err
	}

	items := append(cart.Items, item)
	err = s.UpdateOne(ctx, models.CartCollection,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": items, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, err
	}
	return &CartResponse{CartID: cart.ID.Hex(), Items: items}, nil
}

// -------- Handlers --------

// GET /cart/:user_id
func GetCartHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		cart, err := GetOrCreateCart(c.Request.Context(), s, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/:user_id/add
func AddItemHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(c.Request.Context(), s, userID, models.CartItem{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Size:      req.Size,
			Color:     req.Color,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
