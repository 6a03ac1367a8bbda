package orderControllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	ShippingAddress string `json:"shipping_address"`
}

type OrderSummary struct {
	OrderID string             `json:"order_id"`
	Total   float64            `json:"total"`
	Status  models.OrderStatus `json:"status"`
}

// -------- Core Logic --------

// Checkout turns the user's cart into a paid order: snapshot each line
// against the product collection, persist the order, then clear the
// cart. The order insert and the cart clear are not transactional; a
// store failure between the two leaves the order written and the cart
// intact.
func Checkout(ctx context.Context, s store.Store, req CheckoutRequest) (*OrderSummary, error) {
	var cart models.Cart
	err := s.FindOne(ctx, models.CartCollection, bson.M{"user_id": req.UserID}, &cart)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		title, price := resolveProduct(ctx, s, item.ProductID)
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += price * float64(qty)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Title:     title,
			UnitPrice: price,
			Quantity:  qty,
			Size:      item.Size,
			Color:     item.Color,
		})
	}
	total = math.Round(total*100) / 100

	now := time.Now().UTC()
	order := models.Order{
		UserID:          req.UserID,
		Items:           orderItems,
		Total:           total,
		Status:          models.OrderStatusPaid,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	oid, err := s.Insert(ctx, models.OrderCollection, order)
	if err != nil {
		return nil, err
	}

	err = s.UpdateOne(ctx, models.CartCollection,
		bson.M{"user_id": req.UserID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, err
	}

	return &OrderSummary{OrderID: oid, Total: total, Status: models.OrderStatusPaid}, nil
}

// resolveProduct snapshots title and unit price for one cart line.
// Malformed or unresolvable product references fall back to defaults
// instead of failing the whole checkout.
func resolveProduct(ctx context.Context, s store.Store, productID string) (string, float64) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return "Item", 0.0
	}
	var product models.Product
	if err := s.FindOne(ctx, models.ProductCollection, bson.M{"_id": oid}, &product); err != nil {
		return "Item", 0.0
	}
	return product.Title, product.Price
}

// -------- Handlers --------

// POST /checkout
func CheckoutHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		summary, err := Checkout(c.Request.Context(), s, req)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete checkout"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
