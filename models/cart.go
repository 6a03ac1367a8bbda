package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartCollection is the backing collection name.
const CartCollection = "cart"

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"cart_id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"` // one cart per user, enforced by lookup-before-create
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CartItem has no identity of its own; it exists only inside a cart's
// item sequence. The product reference is not validated at insert time.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	Size      string `bson:"size,omitempty" json:"size,omitempty"`
	Color     string `bson:"color,omitempty" json:"color,omitempty"`
}
