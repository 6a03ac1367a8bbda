package models

// ProductCollection is the backing collection name.
const ProductCollection = "product"

// Product has no id field on purpose: listings never expose internal
// identifiers, and products are immutable once created.
type Product struct {
	Title       string           `bson:"title" json:"title" binding:"required"`
	Description string           `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64          `bson:"price" json:"price" binding:"gte=0"`
	Category    string           `bson:"category" json:"category" binding:"required"`
	Images      []ProductImage   `bson:"images" json:"images" binding:"omitempty,dive"`
	Variants    []ProductVariant `bson:"variants" json:"variants"`
	InStock     bool             `bson:"in_stock" json:"in_stock"`
}

type ProductImage struct {
	URL string `bson:"url" json:"url" binding:"required"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type ProductVariant struct {
	Size  string `bson:"size,omitempty" json:"size,omitempty"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
	Stock int    `bson:"stock" json:"stock"`
}
