package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table.
// Nullable columns are pointers so they serialize cleanly to JSON.
type Product struct {
	ID        int64            `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	SKU       *string          `json:"sku,omitempty" db:"sku"`
	Price     *decimal.Decimal `json:"price,omitempty" db:"price"`
	IsActive  bool             `json:"is_active" db:"is_active"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// CreateProductInput is the request body for creating a product.
// Only name is required; is_active defaults to true at the store level.
type CreateProductInput struct {
	Name  string           `json:"name" binding:"required,min=1,max=255"`
	SKU   *string          `json:"sku" binding:"omitempty,max=100"`
	Price *decimal.Decimal `json:"price"`
}

// UpdateProductInput is the request body for updating a product.
// All fields are optional: only non-nil fields are applied (merge-patch),
// everything omitted from the request is left untouched.
type UpdateProductInput struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=255"`
	SKU      *string          `json:"sku" binding:"omitempty,max=100"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"is_active"`
}
