package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los productos nuevos
// siempre nacen activos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Category    string          `json:"category" validate:"required"`
}

// UpdateProductRequest entrada para actualización parcial. Todos los campos son
// punteros: nil significa "no tocar", de modo que omitir quantity o active
// nunca pone el stock en cero ni desactiva el producto por accidente.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	Category    *string          `json:"category"`
	Active      *bool            `json:"active"`
}

// UpdatePriceRequest entrada para reemplazo completo del precio.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductPageResponse página de productos con metadatos offset-based.
type ProductPageResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
