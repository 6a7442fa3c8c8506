package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para Product (enumeración cerrada).
const (
	CategoryElectronics = "ELECTRONICS"
	CategoryClothing    = "CLOTHING"
	CategoryBooks       = "BOOKS"
	CategoryHome        = "HOME"
	CategorySports      = "SPORTS"
	CategoryToys        = "TOYS"
	CategoryOther       = "OTHER"
)

// Categories lista las categorías válidas (el orden no importa).
var Categories = []string{
	CategoryElectronics, CategoryClothing, CategoryBooks,
	CategoryHome, CategorySports, CategoryToys, CategoryOther,
}

// IsValidCategory indica si s pertenece a la enumeración de categorías.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo, identificado por ID numérico y SKU único.
// Quantity nunca puede ser negativo; los ajustes de stock se validan en el use case
// dentro de una transacción.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	SKU         string // único en todo el catálogo, inmutable en la práctica
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
