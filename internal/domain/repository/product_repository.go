package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las implementaciones asignan ID y devuelven registros planos; la carga es
// siempre explícita, sin grafos de entidades.
type ProductRepository interface {
	// Create persiste el producto y escribe el ID asignado en product.ID.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ExistsBySKU(sku string) (bool, error)
	// List devuelve una página ordenada por sortBy (campos fuera de la lista
	// blanca caen a "id") y el total de productos.
	List(limit, offset int, sortBy string) ([]*entity.Product, int, error)
	ListByCategory(category string) ([]*entity.Product, error)
	// Search busca keyword como subcadena (sin distinguir mayúsculas) en name o description.
	Search(keyword string) ([]*entity.Product, error)
	ListLowStock(threshold int) ([]*entity.Product, error)
	ListPriceRange(min, max decimal.Decimal) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
