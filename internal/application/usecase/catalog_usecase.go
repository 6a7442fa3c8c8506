package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	"github.com/jhoicas/store-api/pkg/logger"
)

// CatalogTxRunner ejecuta fn dentro de una transacción con el repo de productos
// atado a ella. Lo implementa postgres.TxRunner; la interfaz evita que la capa
// de aplicación dependa de pgx.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// CatalogUseCase casos de uso del catálogo de productos. Las lecturas van
// directo al repo; toda secuencia leer-modificar-escribir corre dentro del
// TxRunner para que sea atómica frente a operaciones concurrentes.
type CatalogUseCase struct {
	repo repository.ProductRepository
	tx   CatalogTxRunner
	log  *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository, tx CatalogTxRunner, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, tx: tx, log: log}
}

// Create crea un producto nuevo (siempre activo). Falla con duplicado si el SKU
// ya existe; el índice único de la base cubre la carrera entre el check y el insert.
func (uc *CatalogUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uc.log.Info().Str("sku", in.SKU).Msg("creando producto")

	if !entity.IsValidCategory(in.Category) {
		return nil, domain.InvalidInput("categoría desconocida: " + in.Category)
	}
	if in.Price.IsNegative() {
		return nil, domain.InvalidInput("price no puede ser negativo")
	}
	if in.Quantity < 0 {
		return nil, domain.InvalidInput("quantity no puede ser negativo")
	}
	exists, err := uc.repo.ExistsBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.AlreadyExists("Producto", "sku", in.SKU)
	}

	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SKU:         in.SKU,
		Category:    in.Category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *CatalogUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Producto", "id", id)
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *CatalogUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Producto", "sku", sku)
	}
	return toProductResponse(product), nil
}

// List devuelve una página de productos. page y size negativos o cero caen a
// los valores por defecto; sortBy desconocido cae a "id" en el repo.
func (uc *CatalogUseCase) List(page, size int, sortBy string) (*dto.ProductPageResponse, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	list, total, err := uc.repo.List(size, page*size, sortBy)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductPageResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, Size: size, Total: total},
	}, nil
}

// ListByCategory lista los productos de una categoría (posiblemente vacío).
func (uc *CatalogUseCase) ListByCategory(category string) ([]dto.ProductResponse, error) {
	if !entity.IsValidCategory(category) {
		return nil, domain.InvalidInput("categoría desconocida: " + category)
	}
	list, err := uc.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca keyword en name o description (subcadena, sin distinguir mayúsculas).
func (uc *CatalogUseCase) Search(keyword string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(keyword)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock lista productos con quantity < threshold.
func (uc *CatalogUseCase) ListLowStock(threshold int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(threshold)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListPriceRange lista productos con min <= price <= max.
func (uc *CatalogUseCase) ListPriceRange(min, max decimal.Decimal) ([]dto.ProductResponse, error) {
	if min.GreaterThan(max) {
		return nil, domain.InvalidInput("minPrice no puede ser mayor que maxPrice")
	}
	list, err := uc.repo.ListPriceRange(min, max)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica una actualización parcial: solo los campos no nulos del payload
// sobreescriben el producto. Corre dentro de una transacción.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uc.log.Info().Int64("id", id).Msg("actualizando producto")

	if in.Category != nil && !entity.IsValidCategory(*in.Category) {
		return nil, domain.InvalidInput("categoría desconocida: " + *in.Category)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.InvalidInput("price no puede ser negativo")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.InvalidInput("quantity no puede ser negativo")
	}

	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("Producto", "id", id)
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.Active != nil {
			product.Active = *in.Active
		}
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrice reemplaza el precio completo. Rechaza precios negativos.
func (uc *CatalogUseCase) UpdatePrice(ctx context.Context, id int64, newPrice decimal.Decimal) (*dto.ProductResponse, error) {
	uc.log.Info().Int64("id", id).Str("price", newPrice.String()).Msg("actualizando precio")

	if newPrice.IsNegative() {
		return nil, domain.InvalidInput("price no puede ser negativo")
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("Producto", "id", id)
		}
		product.Price = newPrice
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustStock suma delta (positivo o negativo) al stock. Si el resultado sería
// negativo, la operación se rechaza completa y el stock queda intacto.
func (uc *CatalogUseCase) AdjustStock(ctx context.Context, id int64, delta int) (*dto.ProductResponse, error) {
	uc.log.Info().Int64("id", id).Int("delta", delta).Msg("ajustando stock")

	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("Producto", "id", id)
		}
		newQuantity := product.Quantity + delta
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		product.Quantity = newQuantity
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", id).Int("quantity", out.Quantity).Msg("stock ajustado")
	return out, nil
}

// Delete elimina un producto (borrado físico). Un segundo delete del mismo ID
// falla con not found.
func (uc *CatalogUseCase) Delete(id int64) error {
	uc.log.Info().Int64("id", id).Msg("eliminando producto")
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SKU:         p.SKU,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
