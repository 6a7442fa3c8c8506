package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/pkg/metrics"
)

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc *usecase.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInput("id debe ser un entero positivo")
	}
	return id, nil
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.ProductsCreatedTotal.WithLabelValues(out.Category).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	if sku == "" {
		return respondStatus(c, fiber.StatusBadRequest, "sku es requerido")
	}
	out, err := h.uc.GetBySKU(sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (paginado)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"           default(0)
// @Param        size    query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy  query  string  false  "Campo de orden"    default(id)
// @Success      200     {object}  dto.ProductPageResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	sortBy := c.Query("sortBy", "id")
	out, err := h.uc.List(page, size, sortBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Categoría"
// @Success      200       {array}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por palabra clave
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  true  "Subcadena a buscar en name o description"
// @Success      200      {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return respondStatus(c, fiber.StatusBadRequest, "keyword es requerido")
	}
	out, err := h.uc.Search(keyword)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Listar productos con stock bajo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        quantity  query  int  true  "Umbral: se listan productos con quantity menor"
// @Success      200       {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("quantity", 0)
	out, err := h.uc.ListLowStock(threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPriceRange godoc
// @Summary      Listar productos por rango de precio
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        minPrice  query  number  true  "Precio mínimo"
// @Param        maxPrice  query  number  true  "Precio máximo"
// @Success      200       {array}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/products/price-range [get]
func (h *ProductHandler) ListPriceRange(c *fiber.Ctx) error {
	min, err := decimal.NewFromString(c.Query("minPrice"))
	if err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "minPrice debe ser un número")
	}
	max, err := decimal.NewFromString(c.Query("maxPrice"))
	if err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "maxPrice debe ser un número")
	}
	out, err := h.uc.ListPriceRange(min, max)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a sobreescribir (los omitidos no cambian)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if fieldErrors := validateStruct(in); fieldErrors != nil {
		return respondValidation(c, fieldErrors)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePrice godoc
// @Summary      Reemplazar precio de producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdatePriceRequest  true  "Nuevo precio"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [put]
func (h *ProductHandler) UpdatePrice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdatePrice(c.Context(), id, in.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock de producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id        path   int  true  "ID del producto"
// @Param        quantity  query  int  true  "Delta a aplicar (negativo decrementa)"
// @Success      200       {object}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	delta, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		return respondStatus(c, fiber.StatusBadRequest, "quantity debe ser un entero")
	}
	out, err := h.uc.AdjustStock(c.Context(), id, delta)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.StockRejectionsTotal.Inc()
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
