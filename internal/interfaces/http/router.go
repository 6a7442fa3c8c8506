package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API bajo el prefijo /api.
// Escrituras del catálogo: ADMIN o MANAGER. Lecturas: cualquier rol autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (protegido: Bearer Token)
	products := api.Group("/products", AuthMiddleware(deps.JWTSecret))
	productHandler := NewProductHandler(deps.CatalogUC)

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee, entity.RoleCustomer)
	writeRole := RequireRole(entity.RoleAdmin, entity.RoleManager)

	products.Get("/", anyRole, productHandler.List)
	products.Get("/search", anyRole, productHandler.Search)
	products.Get("/low-stock", anyRole, productHandler.ListLowStock)
	products.Get("/price-range", anyRole, productHandler.ListPriceRange)
	products.Get("/category/:category", anyRole, productHandler.ListByCategory)
	products.Get("/sku/:sku", anyRole, productHandler.GetBySKU)
	products.Get("/:id", anyRole, productHandler.GetByID)

	products.Post("/", writeRole, productHandler.Create)
	products.Put("/:id/price", writeRole, productHandler.UpdatePrice)
	products.Put("/:id/stock", writeRole, productHandler.AdjustStock)
	products.Put("/:id", writeRole, productHandler.Update)
	products.Delete("/:id", writeRole, productHandler.Delete)
}
