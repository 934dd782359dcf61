package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	DisableUC  *catalog.DisableUseCase
}

// Router registra las rutas de la API. El catálogo es de solo lectura:
// create/update/delete responden 405 sin tocar el store; la única mutación
// expuesta es POST /{colección}/{id}/disable.
func Router(app *fiber.App, deps RouterDeps) {
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.DisableUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.DisableUC)

	// Categories (público)
	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", methodNotAllowed)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", methodNotAllowed)
	categories.Patch("/:id", methodNotAllowed)
	categories.Delete("/:id", methodNotAllowed)
	categories.Post("/:id/disable", categoryHandler.Disable)

	// Products (público)
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", methodNotAllowed)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", methodNotAllowed)
	products.Patch("/:id", methodNotAllowed)
	products.Delete("/:id", methodNotAllowed)
	products.Post("/:id/disable", productHandler.Disable)

	// Variante admin del listado de categorías (incluye inactivas y sus flags)
	admin := app.Group("/admin")
	admin.Get("/categories", categoryHandler.AdminList)
}

// methodNotAllowed rechaza las operaciones de escritura deshabilitadas.
func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "operación de escritura deshabilitada en este recurso",
	})
}
