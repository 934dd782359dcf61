package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product (lectura + disable).
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	disableUC *catalog.DisableUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, disableUC *catalog.DisableUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, disableUC: disableUC}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        category_id  query  string  false  "Filtro exacto por categoría"
// @Param        page         query  int     false  "Página"          default(1)
// @Param        page_size    query  int     false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.ProductPage
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	categoryID := c.Query("category_id")
	out, err := h.uc.List(c.UserContext(), categoryID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Next, out.Previous = pageLinks(c, page, out.Count)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID (también si está inactivo)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Desactivar producto en cascada (artículos incluidos)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.DisableProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/disable [post]
func (h *ProductHandler) Disable(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.disableUC.DisableProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
