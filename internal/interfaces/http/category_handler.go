package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category (lectura + disable).
type CategoryHandler struct {
	uc        *usecase.CategoryUseCase
	disableUC *catalog.DisableUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, disableUC *catalog.DisableUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, disableUC: disableUC}
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Produce      json
// @Param        page       query  int  false  "Página"          default(1)
// @Param        page_size  query  int  false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.CategoryPage
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Next, out.Previous = pageLinks(c, page, out.Count)
	return c.JSON(out)
}

// AdminList godoc
// @Summary      Listar todas las categorías (variante admin, incluye inactivas)
// @Tags         categories
// @Produce      json
// @Param        page       query  int  false  "Página"          default(1)
// @Param        page_size  query  int  false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.AdminCategoryPage
// @Router       /admin/categories [get]
func (h *CategoryHandler) AdminList(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.AdminList(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Next, out.Previous = pageLinks(c, page, out.Count)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID (también si está inactiva)
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Desactivar categoría en cascada (productos y artículos incluidos)
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.DisableCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id}/disable [post]
func (h *CategoryHandler) Disable(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.disableUC.DisableCategory(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
