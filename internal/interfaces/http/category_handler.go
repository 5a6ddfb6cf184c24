package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// CategoryHandler expone el registro de categorías y el archivo editable.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Count godoc
// @Summary      Número de categorías publicadas
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/admin/categories/count [get]
func (h *CategoryHandler) Count(c *fiber.Ctx) error {
	return c.JSON(dto.CountResponse{Count: h.uc.Count()})
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListRegistry())
}

// GetBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	return c.JSON(out)
}

// ListStored contenido de categories.json (panel).
func (h *CategoryHandler) ListStored(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListStored(c.UserContext()))
}

// SaveStored reemplaza categories.json (panel).
func (h *CategoryHandler) SaveStored(c *fiber.Ctx) error {
	var in dto.SaveCategoriesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Categories == nil {
		return missingField(c, "categories")
	}
	out, err := h.uc.SaveStored(c.UserContext(), *in.Categories)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
