package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (lectura pública y gestión admin).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Slug de categoría"
// @Param        featured  query  bool    false  "Solo destacados"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := dto.ProductFilter{Category: c.Query("category")}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: "VALIDATION", Message: "featured debe ser true o false"})
		}
		filter.Featured = &featured
	}
	return c.JSON(h.uc.List(c.UserContext(), filter))
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// AdminList lista todos los productos sin filtros (panel).
func (h *ProductHandler) AdminList(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.UserContext(), dto.ProductFilter{}))
}

// AdminGet godoc
// @Summary      Obtener producto por ID (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [get]
func (h *ProductHandler) AdminGet(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplaceAll guarda la lista completa enviada por el formulario del panel.
// @Router       /api/admin/products [put]
func (h *ProductHandler) ReplaceAll(c *fiber.Ctx) error {
	var in dto.ReplaceProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Products == nil {
		return missingField(c, "products")
	}
	out, err := h.uc.ReplaceAll(c.UserContext(), *in.Products)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
