package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// CatalogHandler sirve los documentos derivados del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Sitemap godoc
// @Summary      sitemap.xml del sitio
// @Tags         catalog
// @Produce      xml
// @Success      200
// @Router       /sitemap.xml [get]
func (h *CatalogHandler) Sitemap(c *fiber.Ctx) error {
	out, err := h.uc.Sitemap(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// CatalogPDF godoc
// @Summary      Descargar catálogo en PDF
// @Tags         catalog
// @Produce      application/pdf
// @Param        category  query  string  false  "Slug de categoría (vacío = todas)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog.pdf [get]
func (h *CatalogHandler) CatalogPDF(c *fiber.Ctx) error {
	out, filename, err := h.uc.CatalogPDF(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}
