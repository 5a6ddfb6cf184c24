package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

// EnvHandler diagnóstico de configuración, solo en desarrollo.
type EnvHandler struct {
	uc          *usecase.EnvCheckUseCase
	development bool
}

// NewEnvHandler construye el handler. Fuera de desarrollo siempre responde 403.
func NewEnvHandler(uc *usecase.EnvCheckUseCase, development bool) *EnvHandler {
	return &EnvHandler{uc: uc, development: development}
}

// Check godoc
// @Summary      Revisar configuración (solo desarrollo)
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.EnvCheckResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.EnvCheckResponse
// @Router       /api/env-check [get]
func (h *EnvHandler) Check(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, cacheControlNoStore)
	if !h.development {
		return respondError(c, fmt.Errorf("%w: solo disponible en desarrollo", domain.ErrForbidden), "")
	}
	out := h.uc.Check()
	if !out.Valid {
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.JSON(out)
}
