package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
)

// adminGate contrato del gate de admin usado por el handler. Lo implementa *auth.AdminGate.
type adminGate interface {
	sessionValidator
	LoginAdmin(password, userAgentHint string) bool
	IssueSession(userAgentHint string) (string, time.Time, error)
}

// SessionCookieConfig atributos de la cookie de sesión.
type SessionCookieConfig struct {
	Name   string
	Secure bool
}

// AdminAuthHandler maneja login, logout y estado de la sesión del panel.
type AdminAuthHandler struct {
	gate   adminGate
	cookie SessionCookieConfig
}

// NewAdminAuthHandler construye el handler.
func NewAdminAuthHandler(gate adminGate, cookie SessionCookieConfig) *AdminAuthHandler {
	return &AdminAuthHandler{gate: gate, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión de administrador
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "password"
// @Success      200   {object}  dto.AdminLoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, cacheControlNoStore)

	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ua := c.Get(fiber.HeaderUserAgent)
	if !h.gate.LoginAdmin(in.Password, ua) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false})
	}
	token, exp, err := h.gate.IssueSession(ua)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.AdminLoginResponse{Success: true})
}

// Logout godoc
// @Summary      Cerrar sesión de administrador
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/logout [post]
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, cacheControlNoStore)
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Session devuelve la expiración de la sesión actual (ruta protegida por RequireAdmin).
func (h *AdminAuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.AdminSessionResponse{Success: true, ExpiresAt: GetSessionExpiresAt(c)})
}
