package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
)

// Locals key con la expiración de la sesión validada.
const LocalSessionExpiresAt = "admin_session_expires_at"

// cacheControlNoStore desactiva el cacheo de respuestas con datos de sesión.
const cacheControlNoStore = "no-store, max-age=0"

// sessionValidator contrato mínimo del gate que necesita el middleware.
// Lo implementa *auth.AdminGate.
type sessionValidator interface {
	ValidateSession(token string) (time.Time, error)
}

// RequireAdmin valida la sesión de admin: cookie de sesión o, en su defecto, Bearer Token.
// Deja la expiración en c.Locals(LocalSessionExpiresAt).
func RequireAdmin(gate sessionValidator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, cacheControlNoStore)

		token := c.Cookies(cookieName)
		if token == "" {
			token = bearerToken(c.Get(fiber.HeaderAuthorization))
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Code: "MISSING_SESSION", Message: "sesión de administrador requerida"})
		}
		exp, err := gate.ValidateSession(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Code: "INVALID_SESSION", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalSessionExpiresAt, exp)
		return c.Next()
	}
}

// GetSessionExpiresAt devuelve la expiración de la sesión (después de RequireAdmin).
func GetSessionExpiresAt(c *fiber.Ctx) time.Time {
	v := c.Locals(LocalSessionExpiresAt)
	if v == nil {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
