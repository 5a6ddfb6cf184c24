package http

import "github.com/gofiber/fiber/v2"

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health responde 200 mientras el proceso atienda peticiones.
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, cacheControlNoStore)
		return c.JSON(HealthResponse{Status: "ok", Service: service})
	}
}
