package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
)

// AppOptions parámetros del servidor Fiber.
type AppOptions struct {
	Name           string
	AllowedOrigins string // "*" o lista separada por comas
	Log            zerolog.Logger
}

// NewApp construye la app Fiber con el manejo de errores y los middlewares comunes:
// request id, log de peticiones, recover (pánicos → 500) y CORS.
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: NewErrorHandler(opts.Log),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(opts.Log))
	app.Use(recover.New())

	origins := strings.TrimSpace(opts.AllowedOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: origins != "*",
		MaxAge:           300,
	}))
	return app
}

// NewErrorHandler último recurso para errores no manejados por los handlers.
// Los errores de Fiber 4xx (ruta inexistente, cuerpo demasiado grande) conservan su código;
// todo lo demás se registra y se responde como 500 opaco.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Success: false, Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().
			Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "INVALID_BODY"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "CLIENT_ERROR"
	}
}
