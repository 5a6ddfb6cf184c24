package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// DefaultSessionCookie nombre de la cookie de sesión del panel.
const DefaultSessionCookie = "admin_session"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	CatalogUC     *usecase.CatalogUseCase
	EnvCheckUC    *usecase.EnvCheckUseCase
	AdminGate     *auth.AdminGate
	SessionCookie SessionCookieConfig
	Development   bool
	ServiceName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.SessionCookie.Name == "" {
		deps.SessionCookie.Name = DefaultSessionCookie
	}

	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	envHandler := NewEnvHandler(deps.EnvCheckUC, deps.Development)
	adminAuthHandler := NewAdminAuthHandler(deps.AdminGate, deps.SessionCookie)

	app.Get("/health", Health(deps.ServiceName))
	app.Get("/sitemap.xml", catalogHandler.Sitemap)

	api := app.Group("/api")

	// Catálogo (público)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:slug", categoryHandler.GetBySlug)
	api.Get("/products", productHandler.List)
	api.Get("/products/:slug", productHandler.GetBySlug)
	api.Get("/catalog.pdf", catalogHandler.CatalogPDF)

	// Diagnóstico (403 fuera de desarrollo)
	api.Get("/env-check", envHandler.Check)

	// Admin (público: login/logout y conteo de categorías)
	admin := api.Group("/admin")
	admin.Post("/login", adminAuthHandler.Login)
	admin.Post("/logout", adminAuthHandler.Logout)
	admin.Get("/categories/count", categoryHandler.Count)

	// Admin protegido (requiere sesión)
	protected := admin.Group("/", RequireAdmin(deps.AdminGate, deps.SessionCookie.Name))
	protected.Get("/session", adminAuthHandler.Session)

	products := protected.Group("/products")
	products.Get("/", productHandler.AdminList)
	products.Post("/", productHandler.Create)
	products.Put("/", productHandler.ReplaceAll)
	products.Get("/:id", productHandler.AdminGet)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.ListStored)
	categories.Put("/", categoryHandler.SaveStored)
}
