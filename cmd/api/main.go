package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/catalogo-industrial/docs"
	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/catalogo-industrial/internal/infrastructure/pdf"
	infrasitemap "github.com/jhoicas/catalogo-industrial/internal/infrastructure/sitemap"
	httpRouter "github.com/jhoicas/catalogo-industrial/internal/interfaces/http"
	"github.com/jhoicas/catalogo-industrial/pkg/config"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// @title           Catálogo Industrial API
// @version         1.0
// @description     Catálogo de productos y panel de administración del sitio.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	if !cfg.Admin.HasSecret() {
		log.Warn().Msg("ADMIN_PASSWORD no configurado: el login de admin siempre fallará")
	}

	// Registro estático de categorías: se construye aquí y se inyecta.
	registry := catalog.NewRegistry(catalog.DefaultCategories())

	productStore := filestore.NewProductStore(cfg.Data.ProductsPath(), log.Component("filestore"))
	categoryStore := filestore.NewCategoryStore(cfg.Data.CategoriesPath(), log.Component("filestore"))

	adminGate := auth.NewAdminGate(auth.GateConfig{
		Password:       cfg.Admin.Password,
		PasswordHash:   cfg.Admin.PasswordHash,
		SessionSecret:  cfg.Session.Secret,
		SessionIssuer:  cfg.Session.Issuer,
		SessionMinutes: cfg.Session.Expiration,
	}, log.Zerolog())

	productUC := usecase.NewProductUseCase(productStore, registry)
	categoryUC := usecase.NewCategoryUseCase(registry, categoryStore)
	catalogUC := usecase.NewCatalogUseCase(
		productStore, registry,
		infrasitemap.NewXMLBuilder(),
		infrapdf.NewMarotoCatalogGenerator(),
		usecase.SiteInfo{BaseURL: cfg.Site.BaseURL, CompanyName: cfg.Site.CompanyName},
	)
	envCheckUC := usecase.NewEnvCheckUseCase(usecase.EnvCheckInput{
		AdminPassword:     cfg.Admin.Password,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		SessionSecret:     cfg.Session.Secret,
		DataDir:           cfg.Data.Dir,
		SiteBaseURL:       cfg.Site.BaseURL,
	}, productStore, categoryStore)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:           cfg.App.Name,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Log:            log.Component("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Catálogo Industrial API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		CatalogUC:  catalogUC,
		EnvCheckUC: envCheckUC,
		AdminGate:  adminGate,
		SessionCookie: httpRouter.SessionCookieConfig{
			Name:   httpRouter.DefaultSessionCookie,
			Secure: cfg.Session.CookieSecure,
		},
		Development: cfg.App.IsDevelopment(),
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
