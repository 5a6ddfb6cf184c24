package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// SitemapURL entrada de sitemap.xml.
type SitemapURL struct {
	Loc        string
	LastMod    time.Time // cero = se omite
	ChangeFreq string
	Priority   string
}

// SitemapBuilder serializa las URLs del sitio (implementación: infrastructure/sitemap).
type SitemapBuilder interface {
	Build(urls []SitemapURL) ([]byte, error)
}

// CatalogSection una categoría con sus productos, en el orden del archivo.
type CatalogSection struct {
	Category entity.Category
	Products []entity.Product
}

// CatalogPDFData todo lo que necesita el generador del catálogo descargable.
type CatalogPDFData struct {
	CompanyName string
	SiteURL     string
	GeneratedAt time.Time
	Sections    []CatalogSection
}

// CatalogPDFGenerator genera el PDF (implementación: infrastructure/pdf).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, data CatalogPDFData) ([]byte, error)
}

// FileProbe lo implementan los stores de archivo; permite revisar el entorno sin leerlos.
type FileProbe interface {
	Path() string
	Exists() bool
}
