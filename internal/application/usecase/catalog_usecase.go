package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

// SiteInfo datos públicos del sitio usados por los documentos del catálogo.
type SiteInfo struct {
	BaseURL     string // sin "/" final
	CompanyName string
}

// CatalogUseCase genera los documentos derivados del catálogo: sitemap.xml y el PDF descargable.
type CatalogUseCase struct {
	products repository.ProductRepository
	registry *catalog.Registry
	sitemap  SitemapBuilder
	pdf      CatalogPDFGenerator
	site     SiteInfo
	now      func() time.Time
}

// NewCatalogUseCase construye el caso de uso inyectando sus dependencias.
func NewCatalogUseCase(
	products repository.ProductRepository,
	registry *catalog.Registry,
	sitemap SitemapBuilder,
	pdf CatalogPDFGenerator,
	site SiteInfo,
) *CatalogUseCase {
	return &CatalogUseCase{
		products: products,
		registry: registry,
		sitemap:  sitemap,
		pdf:      pdf,
		site:     site,
		now:      time.Now,
	}
}

// Sitemap construye sitemap.xml: portada, listado, una URL por categoría y una por producto.
func (uc *CatalogUseCase) Sitemap(ctx context.Context) ([]byte, error) {
	products := uc.products.GetProducts(ctx)
	base := uc.site.BaseURL

	var latest time.Time
	for _, p := range products {
		if p.UpdatedAt.After(latest) {
			latest = p.UpdatedAt
		}
	}

	urls := []SitemapURL{
		{Loc: base + "/", LastMod: latest, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: base + "/productos", LastMod: latest, ChangeFreq: "weekly", Priority: "0.9"},
	}
	for _, c := range uc.registry.All() {
		urls = append(urls, SitemapURL{
			Loc:        base + "/categorias/" + c.Slug,
			LastMod:    latestIn(products, c.Slug),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, p := range products {
		if p.Slug == "" {
			continue
		}
		urls = append(urls, SitemapURL{
			Loc:        base + "/productos/" + p.Slug,
			LastMod:    p.UpdatedAt,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	out, err := uc.sitemap.Build(urls)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	return out, nil
}

// CatalogPDF genera el catálogo en PDF. Con categorySlug vacío incluye todas las categorías
// del registro; los productos con categoría fuera del registro no se publican.
// Retorna domain.ErrNotFound si categorySlug no existe en el registro.
func (uc *CatalogUseCase) CatalogPDF(ctx context.Context, categorySlug string) ([]byte, string, error) {
	categories := uc.registry.All()
	if categorySlug != "" {
		c, ok := uc.registry.BySlug(categorySlug)
		if !ok {
			return nil, "", domain.ErrNotFound
		}
		categories = []entity.Category{c}
	}

	products := uc.products.GetProducts(ctx)
	sections := make([]CatalogSection, 0, len(categories))
	for _, c := range categories {
		section := CatalogSection{Category: c}
		for _, p := range products {
			if p.Category == c.Slug {
				section.Products = append(section.Products, p)
			}
		}
		sections = append(sections, section)
	}

	now := uc.now()
	pdfBytes, err := uc.pdf.GenerateCatalogPDF(ctx, CatalogPDFData{
		CompanyName: uc.site.CompanyName,
		SiteURL:     uc.site.BaseURL,
		GeneratedAt: now,
		Sections:    sections,
	})
	if err != nil {
		return nil, "", fmt.Errorf("catálogo pdf: %w", err)
	}

	scope := "completo"
	if categorySlug != "" {
		scope = categorySlug
	}
	filename := fmt.Sprintf("catalogo-%s-%s.pdf", scope, now.Format("20060102"))
	return pdfBytes, filename, nil
}

func latestIn(products []entity.Product, categorySlug string) time.Time {
	var t time.Time
	for _, p := range products {
		if p.Category == categorySlug && p.UpdatedAt.After(t) {
			t = p.UpdatedAt
		}
	}
	return t
}
