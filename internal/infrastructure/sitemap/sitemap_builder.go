// Package sitemap serializa sitemap.xml (protocolo sitemaps.org 0.9).
package sitemap

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// NamespaceSitemap namespace del protocolo.
const NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

// maxURLs límite de entradas por archivo según el protocolo.
const maxURLs = 50000

// XMLBuilder implementa usecase.SitemapBuilder con etree.
type XMLBuilder struct{}

// NewXMLBuilder construye el builder.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

// Build genera el documento. Las URLs vacías se omiten; lastmod solo si no es cero.
func (b *XMLBuilder) Build(urls []usecase.SitemapURL) ([]byte, error) {
	if len(urls) > maxURLs {
		return nil, fmt.Errorf("sitemap: %d URLs excede el máximo de %d", len(urls), maxURLs)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", NamespaceSitemap)

	for _, u := range urls {
		if u.Loc == "" {
			continue
		}
		el := urlset.CreateElement("url")
		el.CreateElement("loc").SetText(u.Loc)
		if !u.LastMod.IsZero() {
			el.CreateElement("lastmod").SetText(u.LastMod.UTC().Format(time.DateOnly))
		}
		if u.ChangeFreq != "" {
			el.CreateElement("changefreq").SetText(u.ChangeFreq)
		}
		if u.Priority != "" {
			el.CreateElement("priority").SetText(u.Priority)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out, nil
}

var _ usecase.SitemapBuilder = (*XMLBuilder)(nil)
