// Package pdf implementa el catálogo descargable de equipos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + "Catálogo de equipos"  │  Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA (color de la línea) + descripción                 │
//	│    Producto: nombre, descripción, ficha técnica, precio ref. │
//	│    ...                                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: URL del sitio + QR                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(ctx context.Context, data usecase.CatalogPDFData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de equipos", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range data.Sections {
		m.AddRows(categoryRows(section.Category)...)
		if len(section.Products) == 0 {
			m.AddRows(row.New(8).Add(col.New(12).Add(
				text.New("Sin equipos publicados en esta línea.", props.Text{
					Size: 8, Top: 2, Left: 2, Color: colorGray,
				}),
			)))
			continue
		}
		for _, p := range section.Products {
			m.AddRows(productRows(p)...)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y fecha de generación (der).
func headerRow(data usecase.CatalogPDFData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(data.CompanyName, "Catálogo"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de equipos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Actualizado: "+data.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// categoryRows: título de la línea con su color y descripción.
func categoryRows(c entity.Category) []core.Row {
	color := hexColor(c.Color, colorPrimary)
	rows := []core.Row{
		row.New(4),
		row.New(8).Add(col.New(12).Add(
			text.New(strings.ToUpper(c.Name), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: color, Top: 1,
			}),
		)),
	}
	if c.Description != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(c.Description, props.Text{Size: 8, Color: colorGray, Top: 0.5}),
		)))
	}
	rows = append(rows, line.NewRow(1, props.Line{Color: color, Thickness: 0.3}))
	return rows
}

// productRows: nombre + precio de referencia, descripción y ficha técnica ordenada por clave.
func productRows(p entity.Product) []core.Row {
	price := "Precio a consultar"
	if p.ReferencePrice != nil {
		price = "Desde $" + formatMoney(p.ReferencePrice.StringFixed(0))
	}
	rows := []core.Row{
		row.New(7).Add(
			col.New(8).Add(text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1.5, Left: 2,
			})),
			col.New(4).Add(text.New(price, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1.5, Color: colorPrimary,
			})),
		),
	}
	if p.Description != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(p.Description, props.Text{Size: 8, Top: 0.5, Left: 2, Right: 2}),
		)))
	}
	keys := make([]string, 0, len(p.Specs))
	for k := range p.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, row.New(4.5).Add(
			col.New(4).Add(text.New(k+":", props.Text{
				Style: fontstyle.Bold, Size: 7.5, Left: 4,
			})),
			col.New(8).Add(text.New(p.Specs[k], props.Text{Size: 7.5})),
		))
	}
	rows = append(rows, row.New(3))
	return rows
}

// footerRow: URL del sitio y QR hacia él.
func footerRow(data usecase.CatalogPDFData) core.Row {
	if data.SiteURL == "" {
		return row.New(8).Add(col.New(12).Add(
			text.New("Precios de referencia sujetos a cambio sin previo aviso.", props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(data.SiteURL, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Cotice en línea: "+data.SiteURL, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 8, Left: 3, Color: colorPrimary,
			}),
			text.New("Precios de referencia sujetos a cambio sin previo aviso.", props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// hexColor convierte "#RRGGBB" a props.Color; cualquier otro formato usa fallback.
func hexColor(s string, fallback *props.Color) *props.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return &props.Color{Red: int(v >> 16 & 0xFF), Green: int(v >> 8 & 0xFF), Blue: int(v & 0xFF)}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)
