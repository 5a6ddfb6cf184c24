// seed_catalog importa el catálogo inicial desde el CSV que exporta la hoja de cálculo
// de la empresa y escribe products.json y categories.json en el directorio de datos.
//
// Uso: go run ./cmd/seed_catalog [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Columnas: nombre;categoria;descripcion;precio;destacado;imagenes;specs
// imagenes separadas por "|", specs como "clave=valor|clave=valor".
// Acepta UTF-8 o ISO-8859-1 (export de Excel en Windows).
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/infrastructure/filestore"
	"github.com/jhoicas/catalogo-industrial/pkg/config"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	items, err := parseCatalogCSV(decodeLatin1IfNeeded(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	registry := catalog.NewRegistry(catalog.DefaultCategories())
	productStore := filestore.NewProductStore(cfg.Data.ProductsPath(), log.Component("filestore"))
	categoryStore := filestore.NewCategoryStore(cfg.Data.CategoriesPath(), log.Component("filestore"))

	// ReplaceAll valida toda la lista: si una fila falla no se escribe nada.
	out, err := usecase.NewProductUseCase(productStore, registry).ReplaceAll(ctx, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Guardar productos: %v\n", err)
		os.Exit(1)
	}
	if err := categoryStore.SaveCategories(ctx, registry.All()); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar categorías: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Int("productos", out.Total).
		Int("categorias", registry.Count()).
		Str("products_file", productStore.Path()).
		Str("categories_file", categoryStore.Path()).
		Msg("catálogo importado")
}

// decodeLatin1IfNeeded convierte a UTF-8 los exports en ISO-8859-1.
func decodeLatin1IfNeeded(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

var csvColumns = []string{"nombre", "categoria", "descripcion", "precio", "destacado", "imagenes", "specs"}

func parseCatalogCSV(r io.Reader) ([]dto.ProductResponse, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV vacío")
		}
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns[:2] {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var items []dto.ProductResponse
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if field(rec, "nombre") == "" {
			continue
		}

		item := dto.ProductResponse{
			Name:        field(rec, "nombre"),
			Category:    strings.ToLower(field(rec, "categoria")),
			Description: field(rec, "descripcion"),
			Images:      splitList(field(rec, "imagenes")),
			Specs:       parseSpecs(field(rec, "specs")),
		}
		if p := field(rec, "precio"); p != "" {
			price, err := parsePrice(p)
			if err != nil {
				return nil, fmt.Errorf("línea %d: precio %q: %w", line, p, err)
			}
			item.ReferencePrice = &price
		}
		if d := field(rec, "destacado"); d != "" {
			item.Featured = parseFlag(d)
		}
		items = append(items, item)
	}
	return items, nil
}

// parsePrice acepta "1.250.000", "1250000" y "1250000,50".
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 || (strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 4) {
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(s)
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "si", "sí", "x":
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSpecs(s string) map[string]string {
	if s == "" {
		return nil
	}
	specs := make(map[string]string)
	for _, pair := range strings.Split(s, "|") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		specs[k] = strings.TrimSpace(v)
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}
