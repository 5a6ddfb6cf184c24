// Package catalog contiene el registro estático de categorías del sitio.
// El registro se construye una sola vez al arrancar y no se modifica en ejecución;
// el archivo categories.json es independiente y nunca altera este listado.
package catalog

import (
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// DefaultCategories devuelve las líneas de equipos publicadas en el sitio.
// Cada llamada devuelve una copia nueva.
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{
			ID:          "1",
			Name:        "Compresores de aire",
			Slug:        "compresores",
			Description: "Compresores de tornillo y pistón para uso industrial continuo.",
			Icon:        "air-compressor",
			Color:       "#00467F",
		},
		{
			ID:          "2",
			Name:        "Generadores eléctricos",
			Slug:        "generadores",
			Description: "Plantas eléctricas diésel y a gas, abiertas e insonorizadas.",
			Icon:        "generator",
			Color:       "#E07A1F",
		},
		{
			ID:          "3",
			Name:        "Equipos de soldadura",
			Slug:        "soldadura",
			Description: "Soldadores MIG, TIG y de electrodo para taller y campo.",
			Icon:        "welding",
			Color:       "#5B6770",
		},
	}
}

// Registry listado inmutable de categorías con búsqueda por slug.
type Registry struct {
	categories []entity.Category
	bySlug     map[string]int
}

// NewRegistry construye el registro a partir de una lista explícita.
// Las entradas con slug repetido se ignoran (gana la primera).
func NewRegistry(categories []entity.Category) *Registry {
	r := &Registry{
		categories: make([]entity.Category, 0, len(categories)),
		bySlug:     make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if c.Slug == "" {
			continue
		}
		if _, dup := r.bySlug[c.Slug]; dup {
			continue
		}
		r.bySlug[c.Slug] = len(r.categories)
		r.categories = append(r.categories, c)
	}
	return r
}

// Count número de categorías registradas.
func (r *Registry) Count() int {
	return len(r.categories)
}

// All devuelve una copia del listado en el orden de registro.
func (r *Registry) All() []entity.Category {
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// BySlug busca una categoría. El bool indica si existe.
func (r *Registry) BySlug(slug string) (entity.Category, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return entity.Category{}, false
	}
	return r.categories[i], true
}

// Has informa si el slug pertenece al registro.
func (r *Registry) Has(slug string) bool {
	_, ok := r.bySlug[slug]
	return ok
}
