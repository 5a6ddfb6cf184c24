package filestore

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

// CategoryStore implementa repository.CategoryRepository sobre categories.json.
type CategoryStore struct {
	file *jsonFile[entity.Category]
}

// NewCategoryStore construye el store para la ruta indicada.
func NewCategoryStore(path string, log zerolog.Logger) *CategoryStore {
	return &CategoryStore{file: newJSONFile[entity.Category](path, log.With().Str("store", "categories").Logger())}
}

// GetCategories mismo contrato que ProductStore.GetProducts.
func (s *CategoryStore) GetCategories(_ context.Context) []entity.Category {
	return s.file.loadOrEmpty()
}

// SaveCategories reescribe el archivo con la colección dada.
func (s *CategoryStore) SaveCategories(ctx context.Context, categories []entity.Category) error {
	return s.file.replace(ctx, categories)
}

// UpdateCategories aplica fn bajo el lock de escritura.
func (s *CategoryStore) UpdateCategories(ctx context.Context, fn repository.CategoryMutation) error {
	return s.file.update(ctx, fn)
}

// Path ruta del archivo respaldado.
func (s *CategoryStore) Path() string { return s.file.path }

// Exists informa si el archivo ya fue creado.
func (s *CategoryStore) Exists() bool { return s.file.exists() }

var _ repository.CategoryRepository = (*CategoryStore)(nil)
