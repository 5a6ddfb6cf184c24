package filestore

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

// ProductStore implementa repository.ProductRepository sobre products.json.
type ProductStore struct {
	file *jsonFile[entity.Product]
}

// NewProductStore construye el store para la ruta indicada.
func NewProductStore(path string, log zerolog.Logger) *ProductStore {
	return &ProductStore{file: newJSONFile[entity.Product](path, log.With().Str("store", "products").Logger())}
}

// GetProducts lee el archivo completo; ante cualquier fallo devuelve una colección vacía.
func (s *ProductStore) GetProducts(_ context.Context) []entity.Product {
	return s.file.loadOrEmpty()
}

// SaveProducts reescribe el archivo con la colección dada.
func (s *ProductStore) SaveProducts(ctx context.Context, products []entity.Product) error {
	return s.file.replace(ctx, products)
}

// UpdateProducts aplica fn sobre la colección actual bajo el lock de escritura.
// Un archivo corrupto aborta la operación con domain.ErrCorruptData.
func (s *ProductStore) UpdateProducts(ctx context.Context, fn repository.ProductMutation) error {
	return s.file.update(ctx, fn)
}

// Path ruta del archivo respaldado.
func (s *ProductStore) Path() string { return s.file.path }

// Exists informa si el archivo ya fue creado.
func (s *ProductStore) Exists() bool { return s.file.exists() }

var _ repository.ProductRepository = (*ProductStore)(nil)
