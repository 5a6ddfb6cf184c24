package repository

import (
	"context"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// CategoryMutation análogo a ProductMutation para el archivo de categorías.
type CategoryMutation func(categories []entity.Category) ([]entity.Category, error)

// CategoryRepository define el puerto de persistencia para el archivo de categorías.
type CategoryRepository interface {
	GetCategories(ctx context.Context) []entity.Category
	SaveCategories(ctx context.Context, categories []entity.Category) error
	UpdateCategories(ctx context.Context, fn CategoryMutation) error
}
