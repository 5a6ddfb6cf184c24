package repository

import (
	"context"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// ProductMutation recibe la colección actual y devuelve la colección a persistir.
// Si devuelve error, el archivo no se modifica.
type ProductMutation func(products []entity.Product) ([]entity.Product, error)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La colección completa se lee y se reescribe de una vez.
type ProductRepository interface {
	// GetProducts nunca falla: ante un error de lectura devuelve una colección vacía.
	GetProducts(ctx context.Context) []entity.Product
	SaveProducts(ctx context.Context, products []entity.Product) error
	UpdateProducts(ctx context.Context, fn ProductMutation) error
}
