package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

var errDiskFull = errors.New("no space left on device")

// memProductRepo repositorio en memoria con el mismo contrato que el store de archivos.
type memProductRepo struct {
	mu       sync.Mutex
	items    []entity.Product
	saveErr  error
	saveHits int
}

func (r *memProductRepo) GetProducts(_ context.Context) []entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Product{}, r.items...)
}

func (r *memProductRepo) SaveProducts(_ context.Context, products []entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(products)
}

func (r *memProductRepo) UpdateProducts(_ context.Context, fn repository.ProductMutation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := fn(append([]entity.Product{}, r.items...))
	if err != nil {
		return err
	}
	return r.saveLocked(next)
}

func (r *memProductRepo) saveLocked(products []entity.Product) error {
	r.saveHits++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items = append([]entity.Product{}, products...)
	return nil
}

type memCategoryRepo struct {
	items   []entity.Category
	saveErr error
}

func (r *memCategoryRepo) GetCategories(_ context.Context) []entity.Category {
	return append([]entity.Category{}, r.items...)
}

func (r *memCategoryRepo) SaveCategories(_ context.Context, categories []entity.Category) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items = append([]entity.Category{}, categories...)
	return nil
}

func (r *memCategoryRepo) UpdateCategories(ctx context.Context, fn repository.CategoryMutation) error {
	next, err := fn(r.GetCategories(ctx))
	if err != nil {
		return err
	}
	return r.SaveCategories(ctx, next)
}

type fakeProbe struct {
	path   string
	exists bool
}

func (p fakeProbe) Path() string { return p.path }
func (p fakeProbe) Exists() bool { return p.exists }
