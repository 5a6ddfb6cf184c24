package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/pkg/slug"
)

// CategoryUseCase expone el registro estático y el archivo editable de categorías.
// El conteo y la validación de productos usan siempre el registro, nunca el archivo.
type CategoryUseCase struct {
	registry *catalog.Registry
	repo     repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(registry *catalog.Registry, repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{registry: registry, repo: repo}
}

// Count número de categorías del registro.
func (uc *CategoryUseCase) Count() int {
	return uc.registry.Count()
}

// ListRegistry categorías publicadas.
func (uc *CategoryUseCase) ListRegistry() *dto.CategoryListResponse {
	return toCategoryList(uc.registry.All())
}

// GetBySlug busca en el registro; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetBySlug(s string) (*dto.CategoryResponse, error) {
	c, ok := uc.registry.BySlug(s)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// ListStored contenido actual de categories.json (vacío si no existe o está dañado).
func (uc *CategoryUseCase) ListStored(ctx context.Context) *dto.CategoryListResponse {
	return toCategoryList(uc.repo.GetCategories(ctx))
}

// SaveStored reemplaza categories.json. Cada entrada requiere id, name y slug; los slugs son únicos.
func (uc *CategoryUseCase) SaveStored(ctx context.Context, in []dto.CategoryResponse) (*dto.CategoryListResponse, error) {
	categories := make([]entity.Category, 0, len(in))
	seen := make(map[string]bool, len(in))
	for i, c := range in {
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("%w: categoría %d requiere id y name", domain.ErrInvalidInput, i)
		}
		if c.Slug == "" {
			c.Slug = slug.Make(c.Name)
		}
		if !slug.Valid(c.Slug) {
			return nil, fmt.Errorf("%w: slug inválido %q", domain.ErrInvalidInput, c.Slug)
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("%w: slug %q repetido", domain.ErrDuplicate, c.Slug)
		}
		seen[c.Slug] = true
		categories = append(categories, entity.Category{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Icon:        c.Icon,
			Color:       c.Color,
		})
	}
	if err := uc.repo.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return toCategoryList(categories), nil
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
	}
}

func toCategoryList(list []entity.Category) *dto.CategoryListResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Total: len(items)}
}
