package usecase

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/pkg/slug"
)

// ProductUseCase casos de uso del catálogo de productos.
// Toda escritura pasa por UpdateProducts para que la validación de unicidad
// y la escritura ocurran bajo el mismo lock.
type ProductUseCase struct {
	repo     repository.ProductRepository
	registry *catalog.Registry
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, registry *catalog.Registry) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// List lista productos del archivo aplicando los filtros. Nunca falla.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) *dto.ProductListResponse {
	all := uc.repo.GetProducts(ctx)
	items := make([]dto.ProductResponse, 0, len(all))
	for i := range all {
		p := &all[i]
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetBySlug obtiene un producto por slug o domain.ErrNotFound.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	for _, p := range uc.repo.GetProducts(ctx) {
		if p.Slug == s {
			return toProductResponse(&p), nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByID obtiene un producto por ID o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	for _, p := range uc.repo.GetProducts(ctx) {
		if p.ID == id {
			return toProductResponse(&p), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega un producto al final del archivo.
// El slug se deriva del nombre si no viene; debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !uc.registry.Has(in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	s, err := resolveSlug(in.Slug, name)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	product := entity.Product{
		ID:             uuid.New().String(),
		Name:           name,
		Slug:           s,
		Category:       in.Category,
		Description:    in.Description,
		Images:         nonNilImages(in.Images),
		Specs:          in.Specs,
		ReferencePrice: in.ReferencePrice,
		Featured:       in.Featured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validatePrice(product.ReferencePrice); err != nil {
		return nil, err
	}

	err = uc.repo.UpdateProducts(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for _, p := range products {
			if p.Slug == product.Slug {
				return nil, fmt.Errorf("%w: slug %q ya existe", domain.ErrDuplicate, product.Slug)
			}
		}
		return append(products, product), nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(&product), nil
}

// Update aplica una actualización parcial. El slug no cambia al renombrar salvo que se envíe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Category != nil && !uc.registry.Has(*in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Slug != nil && !slug.Valid(*in.Slug) {
		return nil, fmt.Errorf("%w: slug inválido %q", domain.ErrInvalidInput, *in.Slug)
	}
	if err := validatePrice(in.ReferencePrice); err != nil {
		return nil, err
	}

	var updated entity.Product
	err := uc.repo.UpdateProducts(ctx, func(products []entity.Product) ([]entity.Product, error) {
		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		p := products[idx]
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Slug != nil {
			p.Slug = *in.Slug
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Images != nil {
			p.Images = in.Images
		}
		if in.Specs != nil {
			p.Specs = in.Specs
		}
		if in.ClearPrice {
			p.ReferencePrice = nil
		} else if in.ReferencePrice != nil {
			p.ReferencePrice = in.ReferencePrice
		}
		if in.Featured != nil {
			p.Featured = *in.Featured
		}
		for i := range products {
			if i != idx && products[i].Slug == p.Slug {
				return nil, fmt.Errorf("%w: slug %q ya existe", domain.ErrDuplicate, p.Slug)
			}
		}
		p.UpdatedAt = uc.now()
		products[idx] = p
		updated = p
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(&updated), nil
}

// Delete elimina un producto por ID conservando el orden del resto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.UpdateProducts(ctx, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// ReplaceAll reemplaza el archivo completo con la lista enviada por el panel.
// Valida toda la lista antes de escribir: o se guarda completa o no se guarda nada.
// Los productos cuyo ID ya existe conservan created_at; updated_at solo cambia si el contenido cambió.
func (uc *ProductUseCase) ReplaceAll(ctx context.Context, in []dto.ProductResponse) (*dto.ProductListResponse, error) {
	now := uc.now()
	products := make([]entity.Product, 0, len(in))
	seenID := make(map[string]bool, len(in))
	seenSlug := make(map[string]bool, len(in))

	for i, item := range in {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: producto %d sin name", domain.ErrInvalidInput, i)
		}
		if !uc.registry.Has(item.Category) {
			return nil, fmt.Errorf("%w: producto %d con categoría desconocida %q", domain.ErrInvalidInput, i, item.Category)
		}
		s, err := resolveSlug(item.Slug, name)
		if err != nil {
			return nil, err
		}
		if err := validatePrice(item.ReferencePrice); err != nil {
			return nil, err
		}
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		if seenID[id] {
			return nil, fmt.Errorf("%w: id %q repetido", domain.ErrDuplicate, id)
		}
		if seenSlug[s] {
			return nil, fmt.Errorf("%w: slug %q repetido", domain.ErrDuplicate, s)
		}
		seenID[id], seenSlug[s] = true, true

		products = append(products, entity.Product{
			ID:             id,
			Name:           name,
			Slug:           s,
			Category:       item.Category,
			Description:    item.Description,
			Images:         nonNilImages(item.Images),
			Specs:          item.Specs,
			ReferencePrice: item.ReferencePrice,
			Featured:       item.Featured,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      now,
		})
	}

	err := uc.repo.UpdateProducts(ctx, func(stored []entity.Product) ([]entity.Product, error) {
		byID := make(map[string]*entity.Product, len(stored))
		for i := range stored {
			byID[stored[i].ID] = &stored[i]
		}
		for i := range products {
			p := &products[i]
			prev, ok := byID[p.ID]
			if !ok {
				if p.CreatedAt.IsZero() {
					p.CreatedAt = now
				}
				continue
			}
			p.CreatedAt = prev.CreatedAt
			if sameContent(prev, p) && !prev.UpdatedAt.IsZero() {
				p.UpdatedAt = prev.UpdatedAt
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *toProductResponse(&products[i]))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// sameContent compara los campos editables (sin ID ni fechas).
func sameContent(a, b *entity.Product) bool {
	if a.Name != b.Name || a.Slug != b.Slug || a.Category != b.Category ||
		a.Description != b.Description || a.Featured != b.Featured {
		return false
	}
	if !slices.Equal(nonNilImages(a.Images), nonNilImages(b.Images)) || !maps.Equal(a.Specs, b.Specs) {
		return false
	}
	switch {
	case a.ReferencePrice == nil && b.ReferencePrice == nil:
		return true
	case a.ReferencePrice == nil || b.ReferencePrice == nil:
		return false
	default:
		return a.ReferencePrice.Equal(*b.ReferencePrice)
	}
}

func resolveSlug(given, name string) (string, error) {
	if given == "" {
		s := slug.Make(name)
		if s == "" {
			return "", fmt.Errorf("%w: no se puede derivar un slug de %q", domain.ErrInvalidInput, name)
		}
		return s, nil
	}
	if !slug.Valid(given) {
		return "", fmt.Errorf("%w: slug inválido %q", domain.ErrInvalidInput, given)
	}
	return given, nil
}

func validatePrice(p *decimal.Decimal) error {
	if p == nil {
		return nil
	}
	if p.IsNegative() {
		return fmt.Errorf("%w: reference_price no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func nonNilImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Category:       p.Category,
		Description:    p.Description,
		Images:         nonNilImages(p.Images),
		Specs:          p.Specs,
		ReferencePrice: p.ReferencePrice,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
