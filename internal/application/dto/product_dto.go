package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductFilter filtros del listado público.
type ProductFilter struct {
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
}

// CreateProductRequest entrada del formulario de admin para crear un producto.
type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=200"`
	Slug           string            `json:"slug"` // opcional; se deriva de name
	Category       string            `json:"category" validate:"required"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Specs          map[string]string `json:"specs"`
	ReferencePrice *decimal.Decimal  `json:"reference_price"`
	Featured       bool              `json:"featured"`
}

// UpdateProductRequest actualización parcial; los campos nil no se tocan.
type UpdateProductRequest struct {
	Name           *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Slug           *string           `json:"slug"`
	Category       *string           `json:"category"`
	Description    *string           `json:"description"`
	Images         []string          `json:"images"`
	Specs          map[string]string `json:"specs"`
	ReferencePrice *decimal.Decimal  `json:"reference_price"`
	ClearPrice     bool              `json:"clear_reference_price"`
	Featured       *bool             `json:"featured"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Specs          map[string]string `json:"specs"`
	ReferencePrice *decimal.Decimal  `json:"reference_price,omitempty"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ReplaceProductsRequest guardado masivo desde el panel (reemplaza el archivo completo).
// Products nil significa que la clave no vino; solo `"products":[]` vacía el archivo.
type ReplaceProductsRequest struct {
	Products *[]ProductResponse `json:"products"`
}
