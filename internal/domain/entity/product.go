package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un equipo del catálogo público.
// Category referencia el slug de una categoría del registro estático.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Specs          map[string]string `json:"specs,omitempty"` // ficha técnica: "Potencia" -> "15 HP"
	ReferencePrice *decimal.Decimal  `json:"reference_price,omitempty"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
