package entity

// Category representa una línea de equipos (compresores, generadores, ...).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"` // hex, ej. "#00467F"
}
