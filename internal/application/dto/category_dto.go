package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}

// SaveCategoriesRequest reemplaza el archivo de categorías.
// Categories nil significa que la clave no vino.
type SaveCategoriesRequest struct {
	Categories *[]CategoryResponse `json:"categories"`
}
