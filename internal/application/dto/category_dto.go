package dto

// CategoryListItem elemento del listado público de categorías.
// Omite description y active a propósito (contrato público).
type CategoryListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
}

// AdminCategoryListItem variante admin del listado: incluye description y active.
type AdminCategoryListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
}

// CategoryDetail detalle de una categoría con sus productos activos incrustados.
type CategoryDetail struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	DateCreated string            `json:"date_created"`
	DateUpdated string            `json:"date_updated"`
	Products    []ProductListItem `json:"products"`
}

// CategoryPage página de categorías públicas, con envoltorio count/next/previous/results.
type CategoryPage struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []CategoryListItem `json:"results"`
}

// AdminCategoryPage página de la variante admin (incluye categorías inactivas).
type AdminCategoryPage struct {
	Count    int                     `json:"count"`
	Next     *string                 `json:"next"`
	Previous *string                 `json:"previous"`
	Results  []AdminCategoryListItem `json:"results"`
}

// DisableCategoryResponse resultado de la desactivación en cascada de una categoría.
type DisableCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
}
