package dto

// ProductListItem elemento del listado de productos. Category es el ID de la
// categoría propietaria; Ecoscore viene del servicio externo (o el sentinel
// de fallback si la consulta falló).
type ProductListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
	Category    string `json:"category"`
	Ecoscore    string `json:"ecoscore"`
}

// ProductDetail detalle de un producto con sus artículos activos incrustados.
type ProductDetail struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	DateCreated string        `json:"date_created"`
	DateUpdated string        `json:"date_updated"`
	Category    string        `json:"category"`
	Articles    []ArticleItem `json:"articles"`
	Ecoscore    string        `json:"ecoscore"`
}

// ProductPage página de productos con envoltorio count/next/previous/results.
type ProductPage struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []ProductListItem `json:"results"`
}

// DisableProductResponse resultado de la desactivación en cascada de un producto.
type DisableProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
}
