package dto

// ArticleItem elemento de artículo incrustado en el detalle de un producto.
// Product es el ID del producto propietario. El precio es interno al catálogo
// y no forma parte del contrato de respuesta.
type ArticleItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
	Product     string `json:"product"`
}
