package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(article *entity.Article) error
	// ListActiveByProduct lista los artículos activos de un producto en orden de creación.
	ListActiveByProduct(productID string) ([]*entity.Article, error)
	// DisableByProduct desactiva todos los artículos activos de un producto.
	DisableByProduct(productID string) error
	// DisableByCategory desactiva los artículos activos de todos los productos de una categoría.
	DisableByCategory(categoryID string) error
}
