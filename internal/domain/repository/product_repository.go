package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve el producto sin importar su flag active; nil, nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// ListActive lista productos activos en orden de creación, con filtro exacto
	// opcional por categoría (categoryID vacío = sin filtro).
	ListActive(categoryID string, limit, offset int) ([]*entity.Product, error)
	CountActive(categoryID string) (int, error)
	// ListActiveByCategory lista los productos activos de una categoría, sin paginar
	// (para incrustar en el detalle de la categoría).
	ListActiveByCategory(categoryID string) ([]*entity.Product, error)
	// Disable marca el producto como inactivo y devuelve la fila resultante.
	// Idempotente. nil, nil si no existe.
	Disable(id string) (*entity.Product, error)
	// DisableByCategory desactiva todos los productos activos de una categoría.
	DisableByCategory(categoryID string) error
}
