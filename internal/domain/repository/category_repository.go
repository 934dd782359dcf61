package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los listados van en orden de creación (date_created, id ascendente).
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByID devuelve la categoría sin importar su flag active; nil, nil si no existe.
	GetByID(id string) (*entity.Category, error)
	ListActive(limit, offset int) ([]*entity.Category, error)
	CountActive() (int, error)
	// ListAll incluye categorías inactivas (variante admin).
	ListAll(limit, offset int) ([]*entity.Category, error)
	CountAll() (int, error)
	// Disable marca la categoría como inactiva y devuelve la fila resultante.
	// Idempotente: si ya estaba inactiva no modifica date_updated. nil, nil si no existe.
	Disable(id string) (*entity.Category, error)
}
