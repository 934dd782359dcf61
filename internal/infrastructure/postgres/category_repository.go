package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría (solo rutas de seed/fixtures, no hay endpoint).
func (r *CategoryRepo) Create(category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	query := `
		INSERT INTO categories (id, name, description, active, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Active,
		category.DateCreated, category.DateUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID sin importar su flag active.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT id, name, description, active, date_created, date_updated
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Active, &c.DateCreated, &c.DateUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListActive lista categorías activas en orden de creación, con paginación.
func (r *CategoryRepo) ListActive(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, active, date_created, date_updated
		FROM categories WHERE active ORDER BY date_created, id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// CountActive cuenta las categorías activas.
func (r *CategoryRepo) CountActive() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories WHERE active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// ListAll lista todas las categorías, incluidas las inactivas (variante admin).
func (r *CategoryRepo) ListAll(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, active, date_created, date_updated
		FROM categories ORDER BY date_created, id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// CountAll cuenta todas las categorías.
func (r *CategoryRepo) CountAll() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Disable marca la categoría como inactiva y devuelve la fila resultante.
// El guard AND active evita tocar date_updated si ya estaba inactiva;
// en ese caso (o si el ID no existe) se resuelve con un GetByID.
func (r *CategoryRepo) Disable(id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		UPDATE categories SET active = false, date_updated = now()
		WHERE id = $1 AND active
		RETURNING id, name, description, active, date_created, date_updated`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Active, &c.DateCreated, &c.DateUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetByID(id)
		}
		return nil, fmt.Errorf("disable category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) list(query string, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.DateCreated, &c.DateUpdated); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
