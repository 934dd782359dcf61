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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto (solo rutas de seed/fixtures, no hay endpoint).
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, category_id, name, description, active, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.Active, product.DateCreated, product.DateUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID sin importar su flag active.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT id, category_id, name, description, active, date_created, date_updated
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Active, &p.DateCreated, &p.DateUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListActive lista productos activos en orden de creación, con filtro exacto
// opcional por categoría y paginación. Un category_id sin coincidencias
// produce simplemente cero filas.
func (r *ProductRepo) ListActive(categoryID string, limit, offset int) ([]*entity.Product, error) {
	filter, ok := categoryFilter(categoryID)
	if !ok {
		return nil, nil
	}
	query := `
		SELECT id, category_id, name, description, active, date_created, date_updated
		FROM products
		WHERE active AND ($1::uuid IS NULL OR category_id = $1)
		ORDER BY date_created, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// CountActive cuenta productos activos, con el mismo filtro opcional que ListActive.
func (r *ProductRepo) CountActive(categoryID string) (int, error) {
	filter, ok := categoryFilter(categoryID)
	if !ok {
		return 0, nil
	}
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE active AND ($1::uuid IS NULL OR category_id = $1)`,
		filter,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// ListActiveByCategory lista los productos activos de una categoría, sin paginar.
func (r *ProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, name, description, active, date_created, date_updated
		FROM products WHERE active AND category_id = $1 ORDER BY date_created, id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return scanProducts(rows)
}

// Disable marca el producto como inactivo y devuelve la fila resultante.
// Idempotente: si ya estaba inactivo no toca date_updated.
func (r *ProductRepo) Disable(id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		UPDATE products SET active = false, date_updated = now()
		WHERE id = $1 AND active
		RETURNING id, category_id, name, description, active, date_created, date_updated`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Active, &p.DateCreated, &p.DateUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetByID(id)
		}
		return nil, fmt.Errorf("disable product: %w", err)
	}
	return &p, nil
}

// DisableByCategory desactiva todos los productos activos de una categoría.
func (r *ProductRepo) DisableByCategory(categoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, date_updated = now() WHERE category_id = $1 AND active`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("disable products by category: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Active, &p.DateCreated, &p.DateUpdated); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
