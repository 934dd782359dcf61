package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo (solo rutas de seed/fixtures, no hay endpoint).
// Price viaja como NUMERIC vía el codec shopspring registrado en el pool.
func (r *ArticleRepo) Create(article *entity.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	query := `
		INSERT INTO articles (id, product_id, name, price, active, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.ProductID, article.Name, article.Price,
		article.Active, article.DateCreated, article.DateUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// ListActiveByProduct lista los artículos activos de un producto en orden de creación.
func (r *ArticleRepo) ListActiveByProduct(productID string) ([]*entity.Article, error) {
	query := `
		SELECT id, product_id, name, price, active, date_created, date_updated
		FROM articles WHERE active AND product_id = $1 ORDER BY date_created, id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Name, &a.Price, &a.Active, &a.DateCreated, &a.DateUpdated); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// DisableByProduct desactiva todos los artículos activos de un producto.
func (r *ArticleRepo) DisableByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE articles SET active = false, date_updated = now() WHERE product_id = $1 AND active`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("disable articles by product: %w", err)
	}
	return nil
}

// DisableByCategory desactiva los artículos activos de todos los productos de
// una categoría. El subquery no filtra por products.active: el flag del padre
// no determina el del hijo fuera de la operación de cascada.
func (r *ArticleRepo) DisableByCategory(categoryID string) error {
	query := `
		UPDATE articles SET active = false, date_updated = now()
		WHERE active AND product_id IN (SELECT id FROM products WHERE category_id = $1)`
	_, err := r.q.Exec(context.Background(), query, categoryID)
	if err != nil {
		return fmt.Errorf("disable articles by category: %w", err)
	}
	return nil
}
