package http_test

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: mismo contrato que los adaptadores PostgreSQL, con
// orden de creación = orden de inserción.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories []*entity.Category
	products   []*entity.Product
	articles   []*entity.Article
}

// addCategory inserta una categoría con timestamps crecientes y devuelve su entidad.
func (s *memStore) addCategory(id, name, description string, active bool) *entity.Category {
	at := baseTime.Add(time.Duration(len(s.categories)+len(s.products)+len(s.articles)) * time.Second)
	c := &entity.Category{ID: id, Name: name, Description: description, Active: active, DateCreated: at, DateUpdated: at}
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) addProduct(id, categoryID, name string, active bool) *entity.Product {
	at := baseTime.Add(time.Duration(len(s.categories)+len(s.products)+len(s.articles)) * time.Second)
	p := &entity.Product{ID: id, CategoryID: categoryID, Name: name, Active: active, DateCreated: at, DateUpdated: at}
	s.products = append(s.products, p)
	return p
}

func (s *memStore) addArticle(id, productID, name string, active bool) *entity.Article {
	at := baseTime.Add(time.Duration(len(s.categories)+len(s.products)+len(s.articles)) * time.Second)
	a := &entity.Article{ID: id, ProductID: productID, Name: name, Active: active, DateCreated: at, DateUpdated: at}
	s.articles = append(s.articles, a)
	return a
}

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

// ── CategoryRepository ────────────────────────────────────────────────────────

type memCategoryRepo struct{ s *memStore }

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

func (r *memCategoryRepo) Create(category *entity.Category) error {
	r.s.categories = append(r.s.categories, category)
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) ListActive(limit, offset int) ([]*entity.Category, error) {
	var active []*entity.Category
	for _, c := range r.s.categories {
		if c.Active {
			active = append(active, c)
		}
	}
	return paginate(active, limit, offset), nil
}

func (r *memCategoryRepo) CountActive() (int, error) {
	n := 0
	for _, c := range r.s.categories {
		if c.Active {
			n++
		}
	}
	return n, nil
}

func (r *memCategoryRepo) ListAll(limit, offset int) ([]*entity.Category, error) {
	return paginate(r.s.categories, limit, offset), nil
}

func (r *memCategoryRepo) CountAll() (int, error) {
	return len(r.s.categories), nil
}

func (r *memCategoryRepo) Disable(id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			if c.Active {
				c.Active = false
				c.DateUpdated = c.DateUpdated.Add(time.Minute)
			}
			return c, nil
		}
	}
	return nil, nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(product *entity.Product) error {
	r.s.products = append(r.s.products, product)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListActive(categoryID string, limit, offset int) ([]*entity.Product, error) {
	var active []*entity.Product
	for _, p := range r.s.products {
		if p.Active && (categoryID == "" || p.CategoryID == categoryID) {
			active = append(active, p)
		}
	}
	return paginate(active, limit, offset), nil
}

func (r *memProductRepo) CountActive(categoryID string) (int, error) {
	n := 0
	for _, p := range r.s.products {
		if p.Active && (categoryID == "" || p.CategoryID == categoryID) {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	var active []*entity.Product
	for _, p := range r.s.products {
		if p.Active && p.CategoryID == categoryID {
			active = append(active, p)
		}
	}
	return active, nil
}

func (r *memProductRepo) Disable(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			if p.Active {
				p.Active = false
				p.DateUpdated = p.DateUpdated.Add(time.Minute)
			}
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) DisableByCategory(categoryID string) error {
	for _, p := range r.s.products {
		if p.CategoryID == categoryID && p.Active {
			p.Active = false
		}
	}
	return nil
}

// ── ArticleRepository ─────────────────────────────────────────────────────────

type memArticleRepo struct{ s *memStore }

var _ repository.ArticleRepository = (*memArticleRepo)(nil)

func (r *memArticleRepo) Create(article *entity.Article) error {
	r.s.articles = append(r.s.articles, article)
	return nil
}

func (r *memArticleRepo) ListActiveByProduct(productID string) ([]*entity.Article, error) {
	var active []*entity.Article
	for _, a := range r.s.articles {
		if a.Active && a.ProductID == productID {
			active = append(active, a)
		}
	}
	return active, nil
}

func (r *memArticleRepo) DisableByProduct(productID string) error {
	for _, a := range r.s.articles {
		if a.ProductID == productID && a.Active {
			a.Active = false
		}
	}
	return nil
}

func (r *memArticleRepo) DisableByCategory(categoryID string) error {
	owned := map[string]bool{}
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			owned[p.ID] = true
		}
	}
	for _, a := range r.s.articles {
		if owned[a.ProductID] && a.Active {
			a.Active = false
		}
	}
	return nil
}

// ── TxRunner y ecoscore ───────────────────────────────────────────────────────

// memTxRunner ejecuta el callback directamente contra el store en memoria.
// La atomicidad real la cubre el TxRunner de PostgreSQL; aquí solo interesa
// el flujo del caso de uso.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	articleRepo repository.ArticleRepository,
) error) error {
	return fn(&memCategoryRepo{r.s}, &memProductRepo{r.s}, &memArticleRepo{r.s})
}

// fixedEcoscore devuelve siempre el mismo grade (simula el servicio externo).
type fixedEcoscore struct{ grade string }

func (f fixedEcoscore) FetchGrade(ctx context.Context, productID string) string {
	if f.grade == "" {
		return ports.EcoscoreUnknown
	}
	return f.grade
}

// buildTestApp monta la aplicación Fiber completa (router real, usecases
// reales) sobre el store en memoria.
func buildTestApp(s *memStore, eco ports.EcoscoreService) *fiber.App {
	categoryRepo := &memCategoryRepo{s}
	productRepo := &memProductRepo{s}
	articleRepo := &memArticleRepo{s}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo, productRepo, eco),
		ProductUC:  usecase.NewProductUseCase(productRepo, articleRepo, eco),
		DisableUC:  catalog.NewDisableUseCase(&memTxRunner{s}),
	})
	return app
}
