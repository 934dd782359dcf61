package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para productos.
type ProductUseCase struct {
	repo        repository.ProductRepository
	articleRepo repository.ArticleRepository
	ecoscore    ports.EcoscoreService
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	articleRepo repository.ArticleRepository,
	ecoscore ports.EcoscoreService,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, articleRepo: articleRepo, ecoscore: ecoscore}
}

// List lista productos activos en orden de creación, con filtro exacto
// opcional por categoría. Un categoryID sin coincidencias devuelve una página
// vacía con count 0, no un error.
func (uc *ProductUseCase) List(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.ProductPage, error) {
	count, err := uc.repo.CountActive(categoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActive(categoryID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.ProductPage{
		Count:   count,
		Results: toProductListItems(ctx, uc.ecoscore, list),
	}, nil
}

// GetByID obtiene un producto por ID sin importar su flag active, con sus
// artículos activos incrustados y el eco-score del servicio externo.
// nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductDetail, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	articles, err := uc.articleRepo.ListActiveByProduct(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ArticleItem{
			ID:          a.ID,
			Name:        a.Name,
			DateCreated: dto.FormatTimestamp(a.DateCreated),
			DateUpdated: dto.FormatTimestamp(a.DateUpdated),
			Product:     a.ProductID,
		})
	}
	return &dto.ProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		DateCreated: dto.FormatTimestamp(product.DateCreated),
		DateUpdated: dto.FormatTimestamp(product.DateUpdated),
		Category:    product.CategoryID,
		Articles:    items,
		Ecoscore:    uc.ecoscore.FetchGrade(ctx, product.ID),
	}, nil
}
