package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de lectura para categorías. El catálogo es de
// solo lectura vía API: las altas llegan por fixtures/seed y la única
// mutación soportada es la desactivación en cascada (paquete catalog).
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	ecoscore    ports.EcoscoreService
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	ecoscore ports.EcoscoreService,
) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, ecoscore: ecoscore}
}

// List lista las categorías activas en orden de creación (contrato público:
// sin description ni active). Next/Previous los completa la capa HTTP.
func (uc *CategoryUseCase) List(page dto.PageRequest) (*dto.CategoryPage, error) {
	count, err := uc.repo.CountActive()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActive(page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryListItem{
			ID:          c.ID,
			Name:        c.Name,
			DateCreated: dto.FormatTimestamp(c.DateCreated),
			DateUpdated: dto.FormatTimestamp(c.DateUpdated),
		})
	}
	return &dto.CategoryPage{Count: count, Results: items}, nil
}

// AdminList lista todas las categorías, activas e inactivas, con description y active.
func (uc *CategoryUseCase) AdminList(page dto.PageRequest) (*dto.AdminCategoryPage, error) {
	count, err := uc.repo.CountAll()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAll(page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminCategoryListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.AdminCategoryListItem{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Active:      c.Active,
			DateCreated: dto.FormatTimestamp(c.DateCreated),
			DateUpdated: dto.FormatTimestamp(c.DateUpdated),
		})
	}
	return &dto.AdminCategoryPage{Count: count, Results: items}, nil
}

// GetByID obtiene una categoría por ID sin importar su flag active, con sus
// productos activos incrustados (enriquecidos con eco-score). nil, nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryDetail, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	products, err := uc.productRepo.ListActiveByCategory(id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDetail{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		DateCreated: dto.FormatTimestamp(category.DateCreated),
		DateUpdated: dto.FormatTimestamp(category.DateUpdated),
		Products:    toProductListItems(ctx, uc.ecoscore, products),
	}, nil
}

// toProductListItems mapea productos al contrato de listado, consultando el
// eco-score una vez por producto. Las consultas al store ya terminaron: la
// llamada externa no retiene ningún recurso de la base.
func toProductListItems(ctx context.Context, eco ports.EcoscoreService, products []*entity.Product) []dto.ProductListItem {
	items := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			DateCreated: dto.FormatTimestamp(p.DateCreated),
			DateUpdated: dto.FormatTimestamp(p.DateUpdated),
			Category:    p.CategoryID,
			Ecoscore:    eco.FetchGrade(ctx, p.ID),
		})
	}
	return items
}
