package catalog

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// DisableUseCase aplica la desactivación en cascada: la entidad raíz y todos
// sus descendientes por propiedad (categoría → productos → artículos) pasan a
// inactivos dentro de una sola transacción. Re-desactivar un árbol ya
// inactivo es un no-op que siempre responde éxito.
type DisableUseCase struct {
	txRunner TxRunner
}

// NewDisableUseCase construye el caso de uso.
func NewDisableUseCase(txRunner TxRunner) *DisableUseCase {
	return &DisableUseCase{txRunner: txRunner}
}

// DisableCategory desactiva la categoría, todos sus productos y los artículos
// de esos productos. Devuelve domain.ErrNotFound si la categoría no existe.
func (uc *DisableUseCase) DisableCategory(ctx context.Context, id string) (*dto.DisableCategoryResponse, error) {
	var out *dto.DisableCategoryResponse
	err := uc.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		articleRepo repository.ArticleRepository,
	) error {
		category, err := categoryRepo.Disable(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		// Los artículos primero: el subquery sobre products no depende del flag,
		// pero así cada paso deja el árbol tan desactivado como el anterior.
		if err := articleRepo.DisableByCategory(id); err != nil {
			return err
		}
		if err := productRepo.DisableByCategory(id); err != nil {
			return err
		}
		out = &dto.DisableCategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Active:      category.Active,
			DateCreated: dto.FormatTimestamp(category.DateCreated),
			DateUpdated: dto.FormatTimestamp(category.DateUpdated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DisableProduct desactiva el producto y sus artículos. No toca productos
// hermanos ni la categoría padre. Devuelve domain.ErrNotFound si no existe.
func (uc *DisableUseCase) DisableProduct(ctx context.Context, id string) (*dto.DisableProductResponse, error) {
	var out *dto.DisableProductResponse
	err := uc.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		articleRepo repository.ArticleRepository,
	) error {
		product, err := productRepo.Disable(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := articleRepo.DisableByProduct(id); err != nil {
			return err
		}
		out = &dto.DisableProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Category:    product.CategoryID,
			Active:      product.Active,
			DateCreated: dto.FormatTimestamp(product.DateCreated),
			DateUpdated: dto.FormatTimestamp(product.DateUpdated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
