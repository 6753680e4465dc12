package usecase

import (
	"time"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/pricing"
	"perfumaria/internal/domain/repository"
	"perfumaria/internal/domain/validation"
)

// ProductUseCase casos de uso CRUD para produtos. A margem é recalculada em
// toda criação/edição; o estoque só é alterado aqui por edição explícita —
// o decremento automático acontece no fluxo de venda.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um novo produto com ID sequencial e margem derivada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		Supplier:      in.Supplier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if result := validation.ValidateProduct(product); !result.IsValid {
		return nil, domain.NewValidationError(result.Errors)
	}

	id, err := uc.repo.NextID()
	if err != nil {
		return nil, err
	}
	product.ID = id
	product.Margin = pricing.Margin(product.PurchasePrice, product.SalePrice)

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID busca um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update substitui o registro completo e recalcula a margem.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	product.Stock = in.Stock
	product.Supplier = in.Supplier

	if result := validation.ValidateProduct(product); !result.IsValid {
		return nil, domain.NewValidationError(result.Errors)
	}
	product.Margin = pricing.Margin(product.PurchasePrice, product.SalePrice)
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete remove um produto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Margin:        p.Margin,
		Stock:         p.Stock,
		Supplier:      p.Supplier,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
