package sales

import (
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/repository"
)

// CarneUseCase monta o carnê de parcelas de uma venda em PDF.
type CarneUseCase struct {
	sales        repository.SaleRepository
	clients      repository.ClientRepository
	products     repository.ProductRepository
	installments repository.InstallmentRepository
	generator    CarneGenerator
}

// NewCarneUseCase constrói o caso de uso.
func NewCarneUseCase(
	sales repository.SaleRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	installments repository.InstallmentRepository,
	generator CarneGenerator,
) *CarneUseCase {
	return &CarneUseCase{
		sales:        sales,
		clients:      clients,
		products:     products,
		installments: installments,
		generator:    generator,
	}
}

// Generate devolve os bytes do PDF do carnê. Vendas sem parcelas não têm
// carnê (ErrNotFound).
func (uc *CarneUseCase) Generate(saleID string) ([]byte, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	installments, err := uc.installments.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	if len(installments) == 0 {
		return nil, domain.ErrNotFound
	}

	client, err := uc.clients.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(sale.ProductID)
	if err != nil {
		return nil, err
	}

	return uc.generator.Generate(sale, client, product, installments)
}
