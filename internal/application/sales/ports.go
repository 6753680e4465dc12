package sales

import (
	"context"

	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
)

// TxRunner executa o fluxo de criação/edição de venda dentro de uma transação:
// a venda, o ajuste de estoque e o lote de parcelas entram ou saem juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
	) error) error
}

// CarneGenerator gera o PDF do carnê de parcelas de uma venda.
type CarneGenerator interface {
	Generate(sale *entity.Sale, client *entity.Client, product *entity.Product, installments []*entity.Installment) ([]byte, error)
}
