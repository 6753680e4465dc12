package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"perfumaria/internal/domain/entity"
)

// SaleFilter filtros de listagem de vendas (dashboard e listas).
// Campos zero são ignorados.
type SaleFilter struct {
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	PaymentMethod string
	ProductID     string
	ClientID      string
}

// SaleRepository define a porta de persistência para Sale.
type SaleRepository interface {
	NextID() (string, error)
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	ListAll(filter SaleFilter) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error

	// GetRevenueAndCosts soma receita (total_value) e custos reais
	// (purchase_price*quantity + shipping_cost, via join com products) das
	// vendas no período. COALESCE para zero quando não há vendas.
	GetRevenueAndCosts(start, end time.Time) (revenue, costs decimal.Decimal, err error)
}
