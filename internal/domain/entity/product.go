package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um perfume do catálogo de revenda.
// Margin é sempre derivada de PurchasePrice/SalePrice pelo motor de cálculo,
// nunca editada de forma independente. Stock é decrementado na criação de
// vendas com status Pago ou Entregue.
type Product struct {
	ID            string          // "P001", "P002", ...
	Name          string
	PurchasePrice decimal.Decimal // custo de aquisição
	SalePrice     decimal.Decimal // preço de venda sugerido
	Margin        decimal.Decimal // (venda - compra) / compra * 100, derivada
	Stock         int
	Supplier      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
