package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda.
const (
	SaleStatusPendente = "Pendente"
	SaleStatusPago     = "Pago"
	SaleStatusEntregue = "Entregue"
)

// Sale representa uma venda de produto.
//
// TotalValue, Fee, NetProfit e InstallmentValue são sempre recalculados pelo
// motor de preços a partir dos demais campos — nunca aceitos do cliente HTTP.
// AdjustedPrice é a sugestão de preço que preserva o lucro quando há frete;
// FinalProductPrice é o preço efetivamente praticado (editável, pode ficar
// abaixo da sugestão — o sistema sinaliza, não bloqueia).
type Sale struct {
	ID                string // "V001", "V002", ...
	Date              time.Time
	ClientID          string
	ProductID         string
	Quantity          int
	UnitPrice         decimal.Decimal
	Discount          decimal.Decimal
	DeliveryType      string
	ShippingCost      decimal.Decimal
	FinalProductPrice decimal.Decimal
	AdjustedPrice     decimal.Decimal
	TotalValue        decimal.Decimal
	PaymentMethod     string
	Fee               decimal.Decimal
	NetProfit         decimal.Decimal
	Status            string // Pendente | Pago | Entregue
	NumInstallments   int
	InstallmentValue  decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
