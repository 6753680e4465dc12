package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest corpo de criação de venda. Os campos derivados (total,
// taxa, lucro, valor de parcela) nunca são aceitos: o motor recalcula tudo.
// FinalProductPrice é o preço efetivamente praticado quando há frete; se
// omitido, o preço unitário original é usado.
type CreateSaleRequest struct {
	Date              time.Time       `json:"date"`
	ClientID          string          `json:"clientId"`
	ProductID         string          `json:"productId"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Discount          decimal.Decimal `json:"discount"`
	DeliveryType      string          `json:"deliveryType,omitempty"`
	ShippingCost      decimal.Decimal `json:"shippingCost"`
	FinalProductPrice decimal.Decimal `json:"finalProductPrice"`
	PaymentMethod     string          `json:"paymentMethod"`
	Status            string          `json:"status"`
	NumInstallments   int             `json:"numInstallments,omitempty"`
	FirstDueDate      *time.Time      `json:"firstDueDate,omitempty"`
}

// UpdateSaleRequest corpo de atualização (substituição completa; derivados
// recalculados). O estoque não é reavaliado em edições.
type UpdateSaleRequest = CreateSaleRequest

// SaleResponse venda nas respostas, com todos os campos derivados.
type SaleResponse struct {
	ID                string          `json:"id"`
	Date              time.Time       `json:"date"`
	ClientID          string          `json:"clientId"`
	ProductID         string          `json:"productId"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Discount          decimal.Decimal `json:"discount"`
	DeliveryType      string          `json:"deliveryType,omitempty"`
	ShippingCost      decimal.Decimal `json:"shippingCost"`
	FinalProductPrice decimal.Decimal `json:"finalProductPrice"`
	AdjustedPrice     decimal.Decimal `json:"adjustedPrice"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	PaymentMethod     string          `json:"paymentMethod"`
	Fee               decimal.Decimal `json:"fee"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	Status            string          `json:"status"`
	NumInstallments   int             `json:"numInstallments,omitempty"`
	InstallmentValue  decimal.Decimal `json:"installmentValue"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// SaleListResponse lista paginada de vendas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SaleQuoteRequest simulação de venda: mesmos campos de entrada da criação,
// sem efeitos colaterais (nada é persistido, estoque não é tocado).
type SaleQuoteRequest struct {
	ProductID         string          `json:"productId"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Discount          decimal.Decimal `json:"discount"`
	ShippingCost      decimal.Decimal `json:"shippingCost"`
	FinalProductPrice decimal.Decimal `json:"finalProductPrice"`
	PaymentMethod     string          `json:"paymentMethod"`
	NumInstallments   int             `json:"numInstallments,omitempty"`
}

// SaleQuoteResponse resultado da simulação: o pipeline completo de preço,
// frete e comparação de lucro que o formulário recalcula a cada alteração.
type SaleQuoteResponse struct {
	ProductSubtotal       decimal.Decimal       `json:"productSubtotal"`
	TotalCharged          decimal.Decimal       `json:"totalCharged"`
	Fee                   decimal.Decimal       `json:"fee"`
	TotalCost             decimal.Decimal       `json:"totalCost"`
	NetProfit             decimal.Decimal       `json:"netProfit"`
	ProfitWithoutShipping decimal.Decimal       `json:"profitWithoutShipping"`
	AdjustedPrice         decimal.Decimal       `json:"adjustedPrice"`
	BelowSuggestedPrice   bool                  `json:"belowSuggestedPrice"`
	Comparison            *ProfitComparisonDTO  `json:"comparison,omitempty"`
	InstallmentValue      decimal.Decimal       `json:"installmentValue"`
}

// ProfitComparisonDTO comparação entre o lucro sem e com frete.
type ProfitComparisonDTO struct {
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange decimal.Decimal `json:"percentageChange"`
	IsLower          bool            `json:"isLower"`
	IsHigher         bool            `json:"isHigher"`
	IsSame           bool            `json:"isSame"`
}
