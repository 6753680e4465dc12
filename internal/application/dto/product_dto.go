package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest corpo de criação de produto. Margin não é aceita:
// é sempre derivada de compra/venda pelo motor de preços.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int             `json:"stock"`
	Supplier      string          `json:"supplier,omitempty"`
}

// UpdateProductRequest corpo de atualização (substituição completa do registro).
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int             `json:"stock"`
	Supplier      string          `json:"supplier,omitempty"`
}

// ProductResponse produto nas respostas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Margin        decimal.Decimal `json:"margin"`
	Stock         int             `json:"stock"`
	Supplier      string          `json:"supplier,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
