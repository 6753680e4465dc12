package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentResponse parcela nas respostas.
type InstallmentResponse struct {
	ID                string          `json:"id"`
	SaleID            string          `json:"saleId"`
	InstallmentNumber int             `json:"installmentNumber"`
	TotalInstallments int             `json:"totalInstallments"`
	Value             decimal.Decimal `json:"value"`
	DueDate           *time.Time      `json:"dueDate,omitempty"`
	PaymentDate       *time.Time      `json:"paymentDate,omitempty"`
	Status            string          `json:"status"`
}

// InstallmentListResponse parcelas de uma venda, na ordem de vencimento.
type InstallmentListResponse struct {
	SaleID string                `json:"saleId"`
	Items  []InstallmentResponse `json:"items"`
}

// ReceiveInstallmentRequest registro de recebimento de uma parcela.
// PaymentDate omitida -> data atual.
type ReceiveInstallmentRequest struct {
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

// UpdateInstallmentRequest ajuste pontual de uma parcela: vencimento e/ou
// status. Atrasada não é aceito — é derivado na leitura. Campos omitidos
// permanecem como estão.
type UpdateInstallmentRequest struct {
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}
