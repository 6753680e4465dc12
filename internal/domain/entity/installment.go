package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de parcela.
const (
	InstallmentStatusPendente = "Pendente"
	InstallmentStatusRecebida = "Recebida"
	InstallmentStatusAtrasada = "Atrasada"
)

// Installment representa uma parcela de "Pix Parcelado Conhecidos".
// Parcelas são criadas em lote na criação da venda; a soma dos valores do
// lote persistido é sempre igual ao total da venda (a última parcela absorve
// o resto de arredondamento).
type Installment struct {
	ID                string // "V001-P1", "V001-P2", ...
	SaleID            string
	InstallmentNumber int
	TotalInstallments int
	Value             decimal.Decimal
	DueDate           *time.Time
	PaymentDate       *time.Time
	Status            string // Pendente | Recebida | Atrasada
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
