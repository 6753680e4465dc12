package repository

import "perfumaria/internal/domain/entity"

// InstallmentRepository define a porta de persistência para Installment.
// CreateBatch persiste o lote completo de parcelas de uma venda.
type InstallmentRepository interface {
	CreateBatch(installments []*entity.Installment) error
	GetByID(id string) (*entity.Installment, error)
	ListBySale(saleID string) ([]*entity.Installment, error)
	Update(installment *entity.Installment) error
	DeleteBySale(saleID string) error
}
