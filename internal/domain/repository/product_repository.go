package repository

import "perfumaria/internal/domain/entity"

// ProductRepository define a porta de persistência para Product (DIP).
// NextID gera o próximo ID sequencial com prefixo ("P001", "P002", ...).
// UpdateStock é a operação isolada de ajuste de estoque usada pela venda.
type ProductRepository interface {
	NextID() (string, error)
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int) error
	Delete(id string) error
}
