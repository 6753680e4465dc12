package repository

import "perfumaria/internal/domain/entity"

// ClientRepository define a porta de persistência para Client.
type ClientRepository interface {
	NextID() (string, error)
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByCPF(cpf string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
