package usecase

import (
	"time"

	"perfumaria/internal/application/dto"
	"perfumaria/internal/domain"
	"perfumaria/internal/domain/entity"
	"perfumaria/internal/domain/repository"
	"perfumaria/internal/domain/validation"
	"perfumaria/pkg/brdoc"
)

// ClientUseCase casos de uso CRUD para clientes. O CPF é normalizado para
// dígitos antes da validação e da checagem de duplicidade.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um novo cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	client := &entity.Client{
		Name:             in.Name,
		CPF:              brdoc.Digits(in.CPF),
		Phone:            brdoc.Digits(in.Phone),
		Address:          in.Address,
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if result := validation.ValidateClient(client); !result.IsValid {
		return nil, domain.NewValidationError(result.Errors)
	}

	existing, err := uc.repo.GetByCPF(client.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	id, err := uc.repo.NextID()
	if err != nil {
		return nil, err
	}
	client.ID = id

	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID busca um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(page dto.PageRequest) (*dto.ClientListResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update substitui o registro completo do cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	newCPF := brdoc.Digits(in.CPF)
	if newCPF != client.CPF {
		existing, err := uc.repo.GetByCPF(newCPF)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}

	client.Name = in.Name
	client.CPF = newCPF
	client.Phone = brdoc.Digits(in.Phone)
	client.Address = in.Address

	if result := validation.ValidateClient(client); !result.IsValid {
		return nil, domain.NewValidationError(result.Errors)
	}
	client.UpdatedAt = time.Now()

	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove um cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		CPF:              c.CPF,
		CPFFormatted:     brdoc.FormatCPF(c.CPF),
		Phone:            c.Phone,
		PhoneFormatted:   brdoc.FormatPhone(c.Phone),
		Address:          c.Address,
		RegistrationDate: c.RegistrationDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
