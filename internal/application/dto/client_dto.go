package dto

import "time"

// CreateClientRequest corpo de criação de cliente. CPF aceito com ou sem
// máscara; é normalizado para 11 dígitos antes da validação do checksum.
type CreateClientRequest struct {
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest corpo de atualização (substituição completa do registro).
type UpdateClientRequest struct {
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientResponse cliente nas respostas, com CPF e telefone já formatados
// para exibição.
type ClientResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CPF              string    `json:"cpf"`
	CPFFormatted     string    `json:"cpfFormatted"`
	Phone            string    `json:"phone"`
	PhoneFormatted   string    `json:"phoneFormatted"`
	Address          string    `json:"address"`
	RegistrationDate time.Time `json:"registrationDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
