package entity

import "time"

// Client representa um cliente da revenda.
// CPF é armazenado apenas com dígitos (11) e validado pelos dígitos
// verificadores antes de persistir; a máscara é aplicada só na exibição.
type Client struct {
	ID               string // "C001", "C002", ...
	Name             string
	CPF              string
	Phone            string
	Address          string
	RegistrationDate time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
