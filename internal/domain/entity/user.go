package entity

import "time"

// User usuário da aplicação (operação single-tenant: a dona da revenda).
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
