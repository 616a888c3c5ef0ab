package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	LegalName string `json:"legal_name" validate:"required,min=1,max=200"`
	TaxID     string `json:"tax_id" validate:"required,min=1,max=20"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	LegalName *string `json:"legal_name" validate:"omitempty,min=1,max=200"`
	TaxID     *string `json:"tax_id" validate:"omitempty,min=1,max=20"`
	Contact   *string `json:"contact"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	LegalName string    `json:"legal_name"`
	TaxID     string    `json:"tax_id"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
