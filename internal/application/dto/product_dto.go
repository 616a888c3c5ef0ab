package dto

import "time"

// CreateProductRequest entrada para crear un producto de un cliente.
type CreateProductRequest struct {
	ClientID    string `json:"client_id" validate:"required,uuid"`
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"required,min=1,max=200"`
	UnitMeasure string `json:"unit_measure" validate:"required,min=1,max=20"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,min=1,max=200"`
	UnitMeasure *string `json:"unit_measure" validate:"omitempty,min=1,max=20"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	UnitMeasure string    `json:"unit_measure"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
