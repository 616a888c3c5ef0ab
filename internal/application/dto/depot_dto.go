package dto

import "time"

// CreateDepotRequest entrada para crear un depósito.
type CreateDepotRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// UpdateDepotRequest entrada para actualizar un depósito.
type UpdateDepotRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// DepotResponse salida de un depósito. TotalCapacity es derivado.
type DepotResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	TotalCapacity int       `json:"total_capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateRackRequest entrada para crear un rack con su grilla de ubicaciones.
type CreateRackRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=50"`
	Rows    int    `json:"rows" validate:"required,min=1,max=10"`
	Columns int    `json:"columns" validate:"required,min=1,max=20"`
	Depth   int    `json:"depth" validate:"required,min=1,max=10"`
}

// RackResponse salida de un rack.
type RackResponse struct {
	ID      string `json:"id"`
	DepotID string `json:"depot_id"`
	Code    string `json:"code"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Depth   int    `json:"depth"`
	Slots   int    `json:"slots"`
}

// SlotResponse salida de una ubicación.
type SlotResponse struct {
	ID       string  `json:"id"`
	RackID   string  `json:"rack_id"`
	Code     string  `json:"code"`
	Row      int     `json:"row"`
	Column   int     `json:"column"`
	Depth    int     `json:"depth"`
	State    string  `json:"state"`
	PalletID *string `json:"pallet_id,omitempty"`
}

// OccupancyResponse ocupación de un depósito recalculada al momento.
type OccupancyResponse struct {
	Total      int `json:"total"`
	Occupied   int `json:"occupied"`
	Free       int `json:"free"`
	Percentage int `json:"percentage"`
}
