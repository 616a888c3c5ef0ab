package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngresoLineRequest línea de un remito de ingreso.
type IngresoLineRequest struct {
	ProductID    string          `json:"product_id" validate:"required,uuid"`
	Lot          string          `json:"lot" validate:"required,min=1,max=100"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	SlotID       string          `json:"slot_id" validate:"required,uuid"`
	Completeness string          `json:"completeness" validate:"required,oneof=COMPLETO INCOMPLETO"`
}

// CreateIngresoRequest entrada para registrar un remito de ingreso.
type CreateIngresoRequest struct {
	ClientID string               `json:"client_id" validate:"required,uuid"`
	DepotID  string               `json:"depot_id" validate:"required,uuid"`
	Origin   string               `json:"origin" validate:"required,oneof=SAP MANUAL"`
	Number   string               `json:"number" validate:"required,min=1,max=50"`
	Notes    string               `json:"notes"`
	Lines    []IngresoLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateEgresoRequest entrada para registrar un remito de egreso sobre
// pallets ya residentes.
type CreateEgresoRequest struct {
	ClientID  string   `json:"client_id" validate:"required,uuid"`
	DepotID   string   `json:"depot_id" validate:"required,uuid"`
	Origin    string   `json:"origin" validate:"required,oneof=SAP MANUAL"`
	Number    string   `json:"number" validate:"required,min=1,max=50"`
	Notes     string   `json:"notes"`
	PalletIDs []string `json:"pallet_ids" validate:"required,min=1"`
}

// RemitoLineResponse línea de remito en respuestas.
type RemitoLineResponse struct {
	ID         string          `json:"id"`
	LineNumber int             `json:"line_number"`
	ProductID  string          `json:"product_id"`
	Lot        string          `json:"lot"`
	Quantity   decimal.Decimal `json:"quantity"`
	PalletID   *string         `json:"pallet_id,omitempty"`
}

// RemitoResponse salida de un remito con sus líneas.
type RemitoResponse struct {
	ID          string               `json:"id"`
	Type        string               `json:"type"`
	Origin      string               `json:"origin"`
	Number      string               `json:"number"`
	State       string               `json:"state"`
	Notes       string               `json:"notes,omitempty"`
	ClientID    string               `json:"client_id"`
	DepotID     string               `json:"depot_id"`
	OperatorID  string               `json:"operator_id"`
	EncargadoID *string              `json:"encargado_id,omitempty"`
	Date        time.Time            `json:"date"`
	Lines       []RemitoLineResponse `json:"lines"`
}

// PalletResponse salida de un pallet.
type PalletResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Lot          string          `json:"lot"`
	Quantity     decimal.Decimal `json:"quantity"`
	Completeness string          `json:"completeness"`
	Active       bool            `json:"active"`
	SlotID       *string         `json:"slot_id,omitempty"`
	IngressAt    time.Time       `json:"ingress_at"`
	EgressAt     *time.Time      `json:"egress_at,omitempty"`
}
