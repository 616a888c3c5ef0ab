package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de completitud de un pallet.
const (
	PalletComplete   = "COMPLETO"
	PalletIncomplete = "INCOMPLETO"
)

// Pallet representa una unidad de carga de un producto/lote/cantidad,
// opcionalmente residente en una ubicación. Se crea al registrar un remito de
// ingreso y se desactiva (soft delete) al aprobar el egreso; si el ingreso se
// anula antes de aprobarse, se elimina físicamente.
type Pallet struct {
	ID           string
	ProductID    string
	Lot          string
	Quantity     decimal.Decimal
	Completeness string
	Active       bool
	SlotID       *string
	IngressAt    time.Time
	EgressAt     *time.Time
}
