package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de remito.
const (
	RemitoIngreso = "INGRESO" // mercadería que entra al depósito
	RemitoEgreso  = "EGRESO"  // mercadería que sale del depósito
)

// Orígenes de remito.
const (
	RemitoOriginSAP    = "SAP" // generado desde el sistema externo
	RemitoOriginManual = "MANUAL"
)

// Estados del remito. PENDIENTE es el inicial; APROBADO y ANULADO son terminales.
const (
	RemitoPending  = "PENDIENTE"
	RemitoApproved = "APROBADO"
	RemitoVoided   = "ANULADO"
)

// Remito representa el documento de ingreso o egreso de mercadería de un
// cliente en un depósito. Máquina de estados PENDIENTE → APROBADO | ANULADO;
// cada transición dispara, en la misma transacción, los efectos sobre
// ubicaciones y pallets de todas sus líneas.
type Remito struct {
	ID          string
	Type        string
	Origin      string
	Number      string
	State       string
	Notes       string
	ClientID    string
	DepotID     string
	OperatorID  string  // quien registró el remito
	EncargadoID *string // quien lo aprobó (nil mientras esté pendiente)
	Date        time.Time
	Lines       []*RemitoLine
}

// RemitoLine es una línea del remito: producto, lote y cantidad, más el pallet
// materializado (siempre presente en ingresos; en egresos referencia un pallet
// ya residente). LineNumber es 1-based y preserva el orden del documento.
type RemitoLine struct {
	ID         string
	RemitoID   string
	LineNumber int
	ProductID  string
	Lot        string
	Quantity   decimal.Decimal
	PalletID   *string
}
