package entity

// Estados de una ubicación (slot).
const (
	SlotFree     = "LIBRE"
	SlotReserved = "RESERVADA"
	SlotOccupied = "OCUPADA"
)

// Slot representa una ubicación direccionable dentro de un rack, identificada
// por la terna (fila, columna, profundidad) y el código derivado
// "{rackCode}-F{fila}-C{col}-P{prof}".
//
// PalletID y Pallet.SlotID son una referencia mutua exclusiva: se mantienen
// juntas dentro de cada transacción. PalletID es no-nil si y solo si el estado
// no es LIBRE.
type Slot struct {
	ID       string
	RackID   string
	Row      int
	Column   int
	Depth    int
	Code     string
	State    string
	PalletID *string
}

// IsFree indica si la ubicación está libre.
func (s *Slot) IsFree() bool { return s.State == SlotFree }
