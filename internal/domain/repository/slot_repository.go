package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// SlotRepository define el puerto de persistencia para ubicaciones.
// Usado dentro de transacciones para garantizar consistencia ubicación↔pallet.
type SlotRepository interface {
	// BulkCreate inserta las ubicaciones generadas para un rack nuevo.
	BulkCreate(slots []*entity.Slot) error
	GetByID(id string) (*entity.Slot, error)
	// GetForUpdate bloquea la fila de la ubicación (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Slot, error)
	// SetState actualiza estado y referencia al pallet juntos (palletID nil = sin pallet).
	SetState(id, state string, palletID *string) error
	// ListFreeByDepot lista las LIBRE de un depósito ordenadas por código de
	// rack, fila, columna y profundidad ascendente (determinístico).
	ListFreeByDepot(depotID string) ([]*entity.Slot, error)
	ListByRack(rackID string) ([]*entity.Slot, error)
	// CountByRackAndState cuenta ubicaciones de un rack en un estado dado.
	CountByRackAndState(rackID, state string) (int, error)
	// CountByDepot cuenta todas las ubicaciones del depósito (capacidad derivada).
	CountByDepot(depotID string) (int, error)
	// CountByDepotAndState cuenta ubicaciones del depósito por estado.
	CountByDepotAndState(depotID, state string) (int, error)
}
