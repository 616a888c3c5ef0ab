package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// PalletRepository define el puerto de persistencia para pallets.
type PalletRepository interface {
	Create(pallet *entity.Pallet) error
	GetByID(id string) (*entity.Pallet, error)
	// GetForUpdate bloquea la fila del pallet (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Pallet, error)
	// SetSlot actualiza la ubicación actual del pallet (nil = sin ubicación).
	SetSlot(id string, slotID *string) error
	// Deactivate marca el pallet inactivo, estampa egreso y limpia la ubicación.
	Deactivate(id string) error
	// Delete elimina el pallet físicamente (solo anulación de ingresos pendientes).
	Delete(id string) error
	// ListActiveByClientAndDepot lista pallets activos de un cliente residentes
	// en un depósito, ordenados por fecha de ingreso descendente.
	ListActiveByClientAndDepot(clientID, depotID string) ([]*entity.Pallet, error)
}
