package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// DepotRepository define el puerto de persistencia para depósitos (DIP).
// UpdateCapacity se usa dentro de transacciones al crear/eliminar racks.
type DepotRepository interface {
	Create(depot *entity.Depot) error
	GetByID(id string) (*entity.Depot, error)
	Update(depot *entity.Depot) error
	List() ([]*entity.Depot, error)
	// UpdateCapacity fija la capacidad derivada (COUNT de ubicaciones).
	UpdateCapacity(id string, capacity int) error
}
