package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// RackRepository define el puerto de persistencia para racks.
type RackRepository interface {
	Create(rack *entity.Rack) error
	GetByID(id string) (*entity.Rack, error)
	ListByDepot(depotID string) ([]*entity.Rack, error)
	// Delete elimina el rack y sus ubicaciones (cascada).
	Delete(id string) error
}
