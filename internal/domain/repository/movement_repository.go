package repository

import "github.com/embalse/deposito-api/internal/domain/entity"

// MovementRepository define el puerto para el registro de movimientos internos.
// Solo inserción y lectura: los movimientos son auditoría inmutable.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByDepot lista los últimos movimientos cuyo origen pertenece al
	// depósito, ordenados por fecha descendente (depotID vacío = todos).
	ListByDepot(depotID string, limit int) ([]*entity.Movement, error)
}
