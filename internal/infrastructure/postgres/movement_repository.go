package postgres

import (
	"context"
	"fmt"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Solo inserción y lectura: los movimientos son auditoría inmutable.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra un movimiento interno.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, pallet_id, from_slot_id, to_slot_id, operator_id, reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.PalletID, movement.FromSlotID, movement.ToSlotID,
		movement.OperatorID, movement.Reason, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByDepot lista los últimos movimientos cuyo origen pertenece al depósito,
// más recientes primero (depotID vacío = todos los depósitos).
func (r *MovementRepo) ListByDepot(depotID string, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.pallet_id, m.from_slot_id, m.to_slot_id, m.operator_id, m.reason, m.date
		FROM movements m
		JOIN slots s ON s.id = m.from_slot_id
		JOIN racks r ON r.id = s.rack_id
		WHERE ($1 = '' OR r.depot_id = $1)
		ORDER BY m.date DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, depotID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.PalletID, &m.FromSlotID, &m.ToSlotID,
			&m.OperatorID, &m.Reason, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
