package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.SlotRepository = (*SlotRepo)(nil)

// SlotRepo implementación del puerto SlotRepository sobre PostgreSQL
// (usable con pool o tx).
type SlotRepo struct {
	q Querier
}

// NewSlotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSlotRepository(q Querier) *SlotRepo {
	return &SlotRepo{q: q}
}

const slotColumns = `id, rack_id, "row", "column", depth, code, state, pallet_id`

// BulkCreate inserta las ubicaciones de un rack nuevo con COPY.
func (r *SlotRepo) BulkCreate(slots []*entity.Slot) error {
	copier, ok := r.q.(interface {
		CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	})
	if !ok {
		return r.bulkInsert(slots)
	}
	rows := make([][]any, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, []any{s.ID, s.RackID, s.Row, s.Column, s.Depth, s.Code, s.State})
	}
	_, err := copier.CopyFrom(context.Background(),
		pgx.Identifier{"slots"},
		[]string{"id", "rack_id", "row", "column", "depth", "code", "state"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy slots: %w", err)
	}
	return nil
}

// bulkInsert fallback con INSERT fila a fila (Querier sin CopyFrom).
func (r *SlotRepo) bulkInsert(slots []*entity.Slot) error {
	query := `
		INSERT INTO slots (id, rack_id, "row", "column", depth, code, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, s := range slots {
		if _, err := r.q.Exec(context.Background(), query,
			s.ID, s.RackID, s.Row, s.Column, s.Depth, s.Code, s.State); err != nil {
			return fmt.Errorf("insert slot %s: %w", s.Code, err)
		}
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *SlotRepo) GetByID(id string) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la ubicación y bloquea la fila (SELECT FOR UPDATE).
func (r *SlotRepo) GetForUpdate(id string) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// SetState actualiza estado y referencia al pallet en la misma sentencia para
// mantener el acuerdo ubicación↔pallet.
func (r *SlotRepo) SetState(id, state string, palletID *string) error {
	query := `UPDATE slots SET state = $2, pallet_id = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, state, palletID)
	if err != nil {
		return fmt.Errorf("set slot state: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set slot state: ubicación %s inexistente", id)
	}
	return nil
}

// ListFreeByDepot lista las LIBRE del depósito en orden determinístico:
// código de rack, fila, columna, profundidad ascendente.
func (r *SlotRepo) ListFreeByDepot(depotID string) ([]*entity.Slot, error) {
	query := `
		SELECT s.id, s.rack_id, s."row", s."column", s.depth, s.code, s.state, s.pallet_id
		FROM slots s
		JOIN racks r ON r.id = s.rack_id
		WHERE r.depot_id = $1 AND s.state = $2
		ORDER BY r.code ASC, s."row" ASC, s."column" ASC, s.depth ASC`
	return r.list(query, depotID, entity.SlotFree)
}

// ListByRack lista las ubicaciones de un rack en orden de grilla.
func (r *SlotRepo) ListByRack(rackID string) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots WHERE rack_id = $1
		ORDER BY "row" ASC, "column" ASC, depth ASC`
	return r.list(query, rackID)
}

// CountByRackAndState cuenta ubicaciones de un rack en un estado.
func (r *SlotRepo) CountByRackAndState(rackID, state string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM slots WHERE rack_id = $1 AND state = $2`, rackID, state).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count slots by rack: %w", err)
	}
	return n, nil
}

// CountByDepot cuenta todas las ubicaciones del depósito (capacidad derivada).
func (r *SlotRepo) CountByDepot(depotID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM slots s
		JOIN racks r ON r.id = s.rack_id
		WHERE r.depot_id = $1`, depotID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count slots by depot: %w", err)
	}
	return n, nil
}

// CountByDepotAndState cuenta ubicaciones del depósito por estado.
func (r *SlotRepo) CountByDepotAndState(depotID, state string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM slots s
		JOIN racks r ON r.id = s.rack_id
		WHERE r.depot_id = $1 AND s.state = $2`, depotID, state).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count slots by depot and state: %w", err)
	}
	return n, nil
}

func (r *SlotRepo) scanOne(row pgx.Row) (*entity.Slot, error) {
	var s entity.Slot
	err := row.Scan(&s.ID, &s.RackID, &s.Row, &s.Column, &s.Depth, &s.Code, &s.State, &s.PalletID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &s, nil
}

func (r *SlotRepo) list(query string, args ...any) ([]*entity.Slot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Slot
	for rows.Next() {
		var s entity.Slot
		if err := rows.Scan(&s.ID, &s.RackID, &s.Row, &s.Column, &s.Depth, &s.Code, &s.State, &s.PalletID); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
