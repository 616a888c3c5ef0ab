package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.RackRepository = (*RackRepo)(nil)

// RackRepo implementación del puerto RackRepository sobre PostgreSQL
// (usable con pool o tx).
type RackRepo struct {
	q Querier
}

// NewRackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRackRepository(q Querier) *RackRepo {
	return &RackRepo{q: q}
}

// Create persiste un nuevo rack.
func (r *RackRepo) Create(rack *entity.Rack) error {
	query := `
		INSERT INTO racks (id, depot_id, code, rows, columns, depth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rack.ID, rack.DepotID, rack.Code, rack.Rows, rack.Columns, rack.Depth, rack.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rack: %w", err)
	}
	return nil
}

// GetByID obtiene un rack por ID; nil si no existe.
func (r *RackRepo) GetByID(id string) (*entity.Rack, error) {
	query := `
		SELECT id, depot_id, code, rows, columns, depth, created_at
		FROM racks WHERE id = $1`
	var rk entity.Rack
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rk.ID, &rk.DepotID, &rk.Code, &rk.Rows, &rk.Columns, &rk.Depth, &rk.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack: %w", err)
	}
	return &rk, nil
}

// ListByDepot lista los racks de un depósito ordenados por código.
func (r *RackRepo) ListByDepot(depotID string) ([]*entity.Rack, error) {
	query := `
		SELECT id, depot_id, code, rows, columns, depth, created_at
		FROM racks WHERE depot_id = $1 ORDER BY code ASC`
	rows, err := r.q.Query(context.Background(), query, depotID)
	if err != nil {
		return nil, fmt.Errorf("list racks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rack
	for rows.Next() {
		var rk entity.Rack
		if err := rows.Scan(&rk.ID, &rk.DepotID, &rk.Code, &rk.Rows, &rk.Columns, &rk.Depth, &rk.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rack: %w", err)
		}
		list = append(list, &rk)
	}
	return list, rows.Err()
}

// Delete elimina el rack; sus ubicaciones caen por FK ON DELETE CASCADE.
func (r *RackRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM racks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rack: %w", err)
	}
	return nil
}
