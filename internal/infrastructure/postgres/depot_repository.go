package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.DepotRepository = (*DepotRepo)(nil)

// DepotRepo implementación del puerto DepotRepository sobre PostgreSQL
// (usable con pool o tx).
type DepotRepo struct {
	q Querier
}

// NewDepotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepotRepository(q Querier) *DepotRepo {
	return &DepotRepo{q: q}
}

// Create persiste un nuevo depósito.
func (r *DepotRepo) Create(depot *entity.Depot) error {
	query := `
		INSERT INTO depots (id, name, address, total_capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		depot.ID, depot.Name, depot.Address, depot.TotalCapacity,
		depot.CreatedAt, depot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert depot: %w", err)
	}
	return nil
}

// GetByID obtiene un depósito por ID; nil si no existe.
func (r *DepotRepo) GetByID(id string) (*entity.Depot, error) {
	query := `
		SELECT id, name, address, total_capacity, created_at, updated_at
		FROM depots WHERE id = $1`
	var d entity.Depot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Address, &d.TotalCapacity, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get depot: %w", err)
	}
	return &d, nil
}

// Update actualiza nombre y dirección de un depósito.
func (r *DepotRepo) Update(depot *entity.Depot) error {
	query := `
		UPDATE depots SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		depot.ID, depot.Name, depot.Address, depot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update depot: %w", err)
	}
	return nil
}

// List lista los depósitos ordenados por nombre.
func (r *DepotRepo) List() ([]*entity.Depot, error) {
	query := `
		SELECT id, name, address, total_capacity, created_at, updated_at
		FROM depots ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list depots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Depot
	for rows.Next() {
		var d entity.Depot
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.TotalCapacity, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan depot: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateCapacity fija la capacidad derivada del depósito.
func (r *DepotRepo) UpdateCapacity(id string, capacity int) error {
	query := `UPDATE depots SET total_capacity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, capacity)
	if err != nil {
		return fmt.Errorf("update depot capacity: %w", err)
	}
	return nil
}
