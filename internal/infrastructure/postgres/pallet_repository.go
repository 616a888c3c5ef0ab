package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.PalletRepository = (*PalletRepo)(nil)

// PalletRepo implementación del puerto PalletRepository sobre PostgreSQL
// (usable con pool o tx).
type PalletRepo struct {
	q Querier
}

// NewPalletRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPalletRepository(q Querier) *PalletRepo {
	return &PalletRepo{q: q}
}

const palletColumns = `id, product_id, lot, quantity, completeness, active, slot_id, ingress_at, egress_at`

// Create persiste un pallet nuevo.
func (r *PalletRepo) Create(pallet *entity.Pallet) error {
	query := `
		INSERT INTO pallets (id, product_id, lot, quantity, completeness, active, slot_id, ingress_at, egress_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pallet.ID, pallet.ProductID, pallet.Lot, pallet.Quantity,
		pallet.Completeness, pallet.Active, pallet.SlotID, pallet.IngressAt, pallet.EgressAt,
	)
	if err != nil {
		return fmt.Errorf("insert pallet: %w", err)
	}
	return nil
}

// GetByID obtiene un pallet por ID; nil si no existe.
func (r *PalletRepo) GetByID(id string) (*entity.Pallet, error) {
	query := `SELECT ` + palletColumns + ` FROM pallets WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el pallet y bloquea la fila (SELECT FOR UPDATE).
func (r *PalletRepo) GetForUpdate(id string) (*entity.Pallet, error) {
	query := `SELECT ` + palletColumns + ` FROM pallets WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// SetSlot actualiza la ubicación actual del pallet.
func (r *PalletRepo) SetSlot(id string, slotID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pallets SET slot_id = $2 WHERE id = $1`, id, slotID)
	if err != nil {
		return fmt.Errorf("set pallet slot: %w", err)
	}
	return nil
}

// Deactivate marca el pallet inactivo, estampa el egreso y limpia la ubicación.
func (r *PalletRepo) Deactivate(id string) error {
	query := `
		UPDATE pallets SET active = false, egress_at = now(), slot_id = NULL
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate pallet: %w", err)
	}
	return nil
}

// Delete elimina el pallet físicamente (anulación de ingresos pendientes).
func (r *PalletRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pallet: %w", err)
	}
	return nil
}

// ListActiveByClientAndDepot lista pallets activos de un cliente residentes en
// un depósito, más recientes primero.
func (r *PalletRepo) ListActiveByClientAndDepot(clientID, depotID string) ([]*entity.Pallet, error) {
	query := `
		SELECT p.id, p.product_id, p.lot, p.quantity, p.completeness, p.active, p.slot_id, p.ingress_at, p.egress_at
		FROM pallets p
		JOIN products pr ON pr.id = p.product_id
		JOIN slots s ON s.id = p.slot_id
		JOIN racks r ON r.id = s.rack_id
		WHERE p.active = true AND pr.client_id = $1 AND r.depot_id = $2
		ORDER BY p.ingress_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID, depotID)
	if err != nil {
		return nil, fmt.Errorf("list active pallets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pallet
	for rows.Next() {
		var p entity.Pallet
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Lot, &p.Quantity, &p.Completeness,
			&p.Active, &p.SlotID, &p.IngressAt, &p.EgressAt); err != nil {
			return nil, fmt.Errorf("scan pallet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PalletRepo) scanOne(row pgx.Row) (*entity.Pallet, error) {
	var p entity.Pallet
	err := row.Scan(&p.ID, &p.ProductID, &p.Lot, &p.Quantity, &p.Completeness,
		&p.Active, &p.SlotID, &p.IngressAt, &p.EgressAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pallet: %w", err)
	}
	return &p, nil
}
