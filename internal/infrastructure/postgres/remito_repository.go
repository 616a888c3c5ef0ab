package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

var _ repository.RemitoRepository = (*RemitoRepo)(nil)

// RemitoRepo implementación del puerto RemitoRepository sobre PostgreSQL.
type RemitoRepo struct {
	q Querier
}

// NewRemitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRemitoRepository(q Querier) *RemitoRepo {
	return &RemitoRepo{q: q}
}

const remitoColumns = `id, type, origin, number, state, notes, client_id, depot_id, operator_id, encargado_id, date`

// Create persiste el encabezado del remito. Las líneas se insertan aparte
// con CreateLine, dentro de la misma transacción.
func (r *RemitoRepo) Create(remito *entity.Remito) error {
	query := `
		INSERT INTO remitos (id, type, origin, number, state, notes, client_id, depot_id, operator_id, encargado_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		remito.ID, remito.Type, remito.Origin, remito.Number, remito.State,
		remito.Notes, remito.ClientID, remito.DepotID, remito.OperatorID,
		remito.EncargadoID, remito.Date,
	)
	if err != nil {
		return fmt.Errorf("insert remito: %w", err)
	}
	return nil
}

// CreateLine persiste una línea del remito.
func (r *RemitoRepo) CreateLine(line *entity.RemitoLine) error {
	query := `
		INSERT INTO remito_lines (id, remito_id, line_number, product_id, lot, quantity, pallet_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.RemitoID, line.LineNumber, line.ProductID, line.Lot, line.Quantity, line.PalletID,
	)
	if err != nil {
		return fmt.Errorf("insert remito line: %w", err)
	}
	return nil
}

// GetByID devuelve el remito con sus líneas; nil si no existe.
func (r *RemitoRepo) GetByID(id string) (*entity.Remito, error) {
	query := `SELECT ` + remitoColumns + ` FROM remitos WHERE id = $1`
	return r.getWithLines(id, query)
}

// GetForUpdate bloquea la fila del remito y devuelve el documento con líneas.
func (r *RemitoRepo) GetForUpdate(id string) (*entity.Remito, error) {
	query := `SELECT ` + remitoColumns + ` FROM remitos WHERE id = $1 FOR UPDATE`
	return r.getWithLines(id, query)
}

func (r *RemitoRepo) getWithLines(id, query string) (*entity.Remito, error) {
	remito, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || remito == nil {
		return remito, err
	}
	remito.Lines, err = r.listLines(id)
	if err != nil {
		return nil, err
	}
	return remito, nil
}

// SetState fija el estado y, si encargadoID no es nil, estampa el aprobador.
func (r *RemitoRepo) SetState(id, state string, encargadoID *string) error {
	ct, err := r.q.Exec(context.Background(),
		`UPDATE remitos SET state = $2, encargado_id = COALESCE($3, encargado_id) WHERE id = $1`,
		id, state, encargadoID)
	if err != nil {
		return fmt.Errorf("set remito state: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("set remito state: remito %s no encontrado", id)
	}
	return nil
}

// List lista remitos según filtros opcionales, más recientes primero.
// No carga líneas: el detalle se pide por ID.
func (r *RemitoRepo) List(filter repository.RemitoFilter) ([]*entity.Remito, error) {
	var (
		conds []string
		args  []any
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, column+" = $"+strconv.Itoa(len(args)))
	}
	add("type", filter.Type)
	add("client_id", filter.ClientID)
	add("depot_id", filter.DepotID)
	add("state", filter.State)

	query := `SELECT ` + remitoColumns + ` FROM remitos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Remito
	for rows.Next() {
		var rem entity.Remito
		if err := rows.Scan(&rem.ID, &rem.Type, &rem.Origin, &rem.Number, &rem.State,
			&rem.Notes, &rem.ClientID, &rem.DepotID, &rem.OperatorID,
			&rem.EncargadoID, &rem.Date); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, &rem)
	}
	return list, rows.Err()
}

// CountSince cuenta remitos con fecha >= el instante dado.
func (r *RemitoRepo) CountSince(from time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM remitos WHERE date >= $1`, from).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count remitos: %w", err)
	}
	return count, nil
}

func (r *RemitoRepo) listLines(remitoID string) ([]*entity.RemitoLine, error) {
	query := `
		SELECT id, remito_id, line_number, product_id, lot, quantity, pallet_id
		FROM remito_lines
		WHERE remito_id = $1
		ORDER BY line_number`
	rows, err := r.q.Query(context.Background(), query, remitoID)
	if err != nil {
		return nil, fmt.Errorf("list remito lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.RemitoLine
	for rows.Next() {
		var l entity.RemitoLine
		if err := rows.Scan(&l.ID, &l.RemitoID, &l.LineNumber, &l.ProductID, &l.Lot, &l.Quantity, &l.PalletID); err != nil {
			return nil, fmt.Errorf("scan remito line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *RemitoRepo) scanOne(row pgx.Row) (*entity.Remito, error) {
	var rem entity.Remito
	err := row.Scan(&rem.ID, &rem.Type, &rem.Origin, &rem.Number, &rem.State,
		&rem.Notes, &rem.ClientID, &rem.DepotID, &rem.OperatorID,
		&rem.EncargadoID, &rem.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	return &rem, nil
}
