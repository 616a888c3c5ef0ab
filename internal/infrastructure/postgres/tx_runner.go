package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/domain"
)

// Ensure TxRunner implements warehouse.TxRunner.
var _ warehouse.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// aislamiento SERIALIZABLE: el estado verificado (ej. "¿la ubicación sigue
// LIBRE?") no puede ser invalidado por un escritor concurrente entre el check
// y el write. No reintenta: un conflicto de serialización sube como
// domain.ErrConflict y el reintento es responsabilidad del caller.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia la transacción serializable, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos warehouse.Repos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := warehouse.Repos{
		Depots:    NewDepotRepository(tx),
		Racks:     NewRackRepository(tx),
		Slots:     NewSlotRepository(tx),
		Pallets:   NewPalletRepository(tx),
		Remitos:   NewRemitoRepository(tx),
		Movements: NewMovementRepository(tx),
	}

	if err := fn(repos); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// Códigos SQLSTATE que la capa traduce a errores de dominio.
const (
	sqlstateSerializationFailure = "40001"
	sqlstateUniqueViolation      = "23505"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == sqlstateUniqueViolation
}

// translateTxError mapea errores de serialización/unicidad de PostgreSQL a
// errores de dominio para que el caller pueda reintentar o informar.
func translateTxError(err error) error {
	switch pgErrCode(err) {
	case sqlstateSerializationFailure:
		return domain.ErrConflict
	case sqlstateUniqueViolation:
		return domain.ErrDuplicate
	}
	return err
}
