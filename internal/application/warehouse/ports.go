package warehouse

import (
	"context"

	"github.com/embalse/deposito-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Depots    repository.DepotRepository
	Racks     repository.RackRepository
	Slots     repository.SlotRepository
	Pallets   repository.PalletRepository
	Remitos   repository.RemitoRepository
	Movements repository.MovementRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD con aislamiento
// serializable, pasando repositorios atados a esa tx. Garantiza atomicidad
// para el motor de ubicaciones: o se aplican todas las escrituras o ninguna.
// No reintenta; un conflicto de serialización llega al caller como
// domain.ErrConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
