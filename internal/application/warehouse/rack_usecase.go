package warehouse

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
	domwarehouse "github.com/embalse/deposito-api/internal/domain/warehouse"
)

// RackUseCase crea y elimina racks junto con su grilla de ubicaciones, de
// forma transaccional, y mantiene la capacidad derivada del depósito.
type RackUseCase struct {
	txRunner  TxRunner
	depotRepo repository.DepotRepository
	rackRepo  repository.RackRepository
	slotRepo  repository.SlotRepository
}

// NewRackUseCase construye el caso de uso.
func NewRackUseCase(
	txRunner TxRunner,
	depotRepo repository.DepotRepository,
	rackRepo repository.RackRepository,
	slotRepo repository.SlotRepository,
) *RackUseCase {
	return &RackUseCase{
		txRunner:  txRunner,
		depotRepo: depotRepo,
		rackRepo:  rackRepo,
		slotRepo:  slotRepo,
	}
}

// CreateRackInput entrada para crear un rack con su grilla.
type CreateRackInput struct {
	DepotID string
	Code    string
	Rows    int
	Columns int
	Depth   int
}

// CreateRack crea el rack, genera sus filas×columnas×profundidad ubicaciones
// LIBRE y recalcula la capacidad del depósito como COUNT de todas sus
// ubicaciones (autocorrectiva ante cualquier deriva previa), todo en una
// transacción serializable.
func (uc *RackUseCase) CreateRack(ctx context.Context, in CreateRackInput) (*entity.Rack, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.DepotID == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := domwarehouse.ValidateRackDimensions(in.Rows, in.Columns, in.Depth); err != nil {
		return nil, err
	}

	depot, err := uc.depotRepo.GetByID(in.DepotID)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}

	rack := &entity.Rack{
		ID:        uuid.New().String(),
		DepotID:   in.DepotID,
		Code:      in.Code,
		Rows:      in.Rows,
		Columns:   in.Columns,
		Depth:     in.Depth,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Racks.Create(rack); err != nil {
			return err
		}
		slots := domwarehouse.GenerateGrid(rack.ID, rack.Code, rack.Rows, rack.Columns, rack.Depth)
		for _, s := range slots {
			s.ID = uuid.New().String()
		}
		if err := r.Slots.BulkCreate(slots); err != nil {
			return err
		}
		return recomputeCapacity(r, in.DepotID)
	})
	if err != nil {
		return nil, err
	}
	return rack, nil
}

// DeleteRack elimina el rack y sus ubicaciones si ninguna está OCUPADA ni
// RESERVADA, y recalcula la capacidad del depósito. Una ubicación RESERVADA
// tiene un pallet de un ingreso pendiente que la referencia, así que también
// bloquea. Falla con domain.ErrConflict sin efectos.
func (uc *RackUseCase) DeleteRack(ctx context.Context, rackID string) error {
	if rackID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		rack, err := r.Racks.GetByID(rackID)
		if err != nil {
			return err
		}
		if rack == nil {
			return domain.ErrNotFound
		}
		occupied, err := r.Slots.CountByRackAndState(rackID, entity.SlotOccupied)
		if err != nil {
			return err
		}
		reserved, err := r.Slots.CountByRackAndState(rackID, entity.SlotReserved)
		if err != nil {
			return err
		}
		if occupied+reserved > 0 {
			return domain.ErrConflict
		}
		if err := r.Racks.Delete(rackID); err != nil {
			return err
		}
		return recomputeCapacity(r, rack.DepotID)
	})
}

// recomputeCapacity fija la capacidad del depósito a partir del conteo real de
// ubicaciones dentro de la misma transacción.
func recomputeCapacity(r Repos, depotID string) error {
	total, err := r.Slots.CountByDepot(depotID)
	if err != nil {
		return err
	}
	return r.Depots.UpdateCapacity(depotID, total)
}
