package warehouse

import (
	"context"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
	domwarehouse "github.com/embalse/deposito-api/internal/domain/warehouse"
)

// OccupancyUseCase calcula la ocupación de un depósito. Solo lectura: se
// recomputa bajo demanda desde los estados actuales de las ubicaciones para
// no derivar respecto del estado real.
type OccupancyUseCase struct {
	depotRepo repository.DepotRepository
	slotRepo  repository.SlotRepository
}

// NewOccupancyUseCase construye el caso de uso.
func NewOccupancyUseCase(depotRepo repository.DepotRepository, slotRepo repository.SlotRepository) *OccupancyUseCase {
	return &OccupancyUseCase{depotRepo: depotRepo, slotRepo: slotRepo}
}

// Occupancy devuelve {total, ocupadas, libres, porcentaje} del depósito.
func (uc *OccupancyUseCase) Occupancy(ctx context.Context, depotID string) (*domwarehouse.Occupancy, error) {
	if depotID == "" {
		return nil, domain.ErrInvalidInput
	}
	depot, err := uc.depotRepo.GetByID(depotID)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.slotRepo.CountByDepot(depotID)
	if err != nil {
		return nil, err
	}
	occupied, err := uc.slotRepo.CountByDepotAndState(depotID, entity.SlotOccupied)
	if err != nil {
		return nil, err
	}
	free, err := uc.slotRepo.CountByDepotAndState(depotID, entity.SlotFree)
	if err != nil {
		return nil, err
	}
	occ := domwarehouse.NewOccupancy(total, occupied, free)
	return &occ, nil
}
