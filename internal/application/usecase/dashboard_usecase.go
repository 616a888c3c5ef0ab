package usecase

import (
	"context"
	"time"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
	domwarehouse "github.com/embalse/deposito-api/internal/domain/warehouse"
)

// DashboardUseCase resumen general del sistema: totales y ocupación por
// depósito, recalculado en cada consulta.
type DashboardUseCase struct {
	depotRepo   repository.DepotRepository
	slotRepo    repository.SlotRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	remitoRepo  repository.RemitoRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	depotRepo repository.DepotRepository,
	slotRepo repository.SlotRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	remitoRepo repository.RemitoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		depotRepo:   depotRepo,
		slotRepo:    slotRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		remitoRepo:  remitoRepo,
	}
}

// Summary arma el resumen: depósitos, clientes y productos activos, remitos
// del día y ocupación por depósito.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	depots, err := uc.depotRepo.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.CountActive()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.CountActive()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	remitosToday, err := uc.remitoRepo.CountSince(startOfDay)
	if err != nil {
		return nil, err
	}

	occupancies := make([]dto.DepotOccupancyDTO, 0, len(depots))
	for _, d := range depots {
		total, err := uc.slotRepo.CountByDepot(d.ID)
		if err != nil {
			return nil, err
		}
		occupied, err := uc.slotRepo.CountByDepotAndState(d.ID, entity.SlotOccupied)
		if err != nil {
			return nil, err
		}
		occ := domwarehouse.NewOccupancy(total, occupied, total-occupied)
		occupancies = append(occupancies, dto.DepotOccupancyDTO{
			DepotID:    d.ID,
			Name:       d.Name,
			Total:      occ.Total,
			Occupied:   occ.Occupied,
			Percentage: occ.Percentage,
		})
	}

	return &dto.DashboardResponse{
		Depots:      len(depots),
		Clients:     clients,
		Products:    products,
		RemitosHoy:  remitosToday,
		Occupancies: occupancies,
	}, nil
}
