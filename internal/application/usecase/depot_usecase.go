package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// DepotUseCase casos de uso CRUD para depósitos. La capacidad total no se
// administra acá: es derivada y la mantiene el motor de racks.
type DepotUseCase struct {
	repo     repository.DepotRepository
	rackRepo repository.RackRepository
	slotRepo repository.SlotRepository
}

// NewDepotUseCase construye el caso de uso.
func NewDepotUseCase(repo repository.DepotRepository, rackRepo repository.RackRepository, slotRepo repository.SlotRepository) *DepotUseCase {
	return &DepotUseCase{repo: repo, rackRepo: rackRepo, slotRepo: slotRepo}
}

// Create crea un depósito vacío (capacidad 0 hasta que se agreguen racks).
func (uc *DepotUseCase) Create(in dto.CreateDepotRequest) (*dto.DepotResponse, error) {
	now := time.Now()
	depot := &entity.Depot{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// GetByID obtiene un depósito por ID; nil si no existe.
func (uc *DepotUseCase) GetByID(id string) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, nil
	}
	return toDepotResponse(depot), nil
}

// Update actualiza nombre y/o dirección de un depósito.
func (uc *DepotUseCase) Update(id string, in dto.UpdateDepotRequest) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, nil
	}
	if in.Name != nil {
		depot.Name = *in.Name
	}
	if in.Address != nil {
		depot.Address = *in.Address
	}
	depot.UpdatedAt = time.Now()
	if err := uc.repo.Update(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// List lista los depósitos ordenados por nombre.
func (uc *DepotUseCase) List() ([]dto.DepotResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepotResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepotResponse(d))
	}
	return items, nil
}

// ListRacks lista los racks de un depósito con su cantidad de ubicaciones.
func (uc *DepotUseCase) ListRacks(depotID string) ([]dto.RackResponse, error) {
	racks, err := uc.rackRepo.ListByDepot(depotID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RackResponse, 0, len(racks))
	for _, r := range racks {
		items = append(items, dto.RackResponse{
			ID:      r.ID,
			DepotID: r.DepotID,
			Code:    r.Code,
			Rows:    r.Rows,
			Columns: r.Columns,
			Depth:   r.Depth,
			Slots:   r.Rows * r.Columns * r.Depth,
		})
	}
	return items, nil
}

// ListSlotsByRack lista las ubicaciones de un rack en orden de grilla.
func (uc *DepotUseCase) ListSlotsByRack(rackID string) ([]dto.SlotResponse, error) {
	slots, err := uc.slotRepo.ListByRack(rackID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, dto.SlotResponse{
			ID:       s.ID,
			RackID:   s.RackID,
			Code:     s.Code,
			Row:      s.Row,
			Column:   s.Column,
			Depth:    s.Depth,
			State:    s.State,
			PalletID: s.PalletID,
		})
	}
	return items, nil
}

func toDepotResponse(d *entity.Depot) *dto.DepotResponse {
	if d == nil {
		return nil
	}
	return &dto.DepotResponse{
		ID:            d.ID,
		Name:          d.Name,
		Address:       d.Address,
		TotalCapacity: d.TotalCapacity,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
