package warehouse

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// RemitoUseCase implementa el ciclo de vida del remito (ingreso/egreso):
// PENDIENTE → APROBADO | ANULADO. Cada transición ejecuta, en una sola
// transacción serializable, los efectos sobre ubicaciones y pallets de todas
// las líneas del documento; un fallo a mitad de camino revierte todo.
type RemitoUseCase struct {
	txRunner   TxRunner
	remitoRepo repository.RemitoRepository
	clientRepo repository.ClientRepository
	depotRepo  repository.DepotRepository
	slotRepo   repository.SlotRepository
	palletRepo repository.PalletRepository
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(
	txRunner TxRunner,
	remitoRepo repository.RemitoRepository,
	clientRepo repository.ClientRepository,
	depotRepo repository.DepotRepository,
	slotRepo repository.SlotRepository,
	palletRepo repository.PalletRepository,
) *RemitoUseCase {
	return &RemitoUseCase{
		txRunner:   txRunner,
		remitoRepo: remitoRepo,
		clientRepo: clientRepo,
		depotRepo:  depotRepo,
		slotRepo:   slotRepo,
		palletRepo: palletRepo,
	}
}

// IngresoLineInput línea de un remito de ingreso: qué producto entra, en qué
// lote y cantidad, a qué ubicación va y en qué estado queda el pallet.
type IngresoLineInput struct {
	ProductID    string
	Lot          string
	Quantity     decimal.Decimal
	SlotID       string
	Completeness string
}

// CreateIngresoInput entrada para registrar un remito de ingreso.
type CreateIngresoInput struct {
	ClientID   string
	DepotID    string
	Origin     string
	Number     string
	Notes      string
	OperatorID string
	Lines      []IngresoLineInput
}

// CreateEgresoInput entrada para registrar un remito de egreso sobre pallets
// ya residentes.
type CreateEgresoInput struct {
	ClientID   string
	DepotID    string
	Origin     string
	Number     string
	Notes      string
	OperatorID string
	PalletIDs  []string
}

// CreateIngreso registra un remito de ingreso PENDIENTE. Por cada línea, en la
// misma transacción: reserva la ubicación destino (LIBRE → RESERVADA), crea el
// pallet referenciando esa ubicación y crea la línea referenciando el pallet.
// Si alguna ubicación no está LIBRE al momento del commit, el documento entero
// se aborta con domain.ErrSlotNotAvailable (sin remito parcial).
func (uc *RemitoUseCase) CreateIngreso(ctx context.Context, in CreateIngresoInput) (*entity.Remito, error) {
	if err := uc.validateHeader(in.ClientID, in.DepotID, in.Origin, in.Number, in.OperatorID); err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || strings.TrimSpace(l.Lot) == "" || l.SlotID == "" {
			return nil, domain.ErrInvalidInput
		}
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if l.Completeness != entity.PalletComplete && l.Completeness != entity.PalletIncomplete {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	remito := &entity.Remito{
		ID:         uuid.New().String(),
		Type:       entity.RemitoIngreso,
		Origin:     in.Origin,
		Number:     in.Number,
		State:      entity.RemitoPending,
		Notes:      in.Notes,
		ClientID:   in.ClientID,
		DepotID:    in.DepotID,
		OperatorID: in.OperatorID,
		Date:       now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Remitos.Create(remito); err != nil {
			return err
		}
		for _, l := range in.Lines {
			// Bloquea la ubicación y re-verifica que siga LIBRE; una línea
			// duplicada dentro del mismo documento la encuentra RESERVADA
			slot, err := r.Slots.GetForUpdate(l.SlotID)
			if err != nil {
				return err
			}
			if slot == nil || !slot.IsFree() {
				return domain.ErrSlotNotAvailable
			}
			pallet := &entity.Pallet{
				ID:           uuid.New().String(),
				ProductID:    l.ProductID,
				Lot:          l.Lot,
				Quantity:     l.Quantity,
				Completeness: l.Completeness,
				Active:       true,
				SlotID:       &slot.ID,
				IngressAt:    now,
			}
			if err := r.Slots.SetState(slot.ID, entity.SlotReserved, &pallet.ID); err != nil {
				return err
			}
			if err := r.Pallets.Create(pallet); err != nil {
				return err
			}
			line := &entity.RemitoLine{
				ID:         uuid.New().String(),
				RemitoID:   remito.ID,
				LineNumber: len(remito.Lines) + 1,
				ProductID:  l.ProductID,
				Lot:        l.Lot,
				Quantity:   l.Quantity,
				PalletID:   &pallet.ID,
			}
			if err := r.Remitos.CreateLine(line); err != nil {
				return err
			}
			remito.Lines = append(remito.Lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remito, nil
}

// CreateEgreso registra un remito de egreso PENDIENTE con una línea por pallet
// indicado, copiando producto/lote/cantidad del pallet. No toca el estado de
// las ubicaciones: eso ocurre recién al aprobar.
//
// Los IDs de pallets inexistentes o ya egresados se omiten en silencio
// (comportamiento heredado; queda un warn en el log porque puede enmascarar
// un ID viejo del caller). Si no queda ninguna línea válida el documento se
// aborta con domain.ErrInvalidInput.
func (uc *RemitoUseCase) CreateEgreso(ctx context.Context, in CreateEgresoInput) (*entity.Remito, error) {
	if err := uc.validateHeader(in.ClientID, in.DepotID, in.Origin, in.Number, in.OperatorID); err != nil {
		return nil, err
	}
	if len(in.PalletIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	remito := &entity.Remito{
		ID:         uuid.New().String(),
		Type:       entity.RemitoEgreso,
		Origin:     in.Origin,
		Number:     in.Number,
		State:      entity.RemitoPending,
		Notes:      in.Notes,
		ClientID:   in.ClientID,
		DepotID:    in.DepotID,
		OperatorID: in.OperatorID,
		Date:       time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Remitos.Create(remito); err != nil {
			return err
		}
		for _, palletID := range in.PalletIDs {
			pallet, err := r.Pallets.GetByID(palletID)
			if err != nil {
				return err
			}
			if pallet == nil || !pallet.Active {
				log.Warn().Str("pallet_id", palletID).Str("remito_id", remito.ID).
					Msg("pallet inexistente o ya egresado, línea omitida")
				continue
			}
			line := &entity.RemitoLine{
				ID:         uuid.New().String(),
				RemitoID:   remito.ID,
				LineNumber: len(remito.Lines) + 1,
				ProductID:  pallet.ProductID,
				Lot:        pallet.Lot,
				Quantity:   pallet.Quantity,
				PalletID:   &pallet.ID,
			}
			if err := r.Remitos.CreateLine(line); err != nil {
				return err
			}
			remito.Lines = append(remito.Lines, line)
		}
		// Un egreso sin ninguna línea válida no es un documento
		if len(remito.Lines) == 0 {
			return domain.ErrInvalidInput
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remito, nil
}

// Aprobar aprueba un remito PENDIENTE y estampa al encargado.
// INGRESO: cada ubicación reservada por sus líneas pasa RESERVADA → OCUPADA.
// EGRESO: cada ubicación ocupada pasa a LIBRE y el pallet se desactiva con
// fecha de egreso. Sobre un documento no pendiente falla con
// domain.ErrInvalidState sin efectos.
func (uc *RemitoUseCase) Aprobar(ctx context.Context, remitoID, encargadoID string) error {
	if remitoID == "" || encargadoID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		remito, err := r.Remitos.GetForUpdate(remitoID)
		if err != nil {
			return err
		}
		if remito == nil {
			return domain.ErrNotFound
		}
		if remito.State != entity.RemitoPending {
			return domain.ErrInvalidState
		}
		if err := r.Remitos.SetState(remitoID, entity.RemitoApproved, &encargadoID); err != nil {
			return err
		}
		for _, line := range remito.Lines {
			if line.PalletID == nil {
				continue
			}
			pallet, err := r.Pallets.GetForUpdate(*line.PalletID)
			if err != nil {
				return err
			}
			if pallet == nil {
				continue
			}
			switch remito.Type {
			case entity.RemitoIngreso:
				if pallet.SlotID == nil {
					continue
				}
				slot, err := r.Slots.GetForUpdate(*pallet.SlotID)
				if err != nil {
					return err
				}
				if slot == nil || slot.State != entity.SlotReserved {
					return domain.ErrInvalidState
				}
				if err := r.Slots.SetState(slot.ID, entity.SlotOccupied, &pallet.ID); err != nil {
					return err
				}
			case entity.RemitoEgreso:
				// Un pallet que ya egresó por otro documento conserva su
				// fecha de egreso original
				if !pallet.Active {
					continue
				}
				if pallet.SlotID != nil {
					if err := r.Slots.SetState(*pallet.SlotID, entity.SlotFree, nil); err != nil {
						return err
					}
				}
				if err := r.Pallets.Deactivate(pallet.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Anular anula un remito PENDIENTE. INGRESO: el ingreso nunca ocurrió, así que
// se liberan las ubicaciones reservadas/ocupadas y los pallets creados se
// eliminan físicamente (sin rastro). EGRESO: solo cambia el estado del
// documento, porque el egreso no tocó ubicaciones antes de aprobarse.
func (uc *RemitoUseCase) Anular(ctx context.Context, remitoID string) error {
	if remitoID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		remito, err := r.Remitos.GetForUpdate(remitoID)
		if err != nil {
			return err
		}
		if remito == nil {
			return domain.ErrNotFound
		}
		if remito.State != entity.RemitoPending {
			return domain.ErrInvalidState
		}
		if err := r.Remitos.SetState(remitoID, entity.RemitoVoided, nil); err != nil {
			return err
		}
		if remito.Type != entity.RemitoIngreso {
			return nil
		}
		for _, line := range remito.Lines {
			if line.PalletID == nil {
				continue
			}
			pallet, err := r.Pallets.GetForUpdate(*line.PalletID)
			if err != nil {
				return err
			}
			if pallet == nil {
				continue
			}
			if pallet.SlotID != nil {
				if err := r.Slots.SetState(*pallet.SlotID, entity.SlotFree, nil); err != nil {
					return err
				}
			}
			if err := r.Pallets.Delete(pallet.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// List lista remitos según los filtros (tipo, cliente, depósito, estado).
func (uc *RemitoUseCase) List(ctx context.Context, filter repository.RemitoFilter) ([]*entity.Remito, error) {
	return uc.remitoRepo.List(filter)
}

// GetByID devuelve un remito con sus líneas; nil si no existe.
func (uc *RemitoUseCase) GetByID(ctx context.Context, id string) (*entity.Remito, error) {
	return uc.remitoRepo.GetByID(id)
}

// ListFreeSlots lista las ubicaciones LIBRE de un depósito en orden
// determinístico (código de rack, fila, columna, profundidad).
func (uc *RemitoUseCase) ListFreeSlots(ctx context.Context, depotID string) ([]*entity.Slot, error) {
	if depotID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.slotRepo.ListFreeByDepot(depotID)
}

// ListActivePallets lista los pallets activos de un cliente en un depósito.
func (uc *RemitoUseCase) ListActivePallets(ctx context.Context, clientID, depotID string) ([]*entity.Pallet, error) {
	if clientID == "" || depotID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.palletRepo.ListActiveByClientAndDepot(clientID, depotID)
}

// validateHeader valida el encabezado común de ingresos y egresos, incluyendo
// que cliente y depósito existan.
func (uc *RemitoUseCase) validateHeader(clientID, depotID, origin, number, operatorID string) error {
	if clientID == "" || depotID == "" || operatorID == "" || strings.TrimSpace(number) == "" {
		return domain.ErrInvalidInput
	}
	if origin != entity.RemitoOriginSAP && origin != entity.RemitoOriginManual {
		return domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil || !client.Active {
		return domain.ErrNotFound
	}
	depot, err := uc.depotRepo.GetByID(depotID)
	if err != nil {
		return err
	}
	if depot == nil {
		return domain.ErrNotFound
	}
	return nil
}
