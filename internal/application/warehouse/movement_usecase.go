package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// MovementUseCase reubica pallets activos entre ubicaciones del depósito.
// Las cuatro escrituras (liberar origen, ocupar destino, actualizar pallet,
// registrar movimiento) van en una sola transacción serializable; ante
// cualquier precondición fallida no queda ningún efecto observable.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MoveInput entrada para mover un pallet a una ubicación destino.
type MoveInput struct {
	PalletID   string
	ToSlotID   string
	OperatorID string
	Reason     string
}

// MovePallet mueve el pallet a la ubicación destino.
// Precondiciones, re-verificadas con bloqueo de fila al momento del commit:
// el pallet existe, está activo y tiene ubicación actual
// (domain.ErrPalletNotAvailable si no); el destino existe y está LIBRE
// (domain.ErrSlotNotAvailable si no). Devuelve el registro de movimiento.
func (uc *MovementUseCase) MovePallet(ctx context.Context, in MoveInput) (*entity.Movement, error) {
	if in.PalletID == "" || in.ToSlotID == "" || in.OperatorID == "" {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.Movement{
		ID:         uuid.New().String(),
		PalletID:   in.PalletID,
		ToSlotID:   in.ToSlotID,
		OperatorID: in.OperatorID,
		Reason:     in.Reason,
		Date:       time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		// Bloquea la fila del pallet para que nadie lo mueva en paralelo
		pallet, err := r.Pallets.GetForUpdate(in.PalletID)
		if err != nil {
			return err
		}
		if pallet == nil || !pallet.Active || pallet.SlotID == nil {
			return domain.ErrPalletNotAvailable
		}
		origin := *pallet.SlotID
		// Bloquea el destino y re-verifica que siga LIBRE
		dest, err := r.Slots.GetForUpdate(in.ToSlotID)
		if err != nil {
			return err
		}
		if dest == nil || !dest.IsFree() {
			return domain.ErrSlotNotAvailable
		}
		if err := r.Slots.SetState(origin, entity.SlotFree, nil); err != nil {
			return err
		}
		if err := r.Slots.SetState(dest.ID, entity.SlotOccupied, &pallet.ID); err != nil {
			return err
		}
		if err := r.Pallets.SetSlot(pallet.ID, &dest.ID); err != nil {
			return err
		}
		movement.FromSlotID = origin
		return r.Movements.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ListByDepot lista los últimos movimientos del depósito (máximo 100),
// más recientes primero. DepotID vacío = todos los depósitos.
func (uc *MovementUseCase) ListByDepot(ctx context.Context, depotID string) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByDepot(depotID, 100)
}
