package dto

import "time"

// MovePalletRequest entrada para mover un pallet a otra ubicación.
type MovePalletRequest struct {
	PalletID string `json:"pallet_id" validate:"required,uuid"`
	ToSlotID string `json:"to_slot_id" validate:"required,uuid"`
	Reason   string `json:"reason" validate:"omitempty,max=200"`
}

// MovementResponse salida de un movimiento interno (auditoría inmutable).
type MovementResponse struct {
	ID         string    `json:"id"`
	PalletID   string    `json:"pallet_id"`
	FromSlotID string    `json:"from_slot_id"`
	ToSlotID   string    `json:"to_slot_id"`
	OperatorID string    `json:"operator_id"`
	Reason     string    `json:"reason,omitempty"`
	Date       time.Time `json:"date"`
}
