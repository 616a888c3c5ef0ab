package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/application/warehouse"
)

// MovementHandler maneja movimientos internos de pallets (protegido).
type MovementHandler struct {
	uc *warehouse.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *warehouse.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Move godoc
// @Summary      Mover pallet a otra ubicación
// @Description  Libera el origen, ocupa el destino, actualiza el pallet y
//
//	registra el movimiento en una sola transacción.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovePalletRequest  true  "pallet_id, to_slot_id, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Move(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.MovePalletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.MovePallet(c.Context(), warehouse.MoveInput{
		PalletID:   in.PalletID,
		ToSlotID:   in.ToSlotID,
		OperatorID: operatorID,
		Reason:     in.Reason,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:         m.ID,
		PalletID:   m.PalletID,
		FromSlotID: m.FromSlotID,
		ToSlotID:   m.ToSlotID,
		OperatorID: m.OperatorID,
		Reason:     m.Reason,
		Date:       m.Date,
	})
}

// List godoc
// @Summary      Listar últimos movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        depot_id  query  string  false  "Filtrar por depósito de origen"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByDepot(c.Context(), c.Query("depot_id"))
	if err != nil {
		return fail(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:         m.ID,
			PalletID:   m.PalletID,
			FromSlotID: m.FromSlotID,
			ToSlotID:   m.ToSlotID,
			OperatorID: m.OperatorID,
			Reason:     m.Reason,
			Date:       m.Date,
		})
	}
	return c.JSON(items)
}
