package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/application/usecase"
	"github.com/embalse/deposito-api/internal/application/warehouse"
)

// DepotHandler maneja depósitos, racks, ubicaciones y ocupación (protegido).
type DepotHandler struct {
	uc          *usecase.DepotUseCase
	rackUC      *warehouse.RackUseCase
	occupancyUC *warehouse.OccupancyUseCase
}

// NewDepotHandler construye el handler.
func NewDepotHandler(uc *usecase.DepotUseCase, rackUC *warehouse.RackUseCase, occupancyUC *warehouse.OccupancyUseCase) *DepotHandler {
	return &DepotHandler{uc: uc, rackUC: rackUC, occupancyUC: occupancyUC}
}

// Create godoc
// @Summary      Crear depósito
// @Tags         depots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepotRequest  true  "Datos del depósito"
// @Success      201   {object}  dto.DepotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depots [post]
func (h *DepotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener depósito por ID
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {object}  dto.DepotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depots/{id} [get]
func (h *DepotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "depósito no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar depósito
// @Tags         depots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del depósito"
// @Param        body  body  dto.UpdateDepotRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DepotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depots/{id} [put]
func (h *DepotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "depósito no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar depósitos
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepotResponse
// @Router       /api/depots [get]
func (h *DepotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// CreateRack godoc
// @Summary      Crear rack con su grilla de ubicaciones
// @Description  Crea el rack, genera filas×columnas×profundidad ubicaciones
//
//	LIBRE y recalcula la capacidad del depósito, todo en una transacción.
//
// @Tags         depots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del depósito"
// @Param        body  body  dto.CreateRackRequest  true  "code, rows (1-10), columns (1-20), depth (1-10)"
// @Success      201   {object}  dto.RackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depots/{id}/racks [post]
func (h *DepotHandler) CreateRack(c *fiber.Ctx) error {
	var in dto.CreateRackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rack, err := h.rackUC.CreateRack(c.Context(), warehouse.CreateRackInput{
		DepotID: c.Params("id"),
		Code:    in.Code,
		Rows:    in.Rows,
		Columns: in.Columns,
		Depth:   in.Depth,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RackResponse{
		ID:      rack.ID,
		DepotID: rack.DepotID,
		Code:    rack.Code,
		Rows:    rack.Rows,
		Columns: rack.Columns,
		Depth:   rack.Depth,
		Slots:   rack.Rows * rack.Columns * rack.Depth,
	})
}

// ListRacks godoc
// @Summary      Listar racks de un depósito
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {array}  dto.RackResponse
// @Router       /api/depots/{id}/racks [get]
func (h *DepotHandler) ListRacks(c *fiber.Ctx) error {
	out, err := h.uc.ListRacks(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteRack godoc
// @Summary      Eliminar rack
// @Description  Elimina el rack y sus ubicaciones si ninguna está ocupada;
//
//	recalcula la capacidad del depósito.
//
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rack"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/racks/{id} [delete]
func (h *DepotHandler) DeleteRack(c *fiber.Ctx) error {
	if err := h.rackUC.DeleteRack(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSlots godoc
// @Summary      Listar ubicaciones de un rack
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rack"
// @Success      200  {array}  dto.SlotResponse
// @Router       /api/racks/{id}/slots [get]
func (h *DepotHandler) ListSlots(c *fiber.Ctx) error {
	out, err := h.uc.ListSlotsByRack(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Occupancy godoc
// @Summary      Ocupación del depósito
// @Description  Recalcula total, ocupadas, libres y porcentaje desde el
//
//	estado actual de las ubicaciones.
//
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {object}  dto.OccupancyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depots/{id}/occupancy [get]
func (h *DepotHandler) Occupancy(c *fiber.Ctx) error {
	occ, err := h.occupancyUC.Occupancy(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OccupancyResponse{
		Total:      occ.Total,
		Occupied:   occ.Occupied,
		Free:       occ.Free,
		Percentage: occ.Percentage,
	})
}
