package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/domain/repository"
)

// RemitoHandler maneja el ciclo de vida de remitos: registro de ingresos y
// egresos, aprobación, anulación y consultas (protegido).
type RemitoHandler struct {
	uc *warehouse.RemitoUseCase
}

// NewRemitoHandler construye el handler.
func NewRemitoHandler(uc *warehouse.RemitoUseCase) *RemitoHandler {
	return &RemitoHandler{uc: uc}
}

// CreateIngreso godoc
// @Summary      Registrar remito de ingreso
// @Description  Crea el remito PENDIENTE y por cada línea reserva la
//
//	ubicación destino y materializa el pallet, todo en una transacción.
//
// @Tags         remitos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngresoRequest  true  "Encabezado y líneas del ingreso"
// @Success      201   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/remitos/ingresos [post]
func (h *RemitoHandler) CreateIngreso(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]warehouse.IngresoLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, warehouse.IngresoLineInput{
			ProductID:    l.ProductID,
			Lot:          l.Lot,
			Quantity:     l.Quantity,
			SlotID:       l.SlotID,
			Completeness: l.Completeness,
		})
	}
	remito, err := h.uc.CreateIngreso(c.Context(), warehouse.CreateIngresoInput{
		ClientID:   in.ClientID,
		DepotID:    in.DepotID,
		Origin:     in.Origin,
		Number:     in.Number,
		Notes:      in.Notes,
		OperatorID: operatorID,
		Lines:      lines,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRemitoResponse(remito))
}

// CreateEgreso godoc
// @Summary      Registrar remito de egreso
// @Description  Crea el remito PENDIENTE con una línea por pallet residente.
//
//	Las ubicaciones no cambian hasta la aprobación.
//
// @Tags         remitos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEgresoRequest  true  "Encabezado y pallets a egresar"
// @Success      201   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/remitos/egresos [post]
func (h *RemitoHandler) CreateEgreso(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateEgresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	remito, err := h.uc.CreateEgreso(c.Context(), warehouse.CreateEgresoInput{
		ClientID:   in.ClientID,
		DepotID:    in.DepotID,
		Origin:     in.Origin,
		Number:     in.Number,
		Notes:      in.Notes,
		OperatorID: operatorID,
		PalletIDs:  in.PalletIDs,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRemitoResponse(remito))
}

// Aprobar godoc
// @Summary      Aprobar remito
// @Description  INGRESO: las ubicaciones reservadas pasan a OCUPADA.
//
//	EGRESO: las ubicaciones se liberan y los pallets se desactivan.
//
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id}/aprobar [post]
func (h *RemitoHandler) Aprobar(c *fiber.Ctx) error {
	encargadoID := GetUserID(c)
	if encargadoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if err := h.uc.Aprobar(c.Context(), id, encargadoID); err != nil {
		return fail(c, err)
	}
	remito, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toRemitoResponse(remito))
}

// Anular godoc
// @Summary      Anular remito
// @Description  INGRESO: libera las ubicaciones y elimina los pallets creados.
//
//	EGRESO: solo cambia el estado del documento.
//
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id}/anular [post]
func (h *RemitoHandler) Anular(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Anular(c.Context(), id); err != nil {
		return fail(c, err)
	}
	remito, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toRemitoResponse(remito))
}

// List godoc
// @Summary      Listar remitos
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        type       query  string  false  "INGRESO o EGRESO"
// @Param        client_id  query  string  false  "Filtrar por cliente"
// @Param        depot_id   query  string  false  "Filtrar por depósito"
// @Param        state      query  string  false  "PENDIENTE, APROBADO o ANULADO"
// @Success      200  {array}  dto.RemitoResponse
// @Router       /api/remitos [get]
func (h *RemitoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), repository.RemitoFilter{
		Type:     c.Query("type"),
		ClientID: c.Query("client_id"),
		DepotID:  c.Query("depot_id"),
		State:    c.Query("state"),
	})
	if err != nil {
		return fail(c, err)
	}
	items := make([]dto.RemitoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRemitoResponse(r))
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener remito por ID con sus líneas
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [get]
func (h *RemitoHandler) GetByID(c *fiber.Ctx) error {
	remito, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if remito == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remito no encontrado"})
	}
	return c.JSON(toRemitoResponse(remito))
}

// FreeSlots godoc
// @Summary      Listar ubicaciones libres de un depósito
// @Description  Orden determinístico: código de rack, fila, columna, profundidad.
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {array}  dto.SlotResponse
// @Router       /api/depots/{id}/free-slots [get]
func (h *RemitoHandler) FreeSlots(c *fiber.Ctx) error {
	slots, err := h.uc.ListFreeSlots(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
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
	return c.JSON(items)
}

// ActivePallets godoc
// @Summary      Listar pallets activos de un cliente en un depósito
// @Tags         pallets
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  true  "ID del cliente"
// @Param        depot_id   query  string  true  "ID del depósito"
// @Success      200  {array}  dto.PalletResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pallets [get]
func (h *RemitoHandler) ActivePallets(c *fiber.Ctx) error {
	pallets, err := h.uc.ListActivePallets(c.Context(), c.Query("client_id"), c.Query("depot_id"))
	if err != nil {
		return fail(c, err)
	}
	items := make([]dto.PalletResponse, 0, len(pallets))
	for _, p := range pallets {
		items = append(items, dto.PalletResponse{
			ID:           p.ID,
			ProductID:    p.ProductID,
			Lot:          p.Lot,
			Quantity:     p.Quantity,
			Completeness: p.Completeness,
			Active:       p.Active,
			SlotID:       p.SlotID,
			IngressAt:    p.IngressAt,
			EgressAt:     p.EgressAt,
		})
	}
	return c.JSON(items)
}

func toRemitoResponse(r *entity.Remito) *dto.RemitoResponse {
	if r == nil {
		return nil
	}
	lines := make([]dto.RemitoLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.RemitoLineResponse{
			ID:         l.ID,
			LineNumber: l.LineNumber,
			ProductID:  l.ProductID,
			Lot:        l.Lot,
			Quantity:   l.Quantity,
			PalletID:   l.PalletID,
		})
	}
	return &dto.RemitoResponse{
		ID:          r.ID,
		Type:        r.Type,
		Origin:      r.Origin,
		Number:      r.Number,
		State:       r.State,
		Notes:       r.Notes,
		ClientID:    r.ClientID,
		DepotID:     r.DepotID,
		OperatorID:  r.OperatorID,
		EncargadoID: r.EncargadoID,
		Date:        r.Date,
		Lines:       lines,
	}
}
