package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/embalse/deposito-api/internal/application/usecase"
)

// DashboardHandler resumen general del sistema (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen general
// @Description  Totales de depósitos, clientes, productos, remitos del día y
//
//	ocupación por depósito, recalculado en cada consulta.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
