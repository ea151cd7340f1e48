package http

import (
	appanalytics "github.com/caguayo/inventario-api/internal/application/analytics"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del tablero
// @Description  Totales, ventas de hoy y ayer, ticket promedio, stock bajo, valor de inventario y rankings.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// VentasTendencia godoc
// @Summary      Tendencia diaria de ventas
// @Tags         dashboard
// @Produce      json
// @Param        dias  query  int  false  "Días hacia atrás, incluido hoy"  default(7)
// @Success      200   {object}  dto.VentasTendenciaDTO
// @Router       /api/v1/dashboard/ventas-tendencia [get]
func (h *DashboardHandler) VentasTendencia(c *fiber.Ctx) error {
	out, err := h.uc.VentasTendencia(c.Context(), c.QueryInt("dias", 7))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MovimientosTendencia godoc
// @Summary      Tendencia diaria de movimientos confirmados por tipo
// @Tags         dashboard
// @Produce      json
// @Param        dias  query  int  false  "Días hacia atrás, incluido hoy"  default(7)
// @Success      200   {object}  dto.MovimientosTendenciaDTO
// @Router       /api/v1/dashboard/movimientos-tendencia [get]
func (h *DashboardHandler) MovimientosTendencia(c *fiber.Ctx) error {
	out, err := h.uc.MovimientosTendencia(c.Context(), c.QueryInt("dias", 7))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
