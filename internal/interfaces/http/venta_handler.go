package http

import (
	"fmt"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ventas"
	"github.com/gofiber/fiber/v2"
)

// VentaHandler maneja las ventas y su máquina de estados.
type VentaHandler struct {
	uc *ventas.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta
// @Description  Crea la venta en PENDIENTE; subtotales y total se calculan en el servidor.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Param        estado       query  string  false  "PENDIENTE | COMPLETADA | ANULADA"
// @Param        id_cliente   query  int     false  "Cliente"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (incluido)"
// @Param        skip         query  int     false  "Desplazamiento"  default(0)
// @Param        limit        query  int     false  "Límite"          default(20)
// @Success      200          {object}  dto.VentaListResponse
// @Router       /api/v1/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var in dto.VentaFiltroRequest
	if err := parseQuery(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Listar(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MesActual godoc
// @Summary      Ventas del mes en curso
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/v1/ventas/mes-actual [get]
func (h *VentaHandler) MesActual(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := parseQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.MesActual(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         ventas
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar venta
// @Description  Solo ventas PENDIENTE. Un cambio de estado pasa por confirmar/anular.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateVentaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Confirmar venta
// @Description  PENDIENTE -> COMPLETADA; descuenta el stock de cada línea.
// @Tags         ventas
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id}/confirmar [post]
func (h *VentaHandler) Confirmar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Confirmar(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Anular godoc
// @Summary      Anular venta
// @Description  Si estaba COMPLETADA repone el stock de cada línea.
// @Tags         ventas
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id}/anular [post]
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Anular(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Description  Permitido en cualquier estado; si estaba COMPLETADA repone el stock.
// @Tags         ventas
// @Param        id   path  int  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Comprobante godoc
// @Summary      Comprobante PDF de la venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/ventas/{id}/comprobante [get]
func (h *VentaHandler) Comprobante(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.uc.Comprobante(c.Context(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venta_%d.pdf"`, id))
	return c.Send(pdf)
}
