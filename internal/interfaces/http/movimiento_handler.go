package http

import (
	"fmt"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/gofiber/fiber/v2"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MovimientoHandler maneja el libro de movimientos y los ajustes.
type MovimientoHandler struct {
	uc     *inventory.MovimientoUseCase
	ajuste *inventory.AjusteUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.MovimientoUseCase, ajuste *inventory.AjusteUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, ajuste: ajuste}
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  El movimiento se crea en estado pendiente y no afecta la cantidad hasta confirmarse.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
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
// @Summary      Listar movimientos
// @Tags         movimientos
// @Produce      json
// @Param        tipo            query  string  false  "Etiqueta del tipo (RECEPCION, MERMA...)"
// @Param        estado          query  string  false  "pendiente | confirmado | cancelado"
// @Param        id_producto     query  int     false  "Producto"
// @Param        id_dependencia  query  int     false  "Dependencia"
// @Param        fecha_desde     query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta     query  string  false  "YYYY-MM-DD (incluido)"
// @Param        skip            query  int     false  "Desplazamiento"  default(0)
// @Param        limit           query  int     false  "Límite"          default(20)
// @Success      200             {object}  dto.MovimientoListResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var in dto.MovimientoFiltroRequest
	if err := parseQuery(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Listar(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Tipos godoc
// @Summary      Tipos de movimiento
// @Tags         movimientos
// @Produce      json
// @Success      200  {array}  entity.TipoMovimiento
// @Router       /api/v1/movimientos/tipos [get]
func (h *MovimientoHandler) Tipos(c *fiber.Ctx) error {
	out, err := h.uc.Tipos(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Pendientes godoc
// @Summary      Movimientos pendientes
// @Tags         movimientos
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(20)
// @Success      200    {object}  dto.MovimientoListResponse
// @Router       /api/v1/movimientos/pendientes [get]
func (h *MovimientoHandler) Pendientes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := parseQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.Pendientes(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecepcionesStock godoc
// @Summary      Recepciones confirmadas disponibles para ajuste
// @Tags         movimientos
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(20)
// @Success      200    {object}  dto.MovimientoListResponse
// @Router       /api/v1/movimientos/recepciones-stock [get]
func (h *MovimientoHandler) RecepcionesStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := parseQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.RecepcionesStock(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Exportar godoc
// @Summary      Exportar movimientos a XLSX
// @Description  Acepta los mismos filtros que el listado; ignora la paginación.
// @Tags         movimientos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/exportar [get]
func (h *MovimientoHandler) Exportar(c *fiber.Ctx) error {
	var in dto.MovimientoFiltroRequest
	if err := parseQuery(c, &in); err != nil {
		return err
	}
	data, err := h.uc.Exportar(c.Context(), in)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="movimientos_%s.xlsx"`, time.Now().Format("20060102_150405")))
	return c.Send(data)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
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

// Origen godoc
// @Summary      Origen de un movimiento
// @Description  Convenio, anexo y cliente de la recepción de la que procede el movimiento.
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.OrigenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/{id}/origen [get]
func (h *MovimientoHandler) Origen(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Origen(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Confirmar movimiento
// @Description  Idempotente: confirmar uno ya confirmado devuelve su estado actual.
// @Description  Un movimiento cancelado no se puede confirmar (400).
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse  "ID inválido o movimiento cancelado"
// @Failure      404  {object}  dto.ErrorResponse  "Movimiento no encontrado"
// @Router       /api/v1/movimientos/{id}/confirmar [put]
func (h *MovimientoHandler) Confirmar(c *fiber.Ctx) error {
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

// Cancelar godoc
// @Summary      Cancelar movimiento
// @Description  Idempotente: cancelar uno ya cancelado devuelve su estado actual.
// @Description  Un movimiento confirmado no se puede cancelar (400).
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse  "ID inválido o movimiento confirmado"
// @Failure      404  {object}  dto.ErrorResponse  "Movimiento no encontrado"
// @Router       /api/v1/movimientos/{id}/cancelar [put]
func (h *MovimientoHandler) Cancelar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Cancelar(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Borrado físico; no revierte efectos sobre la cantidad.
// @Tags         movimientos
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/{id} [delete]
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ajuste godoc
// @Summary      Repartir una recepción entre dependencias
// @Description  Crea un AJUSTE_QUITAR en la dependencia de origen y un AJUSTE_AGREGAR por destino, en una sola transacción.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjusteRequest  true  "Origen y destinos"
// @Success      200   {array}   dto.AjusteMovimientoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/ajuste [post]
func (h *MovimientoHandler) Ajuste(c *fiber.Ctx) error {
	var in dto.AjusteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.ajuste.CrearAjuste(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
