package http

import (
	"github.com/caguayo/inventario-api/internal/application/convenios"
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/gofiber/fiber/v2"
)

// ConvenioHandler maneja convenios y anexos.
type ConvenioHandler struct {
	convenios *convenios.ConvenioUseCase
	anexos    *convenios.AnexoUseCase
}

// NewConvenioHandler construye el handler.
func NewConvenioHandler(c *convenios.ConvenioUseCase, a *convenios.AnexoUseCase) *ConvenioHandler {
	return &ConvenioHandler{convenios: c, anexos: a}
}

// Create godoc
// @Summary      Crear convenio
// @Tags         convenios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConvenioRequest  true  "Datos del convenio"
// @Success      201   {object}  dto.ConvenioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/convenios [post]
func (h *ConvenioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConvenioRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.convenios.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar convenios
// @Tags         convenios
// @Produce      json
// @Param        cliente_id  query  int  false  "Filtrar por cliente"
// @Success      200         {array}  dto.ConvenioResponse
// @Router       /api/v1/convenios [get]
func (h *ConvenioHandler) List(c *fiber.Ctx) error {
	cliente, err := queryID(c, "cliente_id")
	if err != nil {
		return err
	}
	out, err := h.convenios.List(c.Context(), cliente)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener convenio
// @Tags         convenios
// @Produce      json
// @Param        id   path  int  true  "ID del convenio"
// @Success      200  {object}  dto.ConvenioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/convenios/{id} [get]
func (h *ConvenioHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.convenios.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar convenio
// @Tags         convenios
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del convenio"
// @Param        body  body  dto.UpdateConvenioRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ConvenioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/convenios/{id} [patch]
func (h *ConvenioHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateConvenioRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.convenios.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateAnexo godoc
// @Summary      Crear anexo
// @Description  Registra una RECEPCION pendiente por cada producto del anexo. El convenio no puede estar vencido.
// @Tags         anexos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAnexoRequest  true  "Datos del anexo"
// @Success      201   {object}  dto.AnexoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/anexos [post]
func (h *ConvenioHandler) CreateAnexo(c *fiber.Ctx) error {
	var in dto.CreateAnexoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.anexos.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAnexos godoc
// @Summary      Listar anexos
// @Tags         anexos
// @Produce      json
// @Param        convenio_id  query  int  false  "Filtrar por convenio"
// @Success      200          {array}  dto.AnexoResponse
// @Router       /api/v1/anexos [get]
func (h *ConvenioHandler) ListAnexos(c *fiber.Ctx) error {
	convenio, err := queryID(c, "convenio_id")
	if err != nil {
		return err
	}
	out, err := h.anexos.List(c.Context(), convenio)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetAnexo godoc
// @Summary      Obtener anexo
// @Tags         anexos
// @Produce      json
// @Param        id   path  int  true  "ID del anexo"
// @Success      200  {object}  dto.AnexoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/anexos/{id} [get]
func (h *ConvenioHandler) GetAnexo(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.anexos.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateAnexo godoc
// @Summary      Actualizar anexo
// @Tags         anexos
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del anexo"
// @Param        body  body  dto.UpdateAnexoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AnexoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/anexos/{id} [patch]
func (h *ConvenioHandler) UpdateAnexo(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateAnexoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.anexos.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteAnexo godoc
// @Summary      Eliminar anexo
// @Tags         anexos
// @Param        id   path  int  true  "ID del anexo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/anexos/{id} [delete]
func (h *ConvenioHandler) DeleteAnexo(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.anexos.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
