package http

import (
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// DependenciaHandler maneja las dependencias y su jerarquía.
type DependenciaHandler struct {
	uc *usecase.DependenciaUseCase
}

// NewDependenciaHandler construye el handler.
func NewDependenciaHandler(uc *usecase.DependenciaUseCase) *DependenciaHandler {
	return &DependenciaHandler{uc: uc}
}

// List godoc
// @Summary      Listar dependencias
// @Tags         dependencias
// @Produce      json
// @Param        nombre  query  string  false  "Filtro por nombre (contiene)"
// @Param        skip    query  int     false  "Desplazamiento"  default(0)
// @Param        limit   query  int     false  "Límite"          default(20)
// @Success      200     {array}  dto.DependenciaResponse
// @Router       /api/v1/dependencias [get]
func (h *DependenciaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := parseQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), c.Query("nombre"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Jerarquia godoc
// @Summary      Árbol de dependencias
// @Description  Sin padre_id devuelve las raíces.
// @Tags         dependencias
// @Produce      json
// @Param        padre_id  query  int  false  "Raíz del subárbol"
// @Success      200       {array}  dto.DependenciaNodoResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/v1/dependencias/jerarquia [get]
func (h *DependenciaHandler) Jerarquia(c *fiber.Ctx) error {
	padre, err := queryID(c, "padre_id")
	if err != nil {
		return err
	}
	out, err := h.uc.Jerarquia(c.Context(), padre)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dependencia
// @Tags         dependencias
// @Produce      json
// @Param        id   path  int  true  "ID de la dependencia"
// @Success      200  {object}  dto.DependenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/dependencias/{id} [get]
func (h *DependenciaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear dependencia
// @Tags         dependencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDependenciaRequest  true  "Datos de la dependencia"
// @Success      201   {object}  dto.DependenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/dependencias [post]
func (h *DependenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDependenciaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar dependencia
// @Description  Rechaza un cambio de padre que forme un ciclo.
// @Tags         dependencias
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la dependencia"
// @Param        body  body  dto.UpdateDependenciaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DependenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/dependencias/{id} [put]
func (h *DependenciaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateDependenciaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dependencia
// @Tags         dependencias
// @Param        id   path  int  true  "ID de la dependencia"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/dependencias/{id} [delete]
func (h *DependenciaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
