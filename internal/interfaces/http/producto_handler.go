package http

import (
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// ProductoHandler maneja las peticiones HTTP de productos y su cantidad proyectada.
type ProductoHandler struct {
	uc    *usecase.ProductoUseCase
	stock *inventory.StockUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, stock *inventory.StockUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        busqueda  query  string  false  "Texto en nombre o código"
// @Param        skip      query  int     false  "Desplazamiento"  default(0)
// @Param        limit     query  int     false  "Límite"          default(20)
// @Success      200       {object}  dto.ProductoListResponse
// @Router       /api/v1/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := parseQuery(c, &page); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), c.Query("busqueda"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateProductoRequest
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
// @Summary      Eliminar producto
// @Description  Falla con 400 si hay movimientos o ventas que lo referencian.
// @Tags         productos
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cantidad godoc
// @Summary      Cantidad disponible
// @Description  Suma de cantidad*factor de los movimientos confirmados del producto.
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CantidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/productos/{id}/cantidad [get]
func (h *ProductoHandler) Cantidad(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.stock.Cantidad(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// StockBajo godoc
// @Summary      Productos con stock bajo
// @Tags         productos
// @Produce      json
// @Param        umbral  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200     {array}  dto.ProductoCantidadDTO
// @Router       /api/v1/productos/stock-bajo [get]
func (h *ProductoHandler) StockBajo(c *fiber.Ctx) error {
	umbral := c.QueryInt("umbral", 0)
	if umbral < 0 {
		return badRequest("INVALID_QUERY", "umbral inválido")
	}
	out, err := h.stock.StockBajo(c.Context(), umbral)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Agotados godoc
// @Summary      Productos agotados
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoCantidadDTO
// @Router       /api/v1/productos/agotados [get]
func (h *ProductoHandler) Agotados(c *fiber.Ctx) error {
	out, err := h.stock.Agotados(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
