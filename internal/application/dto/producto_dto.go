package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Codigo         *string         `json:"codigo" validate:"omitempty,min=1,max=50"`
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string          `json:"descripcion" validate:"max=1000"`
	IDSubcategoria *int64          `json:"id_subcategoria" validate:"omitempty,gt=0"`
	IDMonedaCompra *int64          `json:"id_moneda_compra" validate:"omitempty,gt=0"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	IDMonedaVenta  *int64          `json:"id_moneda_venta" validate:"omitempty,gt=0"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	PrecioMinimo   decimal.Decimal `json:"precio_minimo"`
}

// UpdateProductoRequest actualización parcial: solo se aplican los campos presentes.
type UpdateProductoRequest struct {
	Codigo         *string          `json:"codigo" validate:"omitempty,min=1,max=50"`
	Nombre         *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion    *string          `json:"descripcion" validate:"omitempty,max=1000"`
	IDSubcategoria *int64           `json:"id_subcategoria" validate:"omitempty,gt=0"`
	IDMonedaCompra *int64           `json:"id_moneda_compra" validate:"omitempty,gt=0"`
	PrecioCompra   *decimal.Decimal `json:"precio_compra"`
	IDMonedaVenta  *int64           `json:"id_moneda_venta" validate:"omitempty,gt=0"`
	PrecioVenta    *decimal.Decimal `json:"precio_venta"`
	PrecioMinimo   *decimal.Decimal `json:"precio_minimo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID             int64           `json:"id"`
	Codigo         *string         `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	IDSubcategoria *int64          `json:"id_subcategoria"`
	IDMonedaCompra *int64          `json:"id_moneda_compra"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	IDMonedaVenta  *int64          `json:"id_moneda_venta"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	PrecioMinimo   decimal.Decimal `json:"precio_minimo"`
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CantidadResponse cantidad disponible de un producto según el libro de movimientos.
type CantidadResponse struct {
	IDProducto int64 `json:"id_producto"`
	Cantidad   int   `json:"cantidad"`
}

// ProductoCantidadDTO producto con su cantidad proyectada (stock bajo / agotados).
type ProductoCantidadDTO struct {
	IDProducto   int64           `json:"id_producto"`
	Nombre       string          `json:"nombre"`
	Cantidad     int             `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
}
