package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario.
// Stock es el contador que mueven las ventas; la cantidad disponible por movimientos
// se calcula aparte (ver inventory.CantidadDisponible) y no se almacena.
type Producto struct {
	ID             int64           `db:"id"`
	Codigo         *string         `db:"codigo"` // único si está presente
	Nombre         string          `db:"nombre"`
	Descripcion    string          `db:"descripcion"`
	IDSubcategoria *int64          `db:"id_subcategoria"`
	IDMonedaCompra *int64          `db:"id_moneda_compra"`
	PrecioCompra   decimal.Decimal `db:"precio_compra"`
	IDMonedaVenta  *int64          `db:"id_moneda_venta"`
	PrecioVenta    decimal.Decimal `db:"precio_venta"`
	PrecioMinimo   decimal.Decimal `db:"precio_minimo"`
	Stock          int             `db:"stock"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// CantidadProducto cantidad proyectada de un producto junto con sus precios.
type CantidadProducto struct {
	IDProducto   int64           `db:"id_producto"`
	Nombre       string          `db:"nombre"`
	Cantidad     int             `db:"cantidad"`
	PrecioCompra decimal.Decimal `db:"precio_compra"`
	PrecioVenta  decimal.Decimal `db:"precio_venta"`
}
