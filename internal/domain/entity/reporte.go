package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContadoresDashboard totales generales para el tablero.
type ContadoresDashboard struct {
	TotalProductos    int             `db:"total_productos"`
	TotalVentas       int             `db:"total_ventas"`
	TotalClientes     int             `db:"total_clientes"`
	TotalCategorias   int             `db:"total_categorias"`
	TotalMonedas      int             `db:"total_monedas"`
	TotalMovimientos  int             `db:"total_movimientos"`
	VentasPendientes  int             `db:"ventas_pendientes"`
	VentasCompletadas int             `db:"ventas_completadas"`
	VentasAnuladas    int             `db:"ventas_anuladas"`
	MontoVendido      decimal.Decimal `db:"monto_vendido"` // excluye anuladas
}

// ResumenVentas monto y cantidad de ventas no anuladas en un rango.
type ResumenVentas struct {
	Monto    decimal.Decimal `db:"monto"`
	Cantidad int             `db:"cantidad"`
}

// ProductoVendido agregado de ventas por producto.
type ProductoVendido struct {
	IDProducto      int64           `db:"id_producto"`
	Nombre          string          `db:"nombre"`
	CantidadVendida int             `db:"cantidad_vendida"`
	MontoTotal      decimal.Decimal `db:"monto_total"`
}

// VentasDia punto de la serie diaria de ventas.
type VentasDia struct {
	Dia      time.Time       `db:"dia"`
	Monto    decimal.Decimal `db:"monto"`
	Cantidad int             `db:"cantidad"`
}

// MovimientosDia cantidad confirmada por día y tipo.
type MovimientosDia struct {
	Dia      time.Time `db:"dia"`
	Tipo     string    `db:"tipo"`
	Cantidad int       `db:"cantidad"`
}
