package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /dashboard/stats.
type DashboardStatsDTO struct {
	TotalProductos   int `json:"total_productos"`
	TotalVentas      int `json:"total_ventas"`
	TotalClientes    int `json:"total_clientes"`
	TotalCategorias  int `json:"total_categorias"`
	TotalMonedas     int `json:"total_monedas"`
	TotalMovimientos int `json:"total_movimientos"`

	VentasHoy                   decimal.Decimal `json:"ventas_hoy"`
	VentasHoyCantidad           int             `json:"ventas_hoy_cantidad"`
	VentasAyer                  decimal.Decimal `json:"ventas_ayer"`
	VentasCrecimientoPorcentaje decimal.Decimal `json:"ventas_crecimiento_porcentaje"`

	VentasPendientes  int             `json:"ventas_pendientes"`
	VentasCompletadas int             `json:"ventas_completadas"`
	VentasAnuladas    int             `json:"ventas_anuladas"`
	TicketPromedio    decimal.Decimal `json:"ticket_promedio"` // monto vendido / ventas no anuladas

	ProductosStockBajo    []ProductoCantidadDTO `json:"productos_stock_bajo"`
	ProductosAgotados     int                   `json:"productos_agotados"`
	ValorInventarioCompra decimal.Decimal       `json:"valor_inventario_compra"`
	ValorInventarioVenta  decimal.Decimal       `json:"valor_inventario_venta"`

	UltimasVentas     []VentaResponse   `json:"ultimas_ventas"`
	ClientesRecientes []ClienteResponse `json:"clientes_recientes"`
	TopProductos      []TopProductoDTO  `json:"top_productos"`
}

// TopProductoDTO producto más vendido; Porcentaje es su parte del monto vendido total.
type TopProductoDTO struct {
	IDProducto      int64           `json:"id_producto"`
	Nombre          string          `json:"nombre"`
	CantidadVendida int             `json:"cantidad_vendida"`
	MontoTotal      decimal.Decimal `json:"monto_total"`
	Porcentaje      decimal.Decimal `json:"porcentaje"`
}

// VentasTendenciaDTO serie diaria de ventas (un punto por día, días sin ventas en cero).
type VentasTendenciaDTO struct {
	Fechas     []string          `json:"fechas"`
	Montos     []decimal.Decimal `json:"montos"`
	Cantidades []int             `json:"cantidades"`
}

// MovimientosTendenciaDTO serie diaria de cantidades confirmadas por tipo.
type MovimientosTendenciaDTO struct {
	Fechas       []string `json:"fechas"`
	Recepciones  []int    `json:"recepciones"`
	Mermas       []int    `json:"mermas"`
	Donaciones   []int    `json:"donaciones"`
	Devoluciones []int    `json:"devoluciones"`
}
