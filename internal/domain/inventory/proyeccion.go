package inventory

import (
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UmbralStockBajoPorDefecto cantidad a partir de la cual un producto se considera con stock bajo.
const UmbralStockBajoPorDefecto = 10

// CantidadDisponible suma cantidad*factor de los movimientos confirmados.
// Pendientes y cancelados no cuentan. Sin movimientos confirmados devuelve 0.
func CantidadDisponible(movs []*entity.Movimiento) int {
	total := 0
	for _, m := range movs {
		if m.Estado != entity.EstadoConfirmado {
			continue
		}
		total += m.Cantidad * m.Factor
	}
	return total
}

// ValorInventario devuelve Σ cantidad*precio a precio de compra y a precio de venta.
// Las cantidades negativas no suman valor.
func ValorInventario(cantidades []entity.CantidadProducto) (compra, venta decimal.Decimal) {
	compra, venta = decimal.Zero, decimal.Zero
	for _, c := range cantidades {
		if c.Cantidad <= 0 {
			continue
		}
		q := decimal.NewFromInt(int64(c.Cantidad))
		compra = compra.Add(q.Mul(c.PrecioCompra))
		venta = venta.Add(q.Mul(c.PrecioVenta))
	}
	return compra.Round(2), venta.Round(2)
}

// StockBajo filtra los productos con 0 < cantidad <= umbral.
func StockBajo(cantidades []entity.CantidadProducto, umbral int) []entity.CantidadProducto {
	out := make([]entity.CantidadProducto, 0)
	for _, c := range cantidades {
		if c.Cantidad > 0 && c.Cantidad <= umbral {
			out = append(out, c)
		}
	}
	return out
}

// Agotados filtra los productos sin existencias (cantidad <= 0).
func Agotados(cantidades []entity.CantidadProducto) []entity.CantidadProducto {
	out := make([]entity.CantidadProducto, 0)
	for _, c := range cantidades {
		if c.Cantidad <= 0 {
			out = append(out, c)
		}
	}
	return out
}
