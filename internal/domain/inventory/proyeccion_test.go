package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
)

func mov(estado entity.EstadoMovimiento, factor, cantidad int) *entity.Movimiento {
	return &entity.Movimiento{Estado: estado, Factor: factor, Cantidad: cantidad}
}

func TestCantidadDisponible_SoloConfirmados(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.EstadoConfirmado, 1, 50),
		mov(entity.EstadoPendiente, 1, 100),
		mov(entity.EstadoCancelado, 1, 7),
		mov(entity.EstadoConfirmado, -1, 8),
		mov(entity.EstadoPendiente, -1, 3),
	}
	assert.Equal(t, 42, inventory.CantidadDisponible(movs))
}

func TestCantidadDisponible_SinMovimientos(t *testing.T) {
	assert.Equal(t, 0, inventory.CantidadDisponible(nil))
}

func TestValorInventario(t *testing.T) {
	cantidades := []entity.CantidadProducto{
		{IDProducto: 1, Cantidad: 3, PrecioCompra: decimal.RequireFromString("2.00"), PrecioVenta: decimal.RequireFromString("10.00")},
		{IDProducto: 2, Cantidad: 2, PrecioCompra: decimal.RequireFromString("1.25"), PrecioVenta: decimal.RequireFromString("5.00")},
		{IDProducto: 3, Cantidad: -4, PrecioCompra: decimal.RequireFromString("9.99"), PrecioVenta: decimal.RequireFromString("9.99")},
	}
	compra, venta := inventory.ValorInventario(cantidades)
	assert.True(t, compra.Equal(decimal.RequireFromString("8.50")), compra.String())
	assert.True(t, venta.Equal(decimal.RequireFromString("40.00")), venta.String())
}

func TestStockBajoYAgotados(t *testing.T) {
	cantidades := []entity.CantidadProducto{
		{IDProducto: 1, Cantidad: 0},
		{IDProducto: 2, Cantidad: 5},
		{IDProducto: 3, Cantidad: 10},
		{IDProducto: 4, Cantidad: 11},
	}
	bajo := inventory.StockBajo(cantidades, inventory.UmbralStockBajoPorDefecto)
	if assert.Len(t, bajo, 2) {
		assert.Equal(t, int64(2), bajo[0].IDProducto)
		assert.Equal(t, int64(3), bajo[1].IDProducto)
	}
	agotados := inventory.Agotados(cantidades)
	if assert.Len(t, agotados, 1) {
		assert.Equal(t, int64(1), agotados[0].IDProducto)
	}
}
