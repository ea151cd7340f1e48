package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/analytics"
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCrecimiento(t *testing.T) {
	tests := []struct {
		name      string
		hoy, ayer decimal.Decimal
		want      string
	}{
		{"sin ventas", decimal.Zero, decimal.Zero, "0"},
		{"sin ventas ayer", d("50"), decimal.Zero, "100"},
		{"duplica", d("200"), d("100"), "100"},
		{"cae", d("75"), d("100"), "-25"},
		{"redondea", d("10"), d("3"), "233.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.Crecimiento(tt.hoy, tt.ayer).String())
		})
	}
}

func nuevoDashboard(s *memstore.Store) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(s.Dashboard(), s.Movimientos(), s.Ventas(), s.Clientes(), 0)
}

func TestDashboard_Stats(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	ahora := time.Now()

	arroz := &entity.Producto{Nombre: "Arroz", PrecioCompra: d("1"), PrecioVenta: d("2")}
	require.NoError(t, s.Productos().Create(ctx, arroz))
	aceite := &entity.Producto{Nombre: "Aceite", PrecioVenta: d("5")}
	require.NoError(t, s.Productos().Create(ctx, aceite))
	require.NoError(t, s.Movimientos().Create(ctx, &entity.Movimiento{
		IDTipoMovimiento: 1,
		IDDependencia:    memstore.DependenciaRecepcion,
		IDProducto:       arroz.ID,
		Cantidad:         4,
		Fecha:            ahora,
		Estado:           entity.EstadoConfirmado,
	}))

	venta := func(estado entity.EstadoVenta, fecha time.Time, total string, prod int64) {
		t.Helper()
		require.NoError(t, s.Ventas().Create(ctx, &entity.Venta{
			Fecha:  fecha,
			Total:  d(total),
			Estado: estado,
			Detalles: []entity.DetalleVenta{
				{IDProducto: prod, Cantidad: 1, PrecioUnitario: d(total), Subtotal: d(total)},
			},
		}))
	}
	venta(entity.VentaCompletada, ahora, "30", arroz.ID)
	venta(entity.VentaPendiente, ahora, "10", aceite.ID)
	venta(entity.VentaCompletada, ahora.AddDate(0, 0, -1), "20", arroz.ID)
	venta(entity.VentaAnulada, ahora, "999", aceite.ID)

	out, err := nuevoDashboard(s).Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalProductos)
	assert.Equal(t, 4, out.TotalVentas)
	assert.Equal(t, 1, out.TotalMovimientos)
	assert.Equal(t, 2, out.VentasCompletadas)
	assert.Equal(t, 1, out.VentasPendientes)
	assert.Equal(t, 1, out.VentasAnuladas)
	assert.Equal(t, "40", out.VentasHoy.String(), "las anuladas no cuentan")
	assert.Equal(t, 2, out.VentasHoyCantidad)
	assert.Equal(t, "20", out.VentasAyer.String())
	assert.Equal(t, "100", out.VentasCrecimientoPorcentaje.String())
	assert.Equal(t, "20", out.TicketPromedio.String(), "60 / 3 ventas no anuladas")

	require.Len(t, out.ProductosStockBajo, 1)
	assert.Equal(t, arroz.ID, out.ProductosStockBajo[0].IDProducto)
	assert.Equal(t, 4, out.ProductosStockBajo[0].Cantidad)
	assert.Equal(t, 1, out.ProductosAgotados)
	assert.Equal(t, "4", out.ValorInventarioCompra.String())
	assert.Equal(t, "8", out.ValorInventarioVenta.String())

	require.NotEmpty(t, out.TopProductos)
	assert.Equal(t, arroz.ID, out.TopProductos[0].IDProducto)
	assert.Equal(t, "50", out.TopProductos[0].MontoTotal.String())
	assert.Len(t, out.UltimasVentas, 4)
}

func TestDashboard_VentasTendencia(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	require.NoError(t, s.Ventas().Create(ctx, &entity.Venta{
		Fecha: time.Now(), Total: d("12.5"), Estado: entity.VentaCompletada,
	}))
	uc := nuevoDashboard(s)

	out, err := uc.VentasTendencia(ctx, 0)
	require.NoError(t, err)
	require.Len(t, out.Fechas, 7)
	assert.Equal(t, time.Now().Format(dto.DateLayout), out.Fechas[6])
	assert.Equal(t, "12.5", out.Montos[6].String())
	assert.Equal(t, 1, out.Cantidades[6])
	assert.True(t, out.Montos[0].IsZero())

	out, err = uc.VentasTendencia(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, out.Fechas, 365)
}

func TestDashboard_MovimientosTendencia(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	p := &entity.Producto{Nombre: "Harina"}
	require.NoError(t, s.Productos().Create(ctx, p))
	mov := func(tipo int64, cantidad int, estado entity.EstadoMovimiento) {
		t.Helper()
		require.NoError(t, s.Movimientos().Create(ctx, &entity.Movimiento{
			IDTipoMovimiento: tipo,
			IDDependencia:    memstore.DependenciaRecepcion,
			IDProducto:       p.ID,
			Cantidad:         cantidad,
			Fecha:            time.Now(),
			Estado:           estado,
		}))
	}
	mov(1, 20, entity.EstadoConfirmado)
	mov(1, 99, entity.EstadoPendiente)
	mov(2, 3, entity.EstadoConfirmado)

	out, err := nuevoDashboard(s).MovimientosTendencia(ctx, 3)
	require.NoError(t, err)
	require.Len(t, out.Fechas, 3)
	assert.Equal(t, []int{0, 0, 20}, out.Recepciones)
	assert.Equal(t, []int{0, 0, 3}, out.Mermas)
	assert.Equal(t, []int{0, 0, 0}, out.Donaciones)
}
