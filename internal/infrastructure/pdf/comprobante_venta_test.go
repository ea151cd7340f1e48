package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarComprobante(t *testing.T) {
	g := NewComprobanteVentaGenerator("Inventario Caguayo")
	venta := &entity.Venta{
		ID:          12,
		Fecha:       time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		Estado:      entity.VentaCompletada,
		Observacion: "entrega en almacén",
		Detalles: []entity.DetalleVenta{
			{IDProducto: 1, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(10)},
			{IDProducto: 2, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(5)},
		},
	}
	venta.CalcularTotales()
	cliente := &entity.Cliente{Nombre: "Cliente Uno", CedulaRif: "V-123"}
	productos := map[int64]*entity.Producto{1: {ID: 1, Nombre: "Arroz"}}

	out, err := g.GenerarComprobante(context.Background(), venta, cliente, productos)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	out, err = g.GenerarComprobante(context.Background(), venta, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMonto(t *testing.T) {
	g := NewComprobanteVentaGenerator("x")
	assert.Equal(t, "$1.234.567,50", g.monto(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "$40,00", g.monto(decimal.NewFromInt(40)))
}
