package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
)

func TestVenta_CalcularTotalesIgnoraSubtotalRecibido(t *testing.T) {
	v := &entity.Venta{Detalles: []entity.DetalleVenta{
		{IDProducto: 1, Cantidad: 3, PrecioUnitario: decimal.RequireFromString("10.00"), Subtotal: decimal.NewFromInt(999)},
		{IDProducto: 2, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("5.00")},
	}}
	v.CalcularTotales()

	assert.True(t, v.Detalles[0].Subtotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, v.Detalles[1].Subtotal.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "40.00", v.Total.StringFixed(2))
}

func TestVenta_CalcularTotalesSinDerivaDecimal(t *testing.T) {
	v := &entity.Venta{Detalles: []entity.DetalleVenta{
		{Cantidad: 3, PrecioUnitario: decimal.RequireFromString("0.10")},
		{Cantidad: 1, PrecioUnitario: decimal.RequireFromString("0.20")},
	}}
	v.CalcularTotales()
	assert.Equal(t, "0.50", v.Total.StringFixed(2))
}

func TestVenta_Transiciones(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	v := &entity.Venta{Estado: entity.VentaPendiente}

	require.NoError(t, v.VerificarEditable())
	require.NoError(t, v.Confirmar(now))
	assert.Equal(t, entity.VentaCompletada, v.Estado)
	assert.Equal(t, now, v.FechaActualizacion)

	err := v.Confirmar(now)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Solo se pueden confirmar ventas en estado PENDIENTE", err.Error())
	assert.ErrorIs(t, v.VerificarEditable(), domain.ErrInvalidInput)
	assert.True(t, v.DebeReponerStock())

	reponer, err := v.Anular(now)
	require.NoError(t, err)
	assert.True(t, reponer, "anular una venta completada repone stock")
	assert.Equal(t, entity.VentaAnulada, v.Estado)

	_, err = v.Anular(now)
	require.Error(t, err)
	assert.Equal(t, "La venta ya está anulada", err.Error())
}

func TestVenta_AnularPendienteNoRepone(t *testing.T) {
	v := &entity.Venta{Estado: entity.VentaPendiente}
	reponer, err := v.Anular(time.Now())
	require.NoError(t, err)
	assert.False(t, reponer)
	assert.False(t, v.DebeReponerStock())
}
