package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
)

var tiposAjuste = inventory.TiposAjuste{
	Quitar:  entity.TipoMovimiento{ID: 5, Tipo: entity.TipoAjusteQuitar, Factor: -1},
	Agregar: entity.TipoMovimiento{ID: 6, Tipo: entity.TipoAjusteAgregar, Factor: 1},
}

func recepcion(estado entity.EstadoMovimiento, cantidad int) *entity.Movimiento {
	return &entity.Movimiento{
		ID:               10,
		IDTipoMovimiento: 1,
		Tipo:             entity.TipoRecepcion,
		Factor:           1,
		IDDependencia:    1,
		IDProducto:       7,
		Cantidad:         cantidad,
		Estado:           estado,
		IDConvenio:       ptr(3),
		IDCliente:        ptr(4),
		PrecioCompra:     decimal.NewNullDecimal(decimal.RequireFromString("2.50")),
	}
}

func TestPlanificarAjuste_Reparto30y20(t *testing.T) {
	origen := recepcion(entity.EstadoConfirmado, 50)
	fecha := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	movs, err := inventory.PlanificarAjuste(origen, []inventory.Destino{
		{IDDependencia: 2, Cantidad: 30},
		{IDDependencia: 3, Cantidad: 20},
	}, tiposAjuste, fecha, "reparto")
	require.NoError(t, err)
	require.Len(t, movs, 3)

	quitar := movs[0]
	assert.Equal(t, entity.TipoAjusteQuitar, quitar.Tipo)
	assert.Equal(t, int64(1), quitar.IDDependencia)
	assert.Equal(t, 50, quitar.Cantidad)

	assert.Equal(t, entity.TipoAjusteAgregar, movs[1].Tipo)
	assert.Equal(t, int64(2), movs[1].IDDependencia)
	assert.Equal(t, 30, movs[1].Cantidad)
	assert.Equal(t, int64(3), movs[2].IDDependencia)
	assert.Equal(t, 20, movs[2].Cantidad)

	neto := 0
	for _, m := range movs {
		assert.Equal(t, entity.EstadoPendiente, m.Estado)
		assert.Equal(t, int64(7), m.IDProducto)
		assert.Equal(t, origen.IDConvenio, m.IDConvenio)
		assert.Equal(t, origen.PrecioCompra, m.PrecioCompra)
		require.NotNil(t, m.IDMovimientoOrigen)
		assert.Equal(t, int64(10), *m.IDMovimientoOrigen)
		assert.Equal(t, fecha, m.Fecha)
		neto += m.Cantidad * m.Factor
	}
	assert.Zero(t, neto, "el ajuste no cambia la cantidad total del producto")
}

func TestPlanificarAjuste_ExcedeOrigen(t *testing.T) {
	_, err := inventory.PlanificarAjuste(recepcion(entity.EstadoConfirmado, 50), []inventory.Destino{
		{IDDependencia: 2, Cantidad: 30},
		{IDDependencia: 3, Cantidad: 21},
	}, tiposAjuste, time.Now(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPlanificarAjuste_OrigenNoConfirmado(t *testing.T) {
	for _, estado := range []entity.EstadoMovimiento{entity.EstadoPendiente, entity.EstadoCancelado} {
		_, err := inventory.PlanificarAjuste(recepcion(estado, 50), []inventory.Destino{
			{IDDependencia: 2, Cantidad: 5},
		}, tiposAjuste, time.Now(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado %s", estado)
	}
}

func TestPlanificarAjuste_DestinosInvalidos(t *testing.T) {
	origen := recepcion(entity.EstadoConfirmado, 50)

	_, err := inventory.PlanificarAjuste(origen, nil, tiposAjuste, time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.PlanificarAjuste(origen, []inventory.Destino{{IDDependencia: 2, Cantidad: 0}}, tiposAjuste, time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
