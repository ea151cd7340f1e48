package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
)

func contarMovimientos(t *testing.T, e *entorno) int {
	t.Helper()
	out, err := e.mov.Listar(context.Background(), dto.MovimientoFiltroRequest{PageRequest: dto.PageRequest{Limit: 100}})
	require.NoError(t, err)
	return len(out.Items)
}

func TestAjuste_RepartoRecepcion(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Jabón")
	a := e.dependencia(t, "Sucursal A")
	b := e.dependencia(t, "Sucursal B")
	rec := e.movimiento(t, entity.TipoRecepcion, p, 50, true)

	resumen, err := e.ajuste.CrearAjuste(ctx, dto.AjusteRequest{
		IDMovimientoOrigen: rec.ID,
		Destinos: []dto.DestinoAjusteRequest{
			{IDDependencia: a, Cantidad: 30},
			{IDDependencia: b, Cantidad: 20},
		},
	})
	require.NoError(t, err)
	require.Len(t, resumen, 3)

	assert.Equal(t, entity.TipoAjusteQuitar, resumen[0].Tipo)
	assert.Equal(t, 50, resumen[0].Cantidad)
	assert.Equal(t, rec.IDDependencia, resumen[0].IDDependencia)
	assert.Equal(t, "Almacén central", resumen[0].NombreDependencia)

	assert.Equal(t, entity.TipoAjusteAgregar, resumen[1].Tipo)
	assert.Equal(t, 30, resumen[1].Cantidad)
	assert.Equal(t, "Sucursal A", resumen[1].NombreDependencia)
	assert.Equal(t, 20, resumen[2].Cantidad)
	assert.Equal(t, b, resumen[2].IDDependencia)

	for _, r := range resumen {
		m, err := e.mov.Obtener(ctx, r.IDMovimiento)
		require.NoError(t, err)
		assert.Equal(t, string(entity.EstadoPendiente), m.Estado)
		assert.Equal(t, p, m.IDProducto)
		require.NotNil(t, m.IDMovimientoOrigen)
		assert.Equal(t, rec.ID, *m.IDMovimientoOrigen)
	}

	c, err := e.stock.Cantidad(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 50, c.Cantidad, "los ajustes pendientes no mueven la cantidad")
}

func TestAjuste_Rechazos(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Detergente")
	a := e.dependencia(t, "Sucursal A")
	rec := e.movimiento(t, entity.TipoRecepcion, p, 50, true)
	pendiente := e.movimiento(t, entity.TipoRecepcion, p, 10, false)
	antes := contarMovimientos(t, e)

	_, err := e.ajuste.CrearAjuste(ctx, dto.AjusteRequest{
		IDMovimientoOrigen: rec.ID,
		Destinos:           []dto.DestinoAjusteRequest{{IDDependencia: a, Cantidad: 60}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "excede")

	_, err = e.ajuste.CrearAjuste(ctx, dto.AjusteRequest{
		IDMovimientoOrigen: pendiente.ID,
		Destinos:           []dto.DestinoAjusteRequest{{IDDependencia: a, Cantidad: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.ajuste.CrearAjuste(ctx, dto.AjusteRequest{
		IDMovimientoOrigen: 9999,
		Destinos:           []dto.DestinoAjusteRequest{{IDDependencia: a, Cantidad: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, antes, contarMovimientos(t, e))
}

func TestAjuste_RollbackSiFallaUnDestino(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Pasta")
	a := e.dependencia(t, "Sucursal A")
	rec := e.movimiento(t, entity.TipoRecepcion, p, 50, true)
	antes := contarMovimientos(t, e)

	_, err := e.ajuste.CrearAjuste(ctx, dto.AjusteRequest{
		IDMovimientoOrigen: rec.ID,
		Destinos: []dto.DestinoAjusteRequest{
			{IDDependencia: a, Cantidad: 30},
			{IDDependencia: 777, Cantidad: 20},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Equal(t, antes, contarMovimientos(t, e), "ningún movimiento del ajuste queda registrado")
}
