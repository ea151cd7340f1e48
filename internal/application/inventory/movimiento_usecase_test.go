package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
)

type exporterFake struct {
	filas int
}

func (e *exporterFake) ExportarMovimientos(movs []*entity.Movimiento) ([]byte, error) {
	e.filas = len(movs)
	return []byte("xlsx"), nil
}

type entorno struct {
	store    *memstore.Store
	mov      *inventory.MovimientoUseCase
	ajuste   *inventory.AjusteUseCase
	stock    *inventory.StockUseCase
	exporter *exporterFake
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	s := memstore.New()
	exp := &exporterFake{}
	return &entorno{
		store:    s,
		mov:      inventory.NewMovimientoUseCase(s.TxRunner(), s.Movimientos(), s.Tipos(), exp, memstore.DependenciaRecepcion),
		ajuste:   inventory.NewAjusteUseCase(s.TxRunner()),
		stock:    inventory.NewStockUseCase(s.Movimientos(), s.Productos(), 10),
		exporter: exp,
	}
}

func (e *entorno) producto(t *testing.T, nombre string) int64 {
	t.Helper()
	p := &entity.Producto{
		Nombre:       nombre,
		PrecioCompra: decimal.NewFromInt(2),
		PrecioVenta:  decimal.NewFromInt(3),
	}
	require.NoError(t, e.store.Productos().Create(context.Background(), p))
	return p.ID
}

func (e *entorno) dependencia(t *testing.T, nombre string) int64 {
	t.Helper()
	d := &entity.Dependencia{Nombre: nombre}
	require.NoError(t, e.store.Dependencias().Create(context.Background(), d))
	return d.ID
}

func (e *entorno) tipo(t *testing.T, etiqueta string) int64 {
	t.Helper()
	tm, err := e.store.Tipos().GetByTipo(context.Background(), etiqueta)
	require.NoError(t, err)
	require.NotNil(t, tm)
	return tm.ID
}

func (e *entorno) movimiento(t *testing.T, tipo string, producto int64, cantidad int, confirmar bool) *dto.MovimientoResponse {
	t.Helper()
	ctx := context.Background()
	m, err := e.mov.Crear(ctx, dto.CreateMovimientoRequest{
		IDTipoMovimiento: e.tipo(t, tipo),
		IDProducto:       producto,
		Cantidad:         cantidad,
	})
	require.NoError(t, err)
	if confirmar {
		m, err = e.mov.Confirmar(ctx, m.ID)
		require.NoError(t, err)
	}
	return m
}

func TestMovimiento_ProyeccionSoloConfirmados(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Arroz")

	e.movimiento(t, entity.TipoRecepcion, p, 50, true)
	e.movimiento(t, entity.TipoRecepcion, p, 30, false)
	cancelado := e.movimiento(t, entity.TipoRecepcion, p, 20, false)
	_, err := e.mov.Cancelar(ctx, cancelado.ID)
	require.NoError(t, err)
	e.movimiento(t, entity.TipoMerma, p, 5, true)

	c, err := e.stock.Cantidad(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 45, c.Cantidad)
}

func TestMovimiento_CantidadSinMovimientos(t *testing.T) {
	e := nuevoEntorno(t)
	p := e.producto(t, "Frijol")

	c, err := e.stock.Cantidad(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Cantidad)

	_, err = e.stock.Cantidad(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_CrearPendienteConCodigo(t *testing.T) {
	e := nuevoEntorno(t)
	p := e.producto(t, "Aceite")
	fecha := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	m, err := e.mov.Crear(context.Background(), dto.CreateMovimientoRequest{
		IDTipoMovimiento: e.tipo(t, entity.TipoRecepcion),
		IDProducto:       p,
		Cantidad:         12,
		Fecha:            &fecha,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.EstadoPendiente), m.Estado)
	assert.Equal(t, memstore.DependenciaRecepcion, m.IDDependencia, "sin dependencia se usa la de recepción")
	assert.Equal(t, entity.TipoRecepcion, m.Tipo)
	assert.Equal(t, 1, m.Factor)
	assert.Equal(t, fmt.Sprintf("2024%d000%d", m.ID, p), m.Codigo)

	guardado, err := e.mov.Obtener(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Codigo, guardado.Codigo)
	assert.Equal(t, "Almacén central", guardado.NombreDependencia)
}

func TestMovimiento_CrearValidaciones(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Sal")

	_, err := e.mov.Crear(ctx, dto.CreateMovimientoRequest{IDTipoMovimiento: e.tipo(t, entity.TipoMerma), IDProducto: p, Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.mov.Crear(ctx, dto.CreateMovimientoRequest{IDTipoMovimiento: 99, IDProducto: p, Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.mov.Crear(ctx, dto.CreateMovimientoRequest{IDTipoMovimiento: e.tipo(t, entity.TipoMerma), IDProducto: 404, Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestMovimiento_ConfirmarCancelar(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Azúcar")
	m := e.movimiento(t, entity.TipoRecepcion, p, 10, true)

	again, err := e.mov.Confirmar(ctx, m.ID)
	require.NoError(t, err, "confirmar dos veces no falla")
	assert.Equal(t, string(entity.EstadoConfirmado), again.Estado)

	_, err = e.mov.Cancelar(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	actual, err := e.mov.Obtener(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.EstadoConfirmado), actual.Estado)

	_, err = e.mov.Confirmar(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_EliminarSinRevertir(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Café")
	m := e.movimiento(t, entity.TipoRecepcion, p, 10, true)

	require.NoError(t, e.mov.Eliminar(ctx, m.ID))
	assert.ErrorIs(t, e.mov.Eliminar(ctx, m.ID), domain.ErrNotFound)

	_, err := e.mov.Obtener(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_ListarFiltros(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	a := e.producto(t, "A")
	b := e.producto(t, "B")
	e.movimiento(t, entity.TipoRecepcion, a, 10, true)
	e.movimiento(t, entity.TipoRecepcion, b, 10, false)
	e.movimiento(t, entity.TipoMerma, a, 1, false)

	out, err := e.mov.Listar(ctx, dto.MovimientoFiltroRequest{Tipo: entity.TipoRecepcion})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, dto.DefaultLimit, out.Page.Limit)

	out, err = e.mov.Listar(ctx, dto.MovimientoFiltroRequest{IDProducto: a})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	pend, err := e.mov.Pendientes(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, pend.Items, 2)

	rec, err := e.mov.RecepcionesStock(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, a, rec.Items[0].IDProducto)

	hoy := time.Now().UTC().Format(dto.DateLayout)
	out, err = e.mov.Listar(ctx, dto.MovimientoFiltroRequest{FechaDesde: hoy, FechaHasta: hoy})
	require.NoError(t, err)
	assert.Len(t, out.Items, 3, "fecha_hasta incluye el día completo")

	_, err = e.mov.Listar(ctx, dto.MovimientoFiltroRequest{Estado: "borrador"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimiento_Exportar(t *testing.T) {
	e := nuevoEntorno(t)
	p := e.producto(t, "Harina")
	for i := 0; i < 3; i++ {
		e.movimiento(t, entity.TipoRecepcion, p, 1, false)
	}

	data, err := e.mov.Exportar(context.Background(), dto.MovimientoFiltroRequest{PageRequest: dto.PageRequest{Limit: 1}})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, 3, e.exporter.filas, "la exportación ignora la paginación")
}

func TestMovimiento_Origen(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p := e.producto(t, "Leche")
	rec := e.movimiento(t, entity.TipoRecepcion, p, 40, true)
	merma := e.movimiento(t, entity.TipoMerma, p, 2, false)

	o, err := e.mov.Origen(ctx, merma.ID)
	require.NoError(t, err)
	require.NotNil(t, o.IDMovimientoOrigen)
	assert.Equal(t, rec.ID, *o.IDMovimientoOrigen)
	assert.Equal(t, rec.Codigo, o.Codigo)

	o, err = e.mov.Origen(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, *o.IDMovimientoOrigen, "una recepción es su propio origen")

	otro := e.producto(t, "Yogur")
	sinOrigen := e.movimiento(t, entity.TipoDonacion, otro, 1, false)
	_, err = e.mov.Origen(ctx, sinOrigen.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_Tipos(t *testing.T) {
	e := nuevoEntorno(t)
	tipos, err := e.mov.Tipos(context.Background())
	require.NoError(t, err)
	require.Len(t, tipos, 6)
	for _, tm := range tipos {
		assert.Contains(t, []int{1, -1}, tm.Factor)
	}
}

func TestStock_StockBajoYAgotados(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	bajo := e.producto(t, "Bajo")
	lleno := e.producto(t, "Lleno")
	agotado := e.producto(t, "Agotado")
	e.movimiento(t, entity.TipoRecepcion, bajo, 10, true)
	e.movimiento(t, entity.TipoRecepcion, lleno, 11, true)
	e.movimiento(t, entity.TipoRecepcion, agotado, 3, true)
	e.movimiento(t, entity.TipoMerma, agotado, 3, true)

	sb, err := e.stock.StockBajo(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sb, 1)
	assert.Equal(t, bajo, sb[0].IDProducto)

	sb, err = e.stock.StockBajo(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, sb, 2)

	ag, err := e.stock.Agotados(ctx)
	require.NoError(t, err)
	require.Len(t, ag, 1)
	assert.Equal(t, agotado, ag[0].IDProducto)
}
