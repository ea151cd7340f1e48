package convenios_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/convenios"
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
)

type fixture struct {
	store    *memstore.Store
	convenio *convenios.ConvenioUseCase
	anexo    *convenios.AnexoUseCase
	cliente  int64
	producto int64
}

func nuevoFixture(t *testing.T) *fixture {
	t.Helper()
	s := memstore.New()
	ctx := context.Background()
	c := &entity.Cliente{Nombre: "Cooperativa Sur", Activo: true}
	require.NoError(t, s.Clientes().Create(ctx, c))
	p := &entity.Producto{Nombre: "Tomate"}
	require.NoError(t, s.Productos().Create(ctx, p))
	return &fixture{
		store:    s,
		convenio: convenios.NewConvenioUseCase(s.TxRunner(), s.Convenios()),
		anexo:    convenios.NewAnexoUseCase(s.TxRunner(), s.Anexos(), memstore.DependenciaRecepcion),
		cliente:  c.ID,
		producto: p.ID,
	}
}

func (f *fixture) nuevoConvenio(t *testing.T, vigencia time.Time) int64 {
	t.Helper()
	c, err := f.convenio.Create(context.Background(), dto.CreateConvenioRequest{
		IDCliente:      f.cliente,
		NombreConvenio: "Suministro anual",
		Fecha:          vigencia.AddDate(-1, 0, 0).Format(dto.DateLayout),
		Vigencia:       vigencia.Format(dto.DateLayout),
	})
	require.NoError(t, err)
	return c.ID
}

func TestConvenio_CrearYActualizar(t *testing.T) {
	f := nuevoFixture(t)
	ctx := context.Background()

	_, err := f.convenio.Create(ctx, dto.CreateConvenioRequest{
		IDCliente: f.cliente, NombreConvenio: "X", Fecha: "2024-05-01", Vigencia: "2024-04-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "vigencia anterior a la fecha")

	id := f.nuevoConvenio(t, time.Now().AddDate(0, 1, 0))
	c, err := f.convenio.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, c.Vigente)

	vencida := time.Now().AddDate(0, 0, -1).Format(dto.DateLayout)
	c, err = f.convenio.Update(ctx, id, dto.UpdateConvenioRequest{Vigencia: &vencida})
	require.NoError(t, err)
	assert.False(t, c.Vigente)

	list, err := f.convenio.List(ctx, &f.cliente)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAnexo_CrearGeneraRecepcionesPendientes(t *testing.T) {
	f := nuevoFixture(t)
	ctx := context.Background()
	convenio := f.nuevoConvenio(t, time.Now().AddDate(0, 6, 0))

	a, err := f.anexo.Create(ctx, dto.CreateAnexoRequest{
		IDConvenio:  convenio,
		NombreAnexo: "Primera entrega",
		Fecha:       time.Now().Format(dto.DateLayout),
		NumeroAnexo: "A-1",
		Productos: []dto.AnexoProductoRequest{
			{IDProducto: f.producto, Cantidad: 100, PrecioCompra: decimal.RequireFromString("0.80")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, memstore.DependenciaRecepcion, a.IDDependencia)
	require.Len(t, a.Movimientos, 1)

	m, err := f.store.Movimientos().GetByID(ctx, a.Movimientos[0])
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, entity.TipoRecepcion, m.Tipo)
	assert.Equal(t, entity.EstadoPendiente, m.Estado)
	assert.Equal(t, 100, m.Cantidad)
	assert.Equal(t, convenio, *m.IDConvenio)
	assert.Equal(t, a.ID, *m.IDAnexo)
	assert.Equal(t, f.cliente, *m.IDCliente)
	assert.Equal(t, "0.8", m.PrecioCompra.Decimal.String())
	assert.NotEmpty(t, m.Codigo)

	err = f.anexo.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrIntegrity, "un anexo con movimientos no se borra")
}

func TestAnexo_ConvenioVencidoSeRechaza(t *testing.T) {
	f := nuevoFixture(t)
	ctx := context.Background()
	convenio := f.nuevoConvenio(t, time.Now().AddDate(0, 0, -1))

	_, err := f.anexo.Create(ctx, dto.CreateAnexoRequest{
		IDConvenio:  convenio,
		NombreAnexo: "Tardío",
		Fecha:       time.Now().Format(dto.DateLayout),
		NumeroAnexo: "A-2",
		Productos:   []dto.AnexoProductoRequest{{IDProducto: f.producto, Cantidad: 5}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	anexos, err := f.anexo.List(ctx, &convenio)
	require.NoError(t, err)
	assert.Empty(t, anexos)
	movs, err := f.store.Movimientos().List(ctx, repository.MovimientoFiltro{})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestAnexo_ActualizarYEliminar(t *testing.T) {
	f := nuevoFixture(t)
	ctx := context.Background()
	convenio := f.nuevoConvenio(t, time.Now().AddDate(0, 6, 0))
	a, err := f.anexo.Create(ctx, dto.CreateAnexoRequest{
		IDConvenio:  convenio,
		NombreAnexo: "Sin productos",
		Fecha:       "2024-01-10",
		NumeroAnexo: "A-3",
	})
	require.NoError(t, err)
	assert.Empty(t, a.Movimientos)

	nombre := "Renombrado"
	out, err := f.anexo.Update(ctx, a.ID, dto.UpdateAnexoRequest{NombreAnexo: &nombre})
	require.NoError(t, err)
	assert.Equal(t, nombre, out.NombreAnexo)

	require.NoError(t, f.anexo.Delete(ctx, a.ID))
	_, err = f.anexo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
