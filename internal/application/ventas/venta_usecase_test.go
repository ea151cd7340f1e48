package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ventas"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
)

type comprobanteFake struct {
	venta     *entity.Venta
	cliente   *entity.Cliente
	productos map[int64]*entity.Producto
}

func (f *comprobanteFake) GenerarComprobante(_ context.Context, v *entity.Venta, c *entity.Cliente, p map[int64]*entity.Producto) ([]byte, error) {
	f.venta, f.cliente, f.productos = v, c, p
	return []byte("%PDF-fake"), nil
}

func nuevoVentaUC(t *testing.T) (*ventas.VentaUseCase, *memstore.Store, *comprobanteFake) {
	t.Helper()
	s := memstore.New()
	fake := &comprobanteFake{}
	return ventas.NewVentaUseCase(s.TxRunner(), s.Ventas(), s.Clientes(), s.Productos(), fake), s, fake
}

func nuevoProducto(t *testing.T, s *memstore.Store, nombre string) int64 {
	t.Helper()
	p := &entity.Producto{Nombre: nombre}
	require.NoError(t, s.Productos().Create(context.Background(), p))
	return p.ID
}

func stock(t *testing.T, s *memstore.Store, id int64) int {
	t.Helper()
	p, err := s.Productos().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func ventaDeEjemplo(t *testing.T, uc *ventas.VentaUseCase, a, b int64) *dto.VentaResponse {
	t.Helper()
	ignorado := decimal.NewFromInt(999)
	v, err := uc.Crear(context.Background(), dto.CreateVentaRequest{
		Detalles: []dto.DetalleVentaRequest{
			{IDProducto: a, Cantidad: 3, PrecioUnitario: decimal.RequireFromString("10.00"), Subtotal: &ignorado},
			{IDProducto: b, Cantidad: 2, PrecioUnitario: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)
	return v
}

func TestVenta_CrearCalculaTotal(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")

	v := ventaDeEjemplo(t, uc, a, b)

	assert.Equal(t, string(entity.VentaPendiente), v.Estado)
	assert.Equal(t, "40.00", v.Total.StringFixed(2))
	require.Len(t, v.Detalles, 2)
	assert.Equal(t, "30.00", v.Detalles[0].Subtotal.StringFixed(2))
	assert.Equal(t, 0, stock(t, s, a), "crear no toca el stock")
}

func TestVenta_CrearSinLineas(t *testing.T) {
	uc, _, _ := nuevoVentaUC(t)
	_, err := uc.Crear(context.Background(), dto.CreateVentaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVenta_ConfirmarYAnular(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	ctx := context.Background()
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	require.NoError(t, s.Productos().AjustarStock(ctx, a, 10))
	require.NoError(t, s.Productos().AjustarStock(ctx, b, 10))
	v := ventaDeEjemplo(t, uc, a, b)

	out, err := uc.Confirmar(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.VentaCompletada), out.Estado)
	assert.Equal(t, 7, stock(t, s, a))
	assert.Equal(t, 8, stock(t, s, b))

	_, err = uc.Confirmar(ctx, v.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 7, stock(t, s, a), "una segunda confirmación no descuenta")

	out, err = uc.Anular(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.VentaAnulada), out.Estado)
	assert.Equal(t, 10, stock(t, s, a))
	assert.Equal(t, 10, stock(t, s, b))

	_, err = uc.Anular(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVenta_AnularPendienteNoReponeStock(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	v := ventaDeEjemplo(t, uc, a, b)

	_, err := uc.Anular(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock(t, s, a))
}

func TestVenta_ConfirmarPermiteStockNegativo(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	v := ventaDeEjemplo(t, uc, a, b)

	_, err := uc.Confirmar(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, stock(t, s, a))
}

func TestVenta_Actualizar(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	ctx := context.Background()
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	v := ventaDeEjemplo(t, uc, a, b)

	obs := "entregar el lunes"
	out, err := uc.Actualizar(ctx, v.ID, dto.UpdateVentaRequest{Observacion: &obs})
	require.NoError(t, err)
	assert.Equal(t, obs, out.Observacion)
	assert.Equal(t, string(entity.VentaPendiente), out.Estado)

	completada := string(entity.VentaCompletada)
	out, err = uc.Actualizar(ctx, v.ID, dto.UpdateVentaRequest{Estado: &completada})
	require.NoError(t, err)
	assert.Equal(t, completada, out.Estado)
	assert.Equal(t, -3, stock(t, s, a), "pasar a COMPLETADA por edición descuenta stock")

	_, err = uc.Actualizar(ctx, v.ID, dto.UpdateVentaRequest{Observacion: &obs})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo se editan ventas pendientes")
}

func TestVenta_EliminarCompletadaReponeStock(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	ctx := context.Background()
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	v := ventaDeEjemplo(t, uc, a, b)
	_, err := uc.Confirmar(ctx, v.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(ctx, v.ID))
	assert.Equal(t, 0, stock(t, s, a))
	assert.Equal(t, 0, stock(t, s, b))

	_, err = uc.Obtener(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Eliminar(ctx, v.ID), domain.ErrNotFound)
}

func TestVenta_ListarYMesActual(t *testing.T) {
	uc, s, _ := nuevoVentaUC(t)
	ctx := context.Background()
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	v1 := ventaDeEjemplo(t, uc, a, b)
	ventaDeEjemplo(t, uc, a, b)
	_, err := uc.Confirmar(ctx, v1.ID)
	require.NoError(t, err)

	out, err := uc.Listar(ctx, dto.VentaFiltroRequest{Estado: string(entity.VentaCompletada)})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, v1.ID, out.Items[0].ID)

	mes, err := uc.MesActual(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mes.Items, 2)

	_, err = uc.Listar(ctx, dto.VentaFiltroRequest{Estado: "CERRADA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVenta_Comprobante(t *testing.T) {
	uc, s, fake := nuevoVentaUC(t)
	ctx := context.Background()
	a := nuevoProducto(t, s, "A")
	b := nuevoProducto(t, s, "B")
	cliente := &entity.Cliente{Nombre: "Bodega La Esquina", Activo: true}
	require.NoError(t, s.Clientes().Create(ctx, cliente))
	v, err := uc.Crear(ctx, dto.CreateVentaRequest{
		IDCliente: &cliente.ID,
		Detalles: []dto.DetalleVentaRequest{
			{IDProducto: a, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(4)},
			{IDProducto: b, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(6)},
			{IDProducto: a, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(4)},
		},
	})
	require.NoError(t, err)

	pdf, err := uc.Comprobante(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, fake.cliente)
	assert.Equal(t, "Bodega La Esquina", fake.cliente.Nombre)
	assert.Len(t, fake.productos, 2)
	assert.Len(t, fake.venta.Detalles, 3)

	_, err = uc.Comprobante(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
