package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caguayo/inventario-api/internal/application/analytics"
	"github.com/caguayo/inventario-api/internal/application/convenios"
	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/caguayo/inventario-api/internal/application/ventas"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/infrastructure/export"
	"github.com/caguayo/inventario-api/internal/infrastructure/pdf"
	apihttp "github.com/caguayo/inventario-api/internal/interfaces/http"
	"github.com/caguayo/inventario-api/internal/testutil/memstore"
	"github.com/caguayo/inventario-api/pkg/logger"
)

func nuevaApp(t *testing.T) (*fiber.App, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apihttp.ErrorHandler(log)})
	app.Use(apihttp.RequestID())
	apihttp.Router(app, apihttp.RouterDeps{
		ProductoUC:    usecase.NewProductoUseCase(s.Productos()),
		ClienteUC:     usecase.NewClienteUseCase(s.Clientes(), s.Ventas()),
		DependenciaUC: usecase.NewDependenciaUseCase(s.TxRunner(), s.Dependencias()),
		StockUC:       inventory.NewStockUseCase(s.Movimientos(), s.Productos(), 10),
		MovimientoUC: inventory.NewMovimientoUseCase(
			s.TxRunner(), s.Movimientos(), s.Tipos(), export.NewMovimientosXLSX(), memstore.DependenciaRecepcion),
		AjusteUC: inventory.NewAjusteUseCase(s.TxRunner()),
		VentaUC: ventas.NewVentaUseCase(
			s.TxRunner(), s.Ventas(), s.Clientes(), s.Productos(), pdf.NewComprobanteVentaGenerator("Inventario")),
		ConvenioUC:  convenios.NewConvenioUseCase(s.TxRunner(), s.Convenios()),
		AnexoUC:     convenios.NewAnexoUseCase(s.TxRunner(), s.Anexos(), memstore.DependenciaRecepcion),
		DashboardUC: analytics.NewDashboardUseCase(s.Dashboard(), s.Movimientos(), s.Ventas(), s.Clientes(), 10),
	})
	return app, s
}

func hacer(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func decodificar[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func TestRouter_MovimientoCicloDeVida(t *testing.T) {
	app, s := nuevaApp(t)
	p := &entity.Producto{Nombre: "Azúcar"}
	require.NoError(t, s.Productos().Create(context.Background(), p))

	status, body := hacer(t, app, fiber.MethodPost, "/api/v1/movimientos", dto.CreateMovimientoRequest{
		IDTipoMovimiento: 1, IDProducto: p.ID, Cantidad: 12,
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	m := decodificar[dto.MovimientoResponse](t, body)
	assert.Equal(t, string(entity.EstadoPendiente), m.Estado)
	assert.Equal(t, memstore.DependenciaRecepcion, m.IDDependencia)

	status, body = hacer(t, app, fiber.MethodGet, "/api/v1/movimientos/pendientes", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))

	status, body = hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/"+itoa(m.ID)+"/confirmar", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, string(entity.EstadoConfirmado), decodificar[dto.MovimientoResponse](t, body).Estado)

	status, body = hacer(t, app, fiber.MethodGet, "/api/v1/productos/"+itoa(p.ID)+"/cantidad", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, 12, decodificar[dto.CantidadResponse](t, body).Cantidad)

	status, _ = hacer(t, app, fiber.MethodDelete, "/api/v1/movimientos/"+itoa(m.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = hacer(t, app, fiber.MethodGet, "/api/v1/movimientos/"+itoa(m.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRouter_MovimientoEstadosTerminales(t *testing.T) {
	app, s := nuevaApp(t)
	p := &entity.Producto{Nombre: "Sal"}
	require.NoError(t, s.Productos().Create(context.Background(), p))

	crear := func() int64 {
		status, body := hacer(t, app, fiber.MethodPost, "/api/v1/movimientos", dto.CreateMovimientoRequest{
			IDTipoMovimiento: 1, IDProducto: p.ID, Cantidad: 4,
		})
		require.Equal(t, fiber.StatusCreated, status, string(body))
		return decodificar[dto.MovimientoResponse](t, body).ID
	}

	cancelado := crear()
	status, _ := hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/"+itoa(cancelado)+"/cancelar", nil)
	require.Equal(t, fiber.StatusOK, status)
	status, body := hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/"+itoa(cancelado)+"/confirmar", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decodificar[dto.ErrorResponse](t, body).Code)

	confirmado := crear()
	status, _ = hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/"+itoa(confirmado)+"/confirmar", nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/"+itoa(confirmado)+"/cancelar", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = hacer(t, app, fiber.MethodPut, "/api/v1/movimientos/999/confirmar", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRouter_RutasFijasAntesDeID(t *testing.T) {
	app, _ := nuevaApp(t)

	status, body := hacer(t, app, fiber.MethodGet, "/api/v1/movimientos/tipos", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Len(t, decodificar[[]map[string]any](t, body), 6)

	for _, path := range []string{
		"/api/v1/productos/stock-bajo",
		"/api/v1/productos/agotados",
		"/api/v1/movimientos/recepciones-stock",
		"/api/v1/ventas/mes-actual",
		"/api/v1/dependencias/jerarquia",
		"/api/v1/dashboard/stats",
		"/api/v1/dashboard/ventas-tendencia?dias=3",
	} {
		status, body := hacer(t, app, fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusOK, status, "%s: %s", path, body)
	}
}

func TestRouter_Errores(t *testing.T) {
	app, _ := nuevaApp(t)

	status, body := hacer(t, app, fiber.MethodPost, "/api/v1/movimientos", map[string]any{"id_producto": 1})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decodificar[dto.ErrorResponse](t, body).Code)

	status, _ = hacer(t, app, fiber.MethodGet, "/api/v1/movimientos/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = hacer(t, app, fiber.MethodGet, "/api/v1/ventas/999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decodificar[dto.ErrorResponse](t, body).Code)

	status, body = hacer(t, app, fiber.MethodPost, "/api/v1/movimientos", dto.CreateMovimientoRequest{
		IDTipoMovimiento: 1, IDProducto: 999, Cantidad: 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	e := decodificar[dto.ErrorResponse](t, body)
	assert.Equal(t, "INTEGRITY", e.Code)
	assert.Equal(t, "verifique los datos relacionados", e.Message)
}

func TestRouter_Exportar(t *testing.T) {
	app, _ := nuevaApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/movimientos/exportar", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "movimientos_")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_VentaYComprobante(t *testing.T) {
	app, s := nuevaApp(t)
	p := &entity.Producto{Nombre: "Café"}
	require.NoError(t, s.Productos().Create(context.Background(), p))

	status, body := hacer(t, app, fiber.MethodPost, "/api/v1/ventas", map[string]any{
		"detalles": []map[string]any{{"id_producto": p.ID, "cantidad": 2, "precio_unitario": "4.25"}},
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	v := decodificar[dto.VentaResponse](t, body)
	assert.Equal(t, "8.5", v.Total.String())

	status, body = hacer(t, app, fiber.MethodPost, "/api/v1/ventas/"+itoa(v.ID)+"/confirmar", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/ventas/"+itoa(v.ID)+"/comprobante", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
}
