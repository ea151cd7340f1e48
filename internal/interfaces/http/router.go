package http

import (
	appanalytics "github.com/caguayo/inventario-api/internal/application/analytics"
	"github.com/caguayo/inventario-api/internal/application/convenios"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/caguayo/inventario-api/internal/application/ventas"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC    *usecase.ProductoUseCase
	ClienteUC     *usecase.ClienteUseCase
	DependenciaUC *usecase.DependenciaUseCase
	StockUC       *inventory.StockUseCase
	MovimientoUC  *inventory.MovimientoUseCase
	AjusteUC      *inventory.AjusteUseCase
	VentaUC       *ventas.VentaUseCase
	ConvenioUC    *convenios.ConvenioUseCase
	AnexoUC       *convenios.AnexoUseCase
	DashboardUC   *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API bajo /api/v1.
// Las rutas fijas de cada grupo se registran antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.StockUC)
	productos.Get("/stock-bajo", productoHandler.StockBajo)
	productos.Get("/agotados", productoHandler.Agotados)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id/cantidad", productoHandler.Cantidad)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	movimientos := api.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.AjusteUC)
	movimientos.Get("/tipos", movimientoHandler.Tipos)
	movimientos.Get("/pendientes", movimientoHandler.Pendientes)
	movimientos.Get("/recepciones-stock", movimientoHandler.RecepcionesStock)
	movimientos.Get("/exportar", movimientoHandler.Exportar)
	movimientos.Post("/ajuste", movimientoHandler.Ajuste)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id/origen", movimientoHandler.Origen)
	movimientos.Put("/:id/confirmar", movimientoHandler.Confirmar)
	movimientos.Put("/:id/cancelar", movimientoHandler.Cancelar)
	movimientos.Get("/:id", movimientoHandler.GetByID)
	movimientos.Delete("/:id", movimientoHandler.Delete)

	ventasGroup := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventasGroup.Get("/mes-actual", ventaHandler.MesActual)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Post("/:id/confirmar", ventaHandler.Confirmar)
	ventasGroup.Post("/:id/anular", ventaHandler.Anular)
	ventasGroup.Get("/:id/comprobante", ventaHandler.Comprobante)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Put("/:id", ventaHandler.Update)
	ventasGroup.Delete("/:id", ventaHandler.Delete)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id/ventas", clienteHandler.Ventas)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Delete("/:id", clienteHandler.Delete)

	dependencias := api.Group("/dependencias")
	dependenciaHandler := NewDependenciaHandler(deps.DependenciaUC)
	dependencias.Get("/jerarquia", dependenciaHandler.Jerarquia)
	dependencias.Post("/", dependenciaHandler.Create)
	dependencias.Get("/", dependenciaHandler.List)
	dependencias.Get("/:id", dependenciaHandler.GetByID)
	dependencias.Put("/:id", dependenciaHandler.Update)
	dependencias.Delete("/:id", dependenciaHandler.Delete)

	convenioHandler := NewConvenioHandler(deps.ConvenioUC, deps.AnexoUC)
	conv := api.Group("/convenios")
	conv.Post("/", convenioHandler.Create)
	conv.Get("/", convenioHandler.List)
	conv.Get("/:id", convenioHandler.GetByID)
	conv.Patch("/:id", convenioHandler.Update)

	anexos := api.Group("/anexos")
	anexos.Post("/", convenioHandler.CreateAnexo)
	anexos.Get("/", convenioHandler.ListAnexos)
	anexos.Get("/:id", convenioHandler.GetAnexo)
	anexos.Patch("/:id", convenioHandler.UpdateAnexo)
	anexos.Delete("/:id", convenioHandler.DeleteAnexo)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/ventas-tendencia", dashboardHandler.VentasTendencia)
	dashboard.Get("/movimientos-tendencia", dashboardHandler.MovimientosTendencia)
}
