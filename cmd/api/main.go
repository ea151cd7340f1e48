package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/caguayo/inventario-api/internal/application/analytics"
	"github.com/caguayo/inventario-api/internal/application/convenios"
	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/application/usecase"
	"github.com/caguayo/inventario-api/internal/application/ventas"
	infraexport "github.com/caguayo/inventario-api/internal/infrastructure/export"
	infrapdf "github.com/caguayo/inventario-api/internal/infrastructure/pdf"
	"github.com/caguayo/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/caguayo/inventario-api/internal/interfaces/http"
	"github.com/caguayo/inventario-api/pkg/config"
	"github.com/caguayo/inventario-api/pkg/logger"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Migrations.AutoRun {
		migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if err := migrator.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	dependenciaRepo := postgres.NewDependenciaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	tipoRepo := postgres.NewTipoMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	convenioRepo := postgres.NewConvenioRepository(pool)
	anexoRepo := postgres.NewAnexoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	umbral := cfg.Inventario.UmbralStockBajo
	recepcion := cfg.Inventario.DependenciaRecepcion

	// XLSX para /movimientos/exportar y PDF para /ventas/:id/comprobante
	xlsx := infraexport.NewMovimientosXLSX()
	comprobantes := infrapdf.NewComprobanteVentaGenerator(cfg.App.Name)

	deps := httpRouter.RouterDeps{
		ProductoUC:    usecase.NewProductoUseCase(productoRepo),
		ClienteUC:     usecase.NewClienteUseCase(clienteRepo, ventaRepo),
		DependenciaUC: usecase.NewDependenciaUseCase(txRunner, dependenciaRepo),
		StockUC:       inventory.NewStockUseCase(movimientoRepo, productoRepo, umbral),
		MovimientoUC:  inventory.NewMovimientoUseCase(txRunner, movimientoRepo, tipoRepo, xlsx, recepcion),
		AjusteUC:      inventory.NewAjusteUseCase(txRunner),
		VentaUC:       ventas.NewVentaUseCase(txRunner, ventaRepo, clienteRepo, productoRepo, comprobantes),
		ConvenioUC:    convenios.NewConvenioUseCase(txRunner, convenioRepo),
		AnexoUC:       convenios.NewAnexoUseCase(txRunner, anexoRepo, recepcion),
		DashboardUC:   appanalytics.NewDashboardUseCase(dashboardRepo, movimientoRepo, ventaRepo, clienteRepo, umbral),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: no existe el archivo")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": cfg.App.Name, "database": "unreachable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "database": "ok"})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
