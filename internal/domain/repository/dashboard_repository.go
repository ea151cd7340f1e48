package repository

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// DashboardRepository consultas de solo lectura para el tablero.
// Las ventas ANULADAS no suman montos.
type DashboardRepository interface {
	Contadores(ctx context.Context) (entity.ContadoresDashboard, error)
	// VentasEntre resume las ventas con fecha en [desde, hasta).
	VentasEntre(ctx context.Context, desde, hasta time.Time) (entity.ResumenVentas, error)
	TopProductos(ctx context.Context, limite int) ([]entity.ProductoVendido, error)
	VentasPorDia(ctx context.Context, desde time.Time) ([]entity.VentasDia, error)
	// MovimientosPorDia solo movimientos confirmados.
	MovimientosPorDia(ctx context.Context, desde time.Time) ([]entity.MovimientosDia, error)
}
