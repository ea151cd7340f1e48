package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agregados de solo lectura para el tablero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Contadores totales en una sola ida a la base.
func (r *DashboardRepo) Contadores(ctx context.Context) (entity.ContadoresDashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM productos)   AS total_productos,
			(SELECT COUNT(*) FROM ventas)      AS total_ventas,
			(SELECT COUNT(*) FROM clientes)    AS total_clientes,
			(SELECT COUNT(*) FROM categorias)  AS total_categorias,
			(SELECT COUNT(*) FROM monedas)     AS total_monedas,
			(SELECT COUNT(*) FROM movimientos) AS total_movimientos,
			(SELECT COUNT(*) FROM ventas WHERE estado = 'PENDIENTE')  AS ventas_pendientes,
			(SELECT COUNT(*) FROM ventas WHERE estado = 'COMPLETADA') AS ventas_completadas,
			(SELECT COUNT(*) FROM ventas WHERE estado = 'ANULADA')    AS ventas_anuladas,
			(SELECT COALESCE(SUM(total), 0) FROM ventas WHERE estado <> 'ANULADA') AS monto_vendido`
	var c entity.ContadoresDashboard
	if err := pgxscan.Get(ctx, r.q, &c, query); err != nil {
		return c, fmt.Errorf("contadores dashboard: %w", err)
	}
	return c, nil
}

// VentasEntre fecha en [desde, hasta), sin anuladas.
func (r *DashboardRepo) VentasEntre(ctx context.Context, desde, hasta time.Time) (entity.ResumenVentas, error) {
	var res entity.ResumenVentas
	err := pgxscan.Get(ctx, r.q, &res, `
		SELECT COALESCE(SUM(total), 0) AS monto, COUNT(*) AS cantidad
		FROM ventas
		WHERE estado <> 'ANULADA' AND fecha >= $1 AND fecha < $2`, desde, hasta)
	if err != nil {
		return res, fmt.Errorf("ventas entre: %w", err)
	}
	return res, nil
}

// TopProductos por monto vendido en ventas no anuladas.
func (r *DashboardRepo) TopProductos(ctx context.Context, limite int) ([]entity.ProductoVendido, error) {
	var list []entity.ProductoVendido
	err := pgxscan.Select(ctx, r.q, &list, `
		SELECT p.id AS id_producto, p.nombre,
			SUM(d.cantidad)::int AS cantidad_vendida,
			SUM(d.subtotal)      AS monto_total
		FROM detalle_ventas d
		JOIN ventas v    ON v.id = d.id_venta
		JOIN productos p ON p.id = d.id_producto
		WHERE v.estado <> 'ANULADA'
		GROUP BY p.id, p.nombre
		ORDER BY monto_total DESC, p.id
		LIMIT $1`, limite)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	return list, nil
}

// VentasPorDia solo días con ventas; el caso de uso rellena los huecos.
func (r *DashboardRepo) VentasPorDia(ctx context.Context, desde time.Time) ([]entity.VentasDia, error) {
	var list []entity.VentasDia
	err := pgxscan.Select(ctx, r.q, &list, `
		SELECT date_trunc('day', fecha) AS dia, COALESCE(SUM(total), 0) AS monto, COUNT(*)::int AS cantidad
		FROM ventas
		WHERE estado <> 'ANULADA' AND fecha >= $1
		GROUP BY dia
		ORDER BY dia`, desde)
	if err != nil {
		return nil, fmt.Errorf("ventas por dia: %w", err)
	}
	return list, nil
}

// MovimientosPorDia cantidades confirmadas por día y tipo desde la fecha indicada.
func (r *DashboardRepo) MovimientosPorDia(ctx context.Context, desde time.Time) ([]entity.MovimientosDia, error) {
	var list []entity.MovimientosDia
	err := pgxscan.Select(ctx, r.q, &list, `
		SELECT date_trunc('day', m.fecha) AS dia, t.tipo, SUM(m.cantidad)::int AS cantidad
		FROM movimientos m
		JOIN tipos_movimiento t ON t.id = m.id_tipo_movimiento
		WHERE m.estado = 'confirmado' AND m.fecha >= $1
		GROUP BY dia, t.tipo
		ORDER BY dia`, desde)
	if err != nil {
		return nil, fmt.Errorf("movimientos por dia: %w", err)
	}
	return list, nil
}
