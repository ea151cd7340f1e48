package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoSelect = `m.id, m.id_tipo_movimiento, t.tipo, t.factor, m.id_dependencia,
	COALESCE(d.nombre, '') AS nombre_dependencia, m.id_producto, m.cantidad, m.fecha, m.observacion,
	m.estado, m.codigo, m.id_convenio, m.id_anexo, m.id_cliente, m.id_moneda_compra, m.id_moneda_venta,
	m.precio_compra, m.precio_venta, m.id_movimiento_origen, m.created_at`

const movimientoFrom = `movimientos m
	JOIN tipos_movimiento t ON t.id = m.id_tipo_movimiento
	LEFT JOIN dependencias d ON d.id = m.id_dependencia`

// MovimientoRepo libro de movimientos sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta el movimiento; Tipo y Factor se completan desde tipos_movimiento.
func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	query := `
		WITH ins AS (
			INSERT INTO movimientos (id_tipo_movimiento, id_dependencia, id_producto, cantidad, fecha,
				observacion, estado, codigo, id_convenio, id_anexo, id_cliente, id_moneda_compra,
				id_moneda_venta, precio_compra, precio_venta, id_movimiento_origen)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id, id_tipo_movimiento, created_at
		)
		SELECT ins.id, ins.created_at, t.tipo, t.factor
		FROM ins JOIN tipos_movimiento t ON t.id = ins.id_tipo_movimiento`
	err := r.q.QueryRow(ctx, query,
		m.IDTipoMovimiento, m.IDDependencia, m.IDProducto, m.Cantidad, m.Fecha,
		m.Observacion, string(m.Estado), m.Codigo, m.IDConvenio, m.IDAnexo, m.IDCliente, m.IDMonedaCompra,
		m.IDMonedaVenta, m.PrecioCompra, m.PrecioVenta, m.IDMovimientoOrigen,
	).Scan(&m.ID, &m.CreatedAt, &m.Tipo, &m.Factor)
	if err != nil {
		return wrapErr("insert movimiento", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id int64) (*entity.Movimiento, error) {
	return r.get(ctx, `SELECT `+movimientoSelect+` FROM `+movimientoFrom+` WHERE m.id = $1`, id)
}

// GetForUpdate bloquea solo la fila de movimientos.
func (r *MovimientoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Movimiento, error) {
	return r.get(ctx, `SELECT `+movimientoSelect+` FROM `+movimientoFrom+` WHERE m.id = $1 FOR UPDATE OF m`, id)
}

func (r *MovimientoRepo) get(ctx context.Context, query string, args ...any) (*entity.Movimiento, error) {
	var m entity.Movimiento
	if err := pgxscan.Get(ctx, r.q, &m, query, args...); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ActualizarCodigo guarda el código generado tras el insert.
func (r *MovimientoRepo) ActualizarCodigo(ctx context.Context, id int64, codigo string) error {
	if _, err := r.q.Exec(ctx, `UPDATE movimientos SET codigo = $2 WHERE id = $1`, id, codigo); err != nil {
		return wrapErr("update codigo movimiento", err)
	}
	return nil
}

// ActualizarEstado persiste la transición ya validada por la entidad.
func (r *MovimientoRepo) ActualizarEstado(ctx context.Context, id int64, estado entity.EstadoMovimiento) error {
	if _, err := r.q.Exec(ctx, `UPDATE movimientos SET estado = $2 WHERE id = $1`, id, string(estado)); err != nil {
		return wrapErr("update estado movimiento", err)
	}
	return nil
}

// Delete borra la fila. Los ajustes derivados conservan su registro (id_movimiento_origen pasa a NULL).
func (r *MovimientoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete movimiento", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List aplica los filtros presentes; más recientes primero.
func (r *MovimientoRepo) List(ctx context.Context, f repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	q := psql.Select(movimientoSelect).From(movimientoFrom).OrderBy("m.fecha DESC", "m.id DESC")
	if f.Tipo != "" {
		q = q.Where(squirrel.Eq{"t.tipo": f.Tipo})
	}
	if f.Estado != "" {
		q = q.Where(squirrel.Eq{"m.estado": string(f.Estado)})
	}
	if f.IDProducto != nil {
		q = q.Where(squirrel.Eq{"m.id_producto": *f.IDProducto})
	}
	if f.IDDependencia != nil {
		q = q.Where(squirrel.Eq{"m.id_dependencia": *f.IDDependencia})
	}
	if f.FechaDesde != nil {
		q = q.Where(squirrel.GtOrEq{"m.fecha": *f.FechaDesde})
	}
	if f.FechaHasta != nil {
		q = q.Where(squirrel.Lt{"m.fecha": *f.FechaHasta})
	}
	sql, args, err := paginate(q, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movimientos: %w", err)
	}
	var list []*entity.Movimiento
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	return list, nil
}

// CantidadDisponible Σ cantidad * factor sobre movimientos confirmados del producto.
func (r *MovimientoRepo) CantidadDisponible(ctx context.Context, idProducto int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(m.cantidad * t.factor), 0)::int
		FROM movimientos m JOIN tipos_movimiento t ON t.id = m.id_tipo_movimiento
		WHERE m.id_producto = $1 AND m.estado = 'confirmado'`, idProducto).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("cantidad disponible: %w", err)
	}
	return total, nil
}

// Cantidades proyección por producto; los productos sin movimientos confirmados quedan en 0.
func (r *MovimientoRepo) Cantidades(ctx context.Context) ([]entity.CantidadProducto, error) {
	query := `
		SELECT p.id AS id_producto, p.nombre, p.precio_compra, p.precio_venta,
			COALESCE(SUM(m.cantidad * t.factor) FILTER (WHERE m.estado = 'confirmado'), 0)::int AS cantidad
		FROM productos p
		LEFT JOIN movimientos m ON m.id_producto = p.id
		LEFT JOIN tipos_movimiento t ON t.id = m.id_tipo_movimiento
		GROUP BY p.id, p.nombre, p.precio_compra, p.precio_venta
		ORDER BY p.nombre, p.id`
	var list []entity.CantidadProducto
	if err := pgxscan.Select(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("cantidades: %w", err)
	}
	return list, nil
}

// UltimaRecepcionConfirmada recepción confirmada más reciente del producto; nil si no hay.
func (r *MovimientoRepo) UltimaRecepcionConfirmada(ctx context.Context, idProducto int64) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoSelect + ` FROM ` + movimientoFrom + `
		WHERE m.id_producto = $1 AND t.tipo = $2 AND m.estado = 'confirmado'
		ORDER BY m.fecha DESC, m.id DESC
		LIMIT 1`
	return r.get(ctx, query, idProducto, entity.TipoRecepcion)
}

// ContarPorDependencia movimientos registrados en la dependencia, en cualquier estado.
func (r *MovimientoRepo) ContarPorDependencia(ctx context.Context, idDependencia int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos WHERE id_dependencia = $1`, idDependencia).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar movimientos por dependencia: %w", err)
	}
	return n, nil
}
