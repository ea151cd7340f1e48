package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, id_cliente, fecha, total, estado, observacion, fecha_registro, fecha_actualizacion`

// VentaRepo ventas y detalle_ventas sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create inserta cabecera y líneas. Debe ejecutarse dentro de una tx.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ventas (id_cliente, fecha, total, estado, observacion, fecha_registro, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		v.IDCliente, v.Fecha, v.Total, string(v.Estado), v.Observacion, v.FechaRegistro, v.FechaActualizacion,
	).Scan(&v.ID)
	if err != nil {
		return wrapErr("insert venta", err)
	}
	for i := range v.Detalles {
		d := &v.Detalles[i]
		d.IDVenta = v.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO detalle_ventas (id_venta, id_producto, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			d.IDVenta, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.Subtotal,
		).Scan(&d.ID)
		if err != nil {
			return wrapErr("insert detalle venta", err)
		}
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, id int64) (*entity.Venta, error) {
	return r.get(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE id = $1`, id)
}

// GetForUpdate como GetByID pero bloquea la fila de ventas hasta el fin de la tx.
func (r *VentaRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Venta, error) {
	return r.get(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE id = $1 FOR UPDATE`, id)
}

func (r *VentaRepo) get(ctx context.Context, query string, id int64) (*entity.Venta, error) {
	var v entity.Venta
	if err := pgxscan.Get(ctx, r.q, &v, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	if err := pgxscan.Select(ctx, r.q, &v.Detalles, `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario, subtotal
		FROM detalle_ventas WHERE id_venta = $1 ORDER BY id`, id); err != nil {
		return nil, fmt.Errorf("get detalle venta: %w", err)
	}
	return &v, nil
}

// Update guarda la cabecera; las líneas no se modifican.
func (r *VentaRepo) Update(ctx context.Context, v *entity.Venta) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE ventas SET id_cliente = $2, fecha = $3, observacion = $4, estado = $5, fecha_actualizacion = $6
		WHERE id = $1`,
		v.ID, v.IDCliente, v.Fecha, v.Observacion, string(v.Estado), v.FechaActualizacion)
	if err != nil {
		return wrapErr("update venta", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("venta no encontrada")
	}
	return nil
}

// Delete borra las líneas y luego la cabecera. El stock lo repone el caso de uso.
func (r *VentaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM detalle_ventas WHERE id_venta = $1`, id); err != nil {
		return wrapErr("delete detalle venta", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id); err != nil {
		return wrapErr("delete venta", err)
	}
	return nil
}

// List cabeceras filtradas, más recientes primero.
func (r *VentaRepo) List(ctx context.Context, f repository.VentaFiltro) ([]*entity.Venta, error) {
	q := psql.Select(ventaColumns).From("ventas").OrderBy("fecha DESC", "id DESC")
	if f.Estado != "" {
		q = q.Where(squirrel.Eq{"estado": string(f.Estado)})
	}
	if f.IDCliente != nil {
		q = q.Where(squirrel.Eq{"id_cliente": *f.IDCliente})
	}
	if f.FechaDesde != nil {
		q = q.Where(squirrel.GtOrEq{"fecha": *f.FechaDesde})
	}
	if f.FechaHasta != nil {
		q = q.Where(squirrel.Lt{"fecha": *f.FechaHasta})
	}
	sql, args, err := paginate(q, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ventas: %w", err)
	}
	var list []*entity.Venta
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	return list, nil
}

// ContarPorCliente ventas asociadas al cliente, en cualquier estado.
func (r *VentaRepo) ContarPorCliente(ctx context.Context, idCliente int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ventas WHERE id_cliente = $1`, idCliente).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar ventas por cliente: %w", err)
	}
	return n, nil
}
