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

var (
	_ repository.ConvenioRepository = (*ConvenioRepo)(nil)
	_ repository.AnexoRepository    = (*AnexoRepo)(nil)
)

const (
	convenioColumns = `id, id_cliente, nombre_convenio, fecha, vigencia, id_tipo_convenio`
	anexoColumns    = `id, id_convenio, nombre_anexo, fecha, numero_anexo, id_dependencia, comision`
)

// ConvenioRepo convenios sobre PostgreSQL.
type ConvenioRepo struct {
	q Querier
}

// NewConvenioRepository construye el adaptador.
func NewConvenioRepository(q Querier) *ConvenioRepo {
	return &ConvenioRepo{q: q}
}

// Create inserta el convenio y asigna c.ID.
func (r *ConvenioRepo) Create(ctx context.Context, c *entity.Convenio) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO convenios (id_cliente, nombre_convenio, fecha, vigencia, id_tipo_convenio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.IDCliente, c.NombreConvenio, c.Fecha, c.Vigencia, c.IDTipoConvenio,
	).Scan(&c.ID)
	if err != nil {
		return wrapErr("insert convenio", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ConvenioRepo) GetByID(ctx context.Context, id int64) (*entity.Convenio, error) {
	var c entity.Convenio
	if err := pgxscan.Get(ctx, r.q, &c, `SELECT `+convenioColumns+` FROM convenios WHERE id = $1`, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get convenio: %w", err)
	}
	return &c, nil
}

// Update guarda todos los campos del convenio.
func (r *ConvenioRepo) Update(ctx context.Context, c *entity.Convenio) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE convenios SET id_cliente = $2, nombre_convenio = $3, fecha = $4, vigencia = $5, id_tipo_convenio = $6
		WHERE id = $1`,
		c.ID, c.IDCliente, c.NombreConvenio, c.Fecha, c.Vigencia, c.IDTipoConvenio)
	if err != nil {
		return wrapErr("update convenio", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("convenio no encontrado")
	}
	return nil
}

// List convenios más recientes primero, opcionalmente de un cliente.
func (r *ConvenioRepo) List(ctx context.Context, idCliente *int64) ([]*entity.Convenio, error) {
	q := psql.Select(convenioColumns).From("convenios").OrderBy("fecha DESC", "id DESC")
	if idCliente != nil {
		q = q.Where(squirrel.Eq{"id_cliente": *idCliente})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list convenios: %w", err)
	}
	var list []*entity.Convenio
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list convenios: %w", err)
	}
	return list, nil
}

// AnexoRepo anexos y anexo_productos sobre PostgreSQL.
type AnexoRepo struct {
	q Querier
}

// NewAnexoRepository construye el adaptador.
func NewAnexoRepository(q Querier) *AnexoRepo {
	return &AnexoRepo{q: q}
}

// Create inserta el anexo y sus productos. Debe ejecutarse dentro de una tx.
func (r *AnexoRepo) Create(ctx context.Context, a *entity.Anexo) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO anexos (id_convenio, nombre_anexo, fecha, numero_anexo, id_dependencia, comision)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		a.IDConvenio, a.NombreAnexo, a.Fecha, a.NumeroAnexo, a.IDDependencia, a.Comision,
	).Scan(&a.ID)
	if err != nil {
		return wrapErr("insert anexo", err)
	}
	for i := range a.Productos {
		p := &a.Productos[i]
		p.IDAnexo = a.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO anexo_productos (id_anexo, id_producto, cantidad, precio_compra, id_moneda_compra)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			p.IDAnexo, p.IDProducto, p.Cantidad, p.PrecioCompra, p.IDMonedaCompra,
		).Scan(&p.ID)
		if err != nil {
			return wrapErr("insert anexo producto", err)
		}
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *AnexoRepo) GetByID(ctx context.Context, id int64) (*entity.Anexo, error) {
	var a entity.Anexo
	if err := pgxscan.Get(ctx, r.q, &a, `SELECT `+anexoColumns+` FROM anexos WHERE id = $1`, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get anexo: %w", err)
	}
	if err := pgxscan.Select(ctx, r.q, &a.Productos, `
		SELECT id, id_anexo, id_producto, cantidad, precio_compra, id_moneda_compra
		FROM anexo_productos WHERE id_anexo = $1 ORDER BY id`, id); err != nil {
		return nil, fmt.Errorf("get anexo productos: %w", err)
	}
	return &a, nil
}

// Update guarda la cabecera del anexo.
func (r *AnexoRepo) Update(ctx context.Context, a *entity.Anexo) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE anexos SET nombre_anexo = $2, fecha = $3, numero_anexo = $4, id_dependencia = $5, comision = $6
		WHERE id = $1`,
		a.ID, a.NombreAnexo, a.Fecha, a.NumeroAnexo, a.IDDependencia, a.Comision)
	if err != nil {
		return wrapErr("update anexo", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("anexo no encontrado")
	}
	return nil
}

// Delete borra el anexo; sus productos caen por ON DELETE CASCADE.
func (r *AnexoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM anexos WHERE id = $1`, id); err != nil {
		return wrapErr("delete anexo", err)
	}
	return nil
}

// List cabeceras sin productos.
func (r *AnexoRepo) List(ctx context.Context, idConvenio *int64) ([]*entity.Anexo, error) {
	q := psql.Select(anexoColumns).From("anexos").OrderBy("fecha DESC", "id DESC")
	if idConvenio != nil {
		q = q.Where(squirrel.Eq{"id_convenio": *idConvenio})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list anexos: %w", err)
	}
	var list []*entity.Anexo
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list anexos: %w", err)
	}
	return list, nil
}
