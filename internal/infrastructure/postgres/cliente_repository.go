package postgres

import (
	"context"
	"fmt"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, telefono, email, cedula_rif, direccion, activo, fecha_registro`

// ClienteRepo clientes sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create inserta el cliente y asigna c.ID.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO clientes (nombre, telefono, email, cedula_rif, direccion, activo, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		c.Nombre, c.Telefono, c.Email, c.CedulaRif, c.Direccion, c.Activo, c.FechaRegistro,
	).Scan(&c.ID)
	if err != nil {
		return wrapErr("insert cliente", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	var c entity.Cliente
	if err := pgxscan.Get(ctx, r.q, &c, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List más recientes primero.
func (r *ClienteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	q := psql.Select(clienteColumns).From("clientes").OrderBy("fecha_registro DESC", "id DESC")
	sql, args, err := paginate(q, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clientes: %w", err)
	}
	var list []*entity.Cliente
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return list, nil
}

// Delete borra el cliente; con ventas o convenios asociados devuelve ErrIntegrity.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id); err != nil {
		return wrapErr("delete cliente", err)
	}
	return nil
}
