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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, id_subcategoria, id_moneda_compra, precio_compra,
	id_moneda_venta, precio_venta, precio_minimo, stock, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto con stock 0 y asigna su ID.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (codigo, nombre, descripcion, id_subcategoria, id_moneda_compra, precio_compra,
			id_moneda_venta, precio_venta, precio_minimo, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Codigo, p.Nombre, p.Descripcion, p.IDSubcategoria, p.IDMonedaCompra, p.PrecioCompra,
		p.IDMonedaVenta, p.PrecioVenta, p.PrecioMinimo, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("Ya existe un producto con el código indicado")
		}
		return wrapErr("insert producto", err)
	}
	p.Stock = 0
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(ctx, `SELECT `+productoColumns+` FROM productos WHERE id = $1`, id).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.IDSubcategoria, &p.IDMonedaCompra, &p.PrecioCompra,
		&p.IDMonedaVenta, &p.PrecioVenta, &p.PrecioMinimo, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos del producto. No modifica el stock.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, descripcion = $4, id_subcategoria = $5,
			id_moneda_compra = $6, precio_compra = $7, id_moneda_venta = $8, precio_venta = $9,
			precio_minimo = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.IDSubcategoria,
		p.IDMonedaCompra, p.PrecioCompra, p.IDMonedaVenta, p.PrecioVenta,
		p.PrecioMinimo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("Ya existe un producto con el código indicado")
		}
		return wrapErr("update producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("producto no encontrado")
	}
	return nil
}

// Delete elimina un producto. Con movimientos o ventas asociados falla con ErrIntegrity.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return wrapErr("delete producto", err)
	}
	return nil
}

// List lista productos por nombre con búsqueda opcional.
func (r *ProductoRepo) List(ctx context.Context, f repository.ProductoFiltro) ([]*entity.Producto, error) {
	q := psql.Select(productoColumns).From("productos").OrderBy("nombre", "id")
	if f.Busqueda != "" {
		pattern := "%" + f.Busqueda + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"nombre": pattern},
			squirrel.ILike{"codigo": pattern},
		})
	}
	sql, args, err := paginate(q, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list productos: %w", err)
	}
	var list []*entity.Producto
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	return list, nil
}

// AjustarStock suma delta al stock en una sola sentencia; la fila queda bloqueada hasta el fin de la tx.
func (r *ProductoRepo) AjustarStock(ctx context.Context, id int64, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET stock = stock + $2, updated_at = now() WHERE id = $1`, id, delta)
	if err != nil {
		return wrapErr("ajustar stock", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound(fmt.Sprintf("producto %d no encontrado", id))
	}
	return nil
}
