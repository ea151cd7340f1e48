package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.DependenciaRepository = (*DependenciaRepo)(nil)

const dependenciaColumns = `id, id_tipo_dependencia, codigo_padre, nombre, direccion, telefono, email, web,
	descripcion, id_provincia, id_municipio`

// DependenciaRepo árbol de dependencias sobre PostgreSQL.
type DependenciaRepo struct {
	q Querier
}

// NewDependenciaRepository construye el adaptador.
func NewDependenciaRepository(q Querier) *DependenciaRepo {
	return &DependenciaRepo{q: q}
}

// Create inserta la dependencia y asigna d.ID.
func (r *DependenciaRepo) Create(ctx context.Context, d *entity.Dependencia) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO dependencias (id_tipo_dependencia, codigo_padre, nombre, direccion, telefono, email, web,
			descripcion, id_provincia, id_municipio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		d.IDTipoDependencia, d.CodigoPadre, d.Nombre, d.Direccion, d.Telefono, d.Email, d.Web,
		d.Descripcion, d.IDProvincia, d.IDMunicipio,
	).Scan(&d.ID)
	if err != nil {
		return wrapErr("insert dependencia", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *DependenciaRepo) GetByID(ctx context.Context, id int64) (*entity.Dependencia, error) {
	var d entity.Dependencia
	if err := pgxscan.Get(ctx, r.q, &d, `SELECT `+dependenciaColumns+` FROM dependencias WHERE id = $1`, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dependencia: %w", err)
	}
	return &d, nil
}

// Update guarda todos los campos, incluido codigo_padre.
func (r *DependenciaRepo) Update(ctx context.Context, d *entity.Dependencia) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE dependencias SET id_tipo_dependencia = $2, codigo_padre = $3, nombre = $4, direccion = $5,
			telefono = $6, email = $7, web = $8, descripcion = $9, id_provincia = $10, id_municipio = $11
		WHERE id = $1`,
		d.ID, d.IDTipoDependencia, d.CodigoPadre, d.Nombre, d.Direccion,
		d.Telefono, d.Email, d.Web, d.Descripcion, d.IDProvincia, d.IDMunicipio)
	if err != nil {
		return wrapErr("update dependencia", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("dependencia no encontrada")
	}
	return nil
}

// Delete borra la dependencia; con hijos, movimientos o anexos devuelve ErrIntegrity.
func (r *DependenciaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM dependencias WHERE id = $1`, id); err != nil {
		return wrapErr("delete dependencia", err)
	}
	return nil
}

// List ordenado por nombre con búsqueda parcial sin distinguir mayúsculas.
func (r *DependenciaRepo) List(ctx context.Context, f repository.DependenciaFiltro) ([]*entity.Dependencia, error) {
	q := psql.Select(dependenciaColumns).From("dependencias").OrderBy("nombre", "id")
	if f.Nombre != "" {
		q = q.Where(squirrel.ILike{"nombre": "%" + f.Nombre + "%"})
	}
	return r.selectList(ctx, paginate(q, f.Limit, f.Offset))
}

// Hijos con padreID nil devuelve las raíces.
func (r *DependenciaRepo) Hijos(ctx context.Context, padreID *int64) ([]*entity.Dependencia, error) {
	q := psql.Select(dependenciaColumns).From("dependencias").OrderBy("nombre", "id")
	if padreID == nil {
		q = q.Where(squirrel.Eq{"codigo_padre": nil})
	} else {
		q = q.Where(squirrel.Eq{"codigo_padre": *padreID})
	}
	return r.selectList(ctx, q)
}

func (r *DependenciaRepo) selectList(ctx context.Context, q squirrel.SelectBuilder) ([]*entity.Dependencia, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dependencias: %w", err)
	}
	var list []*entity.Dependencia
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list dependencias: %w", err)
	}
	return list, nil
}

// Padres carga id -> codigo_padre de todas las dependencias.
func (r *DependenciaRepo) Padres(ctx context.Context) (inventory.Padres, error) {
	rows, err := r.q.Query(ctx, `SELECT id, codigo_padre FROM dependencias`)
	if err != nil {
		return nil, fmt.Errorf("padres dependencias: %w", err)
	}
	defer rows.Close()

	padres := make(inventory.Padres)
	for rows.Next() {
		var id int64
		var padre *int64
		if err := rows.Scan(&id, &padre); err != nil {
			return nil, fmt.Errorf("scan padre: %w", err)
		}
		padres[id] = padre
	}
	return padres, rows.Err()
}
