package postgres

import (
	"context"
	"fmt"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var _ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)

// TipoMovimientoRepo lectura de tipos_movimiento.
type TipoMovimientoRepo struct {
	q Querier
}

// NewTipoMovimientoRepository construye el adaptador.
func NewTipoMovimientoRepository(q Querier) *TipoMovimientoRepo {
	return &TipoMovimientoRepo{q: q}
}

// List devuelve todos los tipos ordenados por ID.
func (r *TipoMovimientoRepo) List(ctx context.Context) ([]entity.TipoMovimiento, error) {
	var list []entity.TipoMovimiento
	if err := pgxscan.Select(ctx, r.q, &list, `SELECT id, tipo, factor FROM tipos_movimiento ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list tipos movimiento: %w", err)
	}
	return list, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *TipoMovimientoRepo) GetByID(ctx context.Context, id int64) (*entity.TipoMovimiento, error) {
	return r.get(ctx, `SELECT id, tipo, factor FROM tipos_movimiento WHERE id = $1`, id)
}

// GetByTipo busca por etiqueta (RECEPCION, MERMA...).
func (r *TipoMovimientoRepo) GetByTipo(ctx context.Context, tipo string) (*entity.TipoMovimiento, error) {
	return r.get(ctx, `SELECT id, tipo, factor FROM tipos_movimiento WHERE tipo = $1`, tipo)
}

func (r *TipoMovimientoRepo) get(ctx context.Context, query string, arg any) (*entity.TipoMovimiento, error) {
	var t entity.TipoMovimiento
	if err := pgxscan.Get(ctx, r.q, &t, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo movimiento: %w", err)
	}
	return &t, nil
}
