package repository

import (
	"context"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
)

// DependenciaFiltro filtros del listado de dependencias.
type DependenciaFiltro struct {
	Nombre string
	Limit  int
	Offset int
}

// DependenciaRepository puerto de persistencia para el árbol de dependencias.
type DependenciaRepository interface {
	Create(ctx context.Context, d *entity.Dependencia) error
	GetByID(ctx context.Context, id int64) (*entity.Dependencia, error)
	Update(ctx context.Context, d *entity.Dependencia) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f DependenciaFiltro) ([]*entity.Dependencia, error)
	// Hijos devuelve las dependencias cuyo padre es padreID (raíces si padreID es nil).
	Hijos(ctx context.Context, padreID *int64) ([]*entity.Dependencia, error)
	// Padres carga el mapa id -> padre de todo el árbol.
	Padres(ctx context.Context) (inventory.Padres, error)
}
