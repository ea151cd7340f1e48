package repository

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// MovimientoFiltro filtros del listado de movimientos (todos opcionales).
type MovimientoFiltro struct {
	Tipo          string
	Estado        entity.EstadoMovimiento
	IDProducto    *int64
	IDDependencia *int64
	FechaDesde    *time.Time
	FechaHasta    *time.Time
	Limit         int
	Offset        int
}

// MovimientoRepository puerto de persistencia del libro de movimientos.
// Los métodos de lectura devuelven Tipo, Factor y NombreDependencia resueltos.
type MovimientoRepository interface {
	// Create inserta el movimiento y asigna ID y CreatedAt.
	Create(ctx context.Context, m *entity.Movimiento) error
	GetByID(ctx context.Context, id int64) (*entity.Movimiento, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) hasta el fin de la tx.
	GetForUpdate(ctx context.Context, id int64) (*entity.Movimiento, error)
	ActualizarCodigo(ctx context.Context, id int64, codigo string) error
	ActualizarEstado(ctx context.Context, id int64, estado entity.EstadoMovimiento) error
	// Delete borra la fila; devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f MovimientoFiltro) ([]*entity.Movimiento, error)
	// CantidadDisponible Σ cantidad*factor de los movimientos confirmados del producto.
	CantidadDisponible(ctx context.Context, idProducto int64) (int, error)
	// Cantidades proyección de todos los productos (incluye los que no tienen movimientos).
	Cantidades(ctx context.Context) ([]entity.CantidadProducto, error)
	// UltimaRecepcionConfirmada devuelve nil si el producto no tiene recepciones confirmadas.
	UltimaRecepcionConfirmada(ctx context.Context, idProducto int64) (*entity.Movimiento, error)
	ContarPorDependencia(ctx context.Context, idDependencia int64) (int, error)
}

// TipoMovimientoRepository consulta los tipos de movimiento (datos de referencia).
type TipoMovimientoRepository interface {
	List(ctx context.Context) ([]entity.TipoMovimiento, error)
	GetByID(ctx context.Context, id int64) (*entity.TipoMovimiento, error)
	GetByTipo(ctx context.Context, tipo string) (*entity.TipoMovimiento, error)
}
