package repository

import (
	"context"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// ProductoFiltro filtros del listado de productos.
type ProductoFiltro struct {
	Busqueda string // coincide con nombre o código (ILIKE)
	Limit    int
	Offset   int
}

// ProductoRepository puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f ProductoFiltro) ([]*entity.Producto, error)
	// AjustarStock suma delta al contador de stock en una sola sentencia (sin lectura previa).
	AjustarStock(ctx context.Context, id int64, delta int) error
}
