package repository

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// VentaFiltro filtros del listado de ventas.
type VentaFiltro struct {
	Estado     entity.EstadoVenta
	IDCliente  *int64
	FechaDesde *time.Time
	FechaHasta *time.Time
	Limit      int
	Offset     int
}

// VentaRepository puerto de persistencia para Venta y sus líneas.
type VentaRepository interface {
	// Create inserta cabecera y líneas; asigna los IDs.
	Create(ctx context.Context, v *entity.Venta) error
	// GetByID carga la venta con sus líneas.
	GetByID(ctx context.Context, id int64) (*entity.Venta, error)
	// GetForUpdate como GetByID pero bloqueando la cabecera.
	GetForUpdate(ctx context.Context, id int64) (*entity.Venta, error)
	// Update persiste los campos de cabecera (cliente, fecha, observación, estado, fecha_actualizacion).
	Update(ctx context.Context, v *entity.Venta) error
	// Delete borra las líneas y la cabecera.
	Delete(ctx context.Context, id int64) error
	// List devuelve cabeceras sin líneas, más recientes primero.
	List(ctx context.Context, f VentaFiltro) ([]*entity.Venta, error)
	ContarPorCliente(ctx context.Context, idCliente int64) (int, error)
}
