package repository

import (
	"context"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// ConvenioRepository puerto de persistencia para Convenio.
type ConvenioRepository interface {
	Create(ctx context.Context, c *entity.Convenio) error
	GetByID(ctx context.Context, id int64) (*entity.Convenio, error)
	Update(ctx context.Context, c *entity.Convenio) error
	List(ctx context.Context, idCliente *int64) ([]*entity.Convenio, error)
}

// AnexoRepository puerto de persistencia para Anexo y sus productos.
type AnexoRepository interface {
	// Create inserta el anexo y sus productos; asigna los IDs.
	Create(ctx context.Context, a *entity.Anexo) error
	// GetByID carga el anexo con sus productos.
	GetByID(ctx context.Context, id int64) (*entity.Anexo, error)
	// Update persiste solo los campos de cabecera.
	Update(ctx context.Context, a *entity.Anexo) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, idConvenio *int64) ([]*entity.Anexo, error)
}
