package repository

import (
	"context"

	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	// List ordena por fecha de registro descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
	Delete(ctx context.Context, id int64) error
}
