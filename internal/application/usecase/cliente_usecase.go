package usecase

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// ClienteUseCase alta, consulta y baja de clientes.
type ClienteUseCase struct {
	repo      repository.ClienteRepository
	ventaRepo repository.VentaRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, ventaRepo repository.VentaRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, ventaRepo: ventaRepo}
}

// Create registra un cliente (activo por defecto).
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Email:         in.Email,
		CedulaRif:     in.CedulaRif,
		Direccion:     in.Direccion,
		Activo:        true,
		FechaRegistro: time.Now(),
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.FromCliente(c)
	return &out, nil
}

// GetByID obtiene un cliente.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("cliente no encontrado")
	}
	out := dto.FromCliente(c)
	return &out, nil
}

// List clientes más recientes primero.
func (uc *ClienteUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ClienteResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCliente(c))
	}
	return out, nil
}

// Ventas lista las ventas del cliente.
func (uc *ClienteUseCase) Ventas(ctx context.Context, id int64, page dto.PageRequest) ([]dto.VentaResponse, error) {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.ventaRepo.List(ctx, repository.VentaFiltro{IDCliente: &id, Limit: page.Limit, Offset: page.Skip})
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.FromVenta(v))
	}
	return out, nil
}

// Delete elimina el cliente si no tiene ventas asociadas.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := uc.ventaRepo.ContarPorCliente(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.NewValidationError("No se puede eliminar el cliente porque tiene ventas asociadas")
	}
	return uc.repo.Delete(ctx, id)
}
