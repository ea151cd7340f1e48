package inventory

import (
	"context"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// StockUseCase consultas sobre la cantidad proyectada desde el libro de movimientos.
// Se recalcula en cada llamada.
type StockUseCase struct {
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	umbral       int
}

// NewStockUseCase construye el caso de uso; umbral <= 0 usa UmbralStockBajoPorDefecto.
func NewStockUseCase(movRepo repository.MovimientoRepository, productoRepo repository.ProductoRepository, umbral int) *StockUseCase {
	if umbral <= 0 {
		umbral = inventory.UmbralStockBajoPorDefecto
	}
	return &StockUseCase{movRepo: movRepo, productoRepo: productoRepo, umbral: umbral}
}

// Umbral devuelve el umbral de stock bajo configurado.
func (uc *StockUseCase) Umbral() int { return uc.umbral }

// Cantidad devuelve la cantidad disponible del producto (0 sin movimientos confirmados).
func (uc *StockUseCase) Cantidad(ctx context.Context, idProducto int64) (*dto.CantidadResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, idProducto)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	cantidad, err := uc.movRepo.CantidadDisponible(ctx, idProducto)
	if err != nil {
		return nil, err
	}
	return &dto.CantidadResponse{IDProducto: idProducto, Cantidad: cantidad}, nil
}

// StockBajo productos con 0 < cantidad <= umbral (umbral <= 0 usa el configurado).
func (uc *StockUseCase) StockBajo(ctx context.Context, umbral int) ([]dto.ProductoCantidadDTO, error) {
	if umbral <= 0 {
		umbral = uc.umbral
	}
	cantidades, err := uc.movRepo.Cantidades(ctx)
	if err != nil {
		return nil, err
	}
	return toCantidadDTOs(inventory.StockBajo(cantidades, umbral)), nil
}

// Agotados productos sin existencias.
func (uc *StockUseCase) Agotados(ctx context.Context) ([]dto.ProductoCantidadDTO, error) {
	cantidades, err := uc.movRepo.Cantidades(ctx)
	if err != nil {
		return nil, err
	}
	return toCantidadDTOs(inventory.Agotados(cantidades)), nil
}

func toCantidadDTOs(in []entity.CantidadProducto) []dto.ProductoCantidadDTO {
	out := make([]dto.ProductoCantidadDTO, 0, len(in))
	for _, c := range in {
		out = append(out, dto.FromCantidad(c))
	}
	return out
}
