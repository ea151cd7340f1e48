package usecase

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock lo mueven las ventas.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto con stock 0.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.PrecioCompra.IsNegative() || in.PrecioVenta.IsNegative() || in.PrecioMinimo.IsNegative() {
		return nil, domain.NewValidationError("Los precios no pueden ser negativos")
	}
	now := time.Now()
	p := &entity.Producto{
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		IDSubcategoria: in.IDSubcategoria,
		IDMonedaCompra: in.IDMonedaCompra,
		PrecioCompra:   in.PrecioCompra,
		IDMonedaVenta:  in.IDMonedaVenta,
		PrecioVenta:    in.PrecioVenta,
		PrecioMinimo:   in.PrecioMinimo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProducto(p)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	out := dto.FromProducto(p)
	return &out, nil
}

// Update aplica los campos presentes. No permite modificar Stock.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	if in.Codigo != nil {
		p.Codigo = in.Codigo
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.IDSubcategoria != nil {
		p.IDSubcategoria = in.IDSubcategoria
	}
	if in.IDMonedaCompra != nil {
		p.IDMonedaCompra = in.IDMonedaCompra
	}
	if in.PrecioCompra != nil {
		p.PrecioCompra = *in.PrecioCompra
	}
	if in.IDMonedaVenta != nil {
		p.IDMonedaVenta = in.IDMonedaVenta
	}
	if in.PrecioVenta != nil {
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.PrecioMinimo != nil {
		p.PrecioMinimo = *in.PrecioMinimo
	}
	if p.PrecioCompra.IsNegative() || p.PrecioVenta.IsNegative() || p.PrecioMinimo.IsNegative() {
		return nil, domain.NewValidationError("Los precios no pueden ser negativos")
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProducto(p)
	return &out, nil
}

// List lista productos con paginación y búsqueda opcional por nombre o código.
func (uc *ProductoUseCase) List(ctx context.Context, busqueda string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, repository.ProductoFiltro{Busqueda: busqueda, Limit: page.Limit, Offset: page.Skip})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProducto(p))
	}
	return &dto.ProductoListResponse{Items: items, Page: dto.PageResponse{Skip: page.Skip, Limit: page.Limit}}, nil
}

// Delete elimina el producto. Si tiene movimientos o ventas la base lo impide (ErrIntegrity).
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NotFound("producto no encontrado")
	}
	return uc.repo.Delete(ctx, id)
}
