// Package ventas contiene la máquina de estados de las ventas (PENDIENTE -> COMPLETADA -> ANULADA)
// y sus efectos sobre el stock de productos.
package ventas

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// ComprobanteGenerator genera el comprobante imprimible de una venta.
type ComprobanteGenerator interface {
	GenerarComprobante(ctx context.Context, venta *entity.Venta, cliente *entity.Cliente, productos map[int64]*entity.Producto) ([]byte, error)
}

// VentaUseCase casos de uso de ventas.
type VentaUseCase struct {
	txRunner     ports.TxRunner
	ventaRepo    repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	comprobantes ComprobanteGenerator
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(
	txRunner ports.TxRunner,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	comprobantes ComprobanteGenerator,
) *VentaUseCase {
	return &VentaUseCase{
		txRunner:     txRunner,
		ventaRepo:    ventaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		comprobantes: comprobantes,
	}
}

// Crear registra la venta con sus líneas en estado PENDIENTE. Subtotales y total se calculan
// aquí (se ignora lo que envíe el cliente). No toca el stock.
func (uc *VentaUseCase) Crear(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.NewValidationError("La venta debe tener al menos un producto")
	}
	now := time.Now()
	v := &entity.Venta{
		IDCliente:          in.IDCliente,
		Fecha:              now,
		Estado:             entity.VentaPendiente,
		Observacion:        in.Observacion,
		FechaRegistro:      now,
		FechaActualizacion: now,
		Detalles:           make([]entity.DetalleVenta, 0, len(in.Detalles)),
	}
	if in.Fecha != nil {
		v.Fecha = *in.Fecha
	}
	for _, d := range in.Detalles {
		if d.Cantidad <= 0 {
			return nil, domain.NewValidationError("La cantidad de cada producto debe ser mayor que cero")
		}
		if d.PrecioUnitario.IsNegative() {
			return nil, domain.NewValidationError("El precio unitario no puede ser negativo")
		}
		v.Detalles = append(v.Detalles, entity.DetalleVenta{
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	v.CalcularTotales()

	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		return r.Ventas.Create(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromVenta(v)
	return &out, nil
}

// Confirmar PENDIENTE -> COMPLETADA y descuenta del stock la cantidad de cada línea.
func (uc *VentaUseCase) Confirmar(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	return uc.conVentaBloqueada(ctx, id, func(r ports.TxRepos, v *entity.Venta) error {
		return confirmar(ctx, r, v)
	})
}

// Anular pasa la venta a ANULADA; si estaba COMPLETADA repone el stock de cada línea.
func (uc *VentaUseCase) Anular(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	return uc.conVentaBloqueada(ctx, id, func(r ports.TxRepos, v *entity.Venta) error {
		return anular(ctx, r, v)
	})
}

// Actualizar edita cliente, fecha, observación o estado de una venta PENDIENTE.
// Un cambio de estado pasa por la transición correspondiente (COMPLETADA descuenta stock).
func (uc *VentaUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	return uc.conVentaBloqueada(ctx, id, func(r ports.TxRepos, v *entity.Venta) error {
		if err := v.VerificarEditable(); err != nil {
			return err
		}
		if in.IDCliente != nil {
			v.IDCliente = in.IDCliente
		}
		if in.Fecha != nil {
			v.Fecha = *in.Fecha
		}
		if in.Observacion != nil {
			v.Observacion = *in.Observacion
		}
		v.FechaActualizacion = time.Now()
		if in.Estado == nil || entity.EstadoVenta(*in.Estado) == entity.VentaPendiente {
			return r.Ventas.Update(ctx, v)
		}
		switch entity.EstadoVenta(*in.Estado) {
		case entity.VentaCompletada:
			return confirmar(ctx, r, v)
		case entity.VentaAnulada:
			return anular(ctx, r, v)
		}
		return domain.NewValidationError("Estado de venta inválido: %s", *in.Estado)
	})
}

// Eliminar borra la venta y sus líneas desde cualquier estado; si estaba COMPLETADA
// repone antes el stock de cada línea.
func (uc *VentaUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		v, err := r.Ventas.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NotFound("venta no encontrada")
		}
		if v.DebeReponerStock() {
			if err := moverStock(ctx, r, v, +1); err != nil {
				return err
			}
		}
		return r.Ventas.Delete(ctx, v.ID)
	})
}

// Obtener devuelve la venta con sus líneas.
func (uc *VentaUseCase) Obtener(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NotFound("venta no encontrada")
	}
	out := dto.FromVenta(v)
	return &out, nil
}

// Listar ventas filtradas, más recientes primero.
func (uc *VentaUseCase) Listar(ctx context.Context, in dto.VentaFiltroRequest) (*dto.VentaListResponse, error) {
	in.Normalize()
	f := repository.VentaFiltro{
		Estado: entity.EstadoVenta(in.Estado),
		Limit:  in.Limit,
		Offset: in.Skip,
	}
	if f.Estado != "" && !f.Estado.Valido() {
		return nil, domain.NewValidationError("Estado de venta inválido: %s", in.Estado)
	}
	if in.IDCliente > 0 {
		f.IDCliente = &in.IDCliente
	}
	if in.FechaDesde != "" {
		d, err := time.Parse(dto.DateLayout, in.FechaDesde)
		if err != nil {
			return nil, domain.NewValidationError("fecha_desde inválida: %s", in.FechaDesde)
		}
		f.FechaDesde = &d
	}
	if in.FechaHasta != "" {
		h, err := time.Parse(dto.DateLayout, in.FechaHasta)
		if err != nil {
			return nil, domain.NewValidationError("fecha_hasta inválida: %s", in.FechaHasta)
		}
		h = h.Add(24*time.Hour - time.Nanosecond)
		f.FechaHasta = &h
	}
	return uc.listar(ctx, f)
}

// MesActual ventas desde el día 1 del mes en curso.
func (uc *VentaUseCase) MesActual(ctx context.Context, page dto.PageRequest) (*dto.VentaListResponse, error) {
	page.Normalize()
	now := time.Now()
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return uc.listar(ctx, repository.VentaFiltro{FechaDesde: &inicio, Limit: page.Limit, Offset: page.Skip})
}

// Comprobante genera el PDF de la venta.
func (uc *VentaUseCase) Comprobante(ctx context.Context, id int64) ([]byte, error) {
	v, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NotFound("venta no encontrada")
	}
	var cliente *entity.Cliente
	if v.IDCliente != nil {
		if cliente, err = uc.clienteRepo.GetByID(ctx, *v.IDCliente); err != nil {
			return nil, err
		}
	}
	productos := make(map[int64]*entity.Producto, len(v.Detalles))
	for _, d := range v.Detalles {
		if _, ok := productos[d.IDProducto]; ok {
			continue
		}
		p, err := uc.productoRepo.GetByID(ctx, d.IDProducto)
		if err != nil {
			return nil, err
		}
		if p != nil {
			productos[p.ID] = p
		}
	}
	return uc.comprobantes.GenerarComprobante(ctx, v, cliente, productos)
}

func (uc *VentaUseCase) listar(ctx context.Context, f repository.VentaFiltro) (*dto.VentaListResponse, error) {
	list, err := uc.ventaRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.FromVenta(v))
	}
	return &dto.VentaListResponse{Items: items, Page: dto.PageResponse{Skip: f.Offset, Limit: f.Limit}}, nil
}

// conVentaBloqueada carga la venta con bloqueo de fila y ejecuta fn en la misma transacción.
func (uc *VentaUseCase) conVentaBloqueada(ctx context.Context, id int64, fn func(r ports.TxRepos, v *entity.Venta) error) (*dto.VentaResponse, error) {
	var v *entity.Venta
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var err error
		v, err = r.Ventas.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NotFound("venta no encontrada")
		}
		return fn(r, v)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromVenta(v)
	return &out, nil
}

func confirmar(ctx context.Context, r ports.TxRepos, v *entity.Venta) error {
	if err := v.Confirmar(time.Now()); err != nil {
		return err
	}
	if err := moverStock(ctx, r, v, -1); err != nil {
		return err
	}
	return r.Ventas.Update(ctx, v)
}

func anular(ctx context.Context, r ports.TxRepos, v *entity.Venta) error {
	reponer, err := v.Anular(time.Now())
	if err != nil {
		return err
	}
	if reponer {
		if err := moverStock(ctx, r, v, +1); err != nil {
			return err
		}
	}
	return r.Ventas.Update(ctx, v)
}

// moverStock aplica signo*cantidad al stock de cada producto de la venta.
func moverStock(ctx context.Context, r ports.TxRepos, v *entity.Venta, signo int) error {
	for _, d := range v.Detalles {
		if err := r.Productos.AjustarStock(ctx, d.IDProducto, signo*d.Cantidad); err != nil {
			return err
		}
	}
	return nil
}
