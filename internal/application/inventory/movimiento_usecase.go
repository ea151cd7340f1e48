// Package inventory contiene los casos de uso del libro de movimientos: alta, ciclo de vida,
// ajustes (reparto de recepciones) y proyección de cantidades.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MovimientoExporter genera un archivo descargable con un listado de movimientos.
type MovimientoExporter interface {
	ExportarMovimientos(movs []*entity.Movimiento) ([]byte, error)
}

// MovimientoUseCase alta, confirmación, cancelación, borrado y consultas de movimientos.
type MovimientoUseCase struct {
	txRunner             ports.TxRunner
	movRepo              repository.MovimientoRepository
	tipoRepo             repository.TipoMovimientoRepository
	exporter             MovimientoExporter
	dependenciaRecepcion int64
}

// NewMovimientoUseCase construye el caso de uso. dependenciaRecepcion se usa cuando el
// movimiento llega sin dependencia.
func NewMovimientoUseCase(
	txRunner ports.TxRunner,
	movRepo repository.MovimientoRepository,
	tipoRepo repository.TipoMovimientoRepository,
	exporter MovimientoExporter,
	dependenciaRecepcion int64,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		txRunner:             txRunner,
		movRepo:              movRepo,
		tipoRepo:             tipoRepo,
		exporter:             exporter,
		dependenciaRecepcion: dependenciaRecepcion,
	}
}

// Crear registra un movimiento pendiente y le asigna su código en la misma transacción.
func (uc *MovimientoUseCase) Crear(ctx context.Context, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.NewValidationError("La cantidad debe ser mayor que cero")
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	m := &entity.Movimiento{
		IDTipoMovimiento: in.IDTipoMovimiento,
		IDDependencia:    in.IDDependencia,
		IDProducto:       in.IDProducto,
		Cantidad:         in.Cantidad,
		Fecha:            fecha,
		Observacion:      in.Observacion,
		Estado:           entity.EstadoPendiente,
		IDConvenio:       in.IDConvenio,
		IDAnexo:          in.IDAnexo,
		IDCliente:        in.IDCliente,
		IDMonedaCompra:   in.IDMonedaCompra,
		IDMonedaVenta:    in.IDMonedaVenta,
	}
	if m.IDDependencia == 0 {
		m.IDDependencia = uc.dependenciaRecepcion
	}
	if in.PrecioCompra != nil {
		m.PrecioCompra = decimal.NewNullDecimal(*in.PrecioCompra)
	}
	if in.PrecioVenta != nil {
		m.PrecioVenta = decimal.NewNullDecimal(*in.PrecioVenta)
	}

	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		tipo, err := r.Tipos.GetByID(ctx, m.IDTipoMovimiento)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.NewValidationError("Tipo de movimiento %d inexistente", m.IDTipoMovimiento)
		}
		m.Tipo, m.Factor = tipo.Tipo, tipo.Factor
		return registrar(ctx, r.Movimientos, m)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromMovimiento(m)
	return &out, nil
}

// registrar inserta el movimiento y persiste el código generado a partir de su ID.
func registrar(ctx context.Context, movRepo repository.MovimientoRepository, m *entity.Movimiento) error {
	if err := movRepo.Create(ctx, m); err != nil {
		return err
	}
	if err := movRepo.ActualizarCodigo(ctx, m.ID, m.GenerarCodigo()); err != nil {
		return fmt.Errorf("asignar código: %w", err)
	}
	return nil
}

// Confirmar pasa el movimiento a confirmado. Repetirlo devuelve el estado actual sin cambios.
func (uc *MovimientoUseCase) Confirmar(ctx context.Context, id int64) (*dto.MovimientoResponse, error) {
	return uc.transicion(ctx, id, (*entity.Movimiento).Confirmar)
}

// Cancelar pasa el movimiento a cancelado. Repetirlo devuelve el estado actual sin cambios.
func (uc *MovimientoUseCase) Cancelar(ctx context.Context, id int64) (*dto.MovimientoResponse, error) {
	return uc.transicion(ctx, id, (*entity.Movimiento).Cancelar)
}

func (uc *MovimientoUseCase) transicion(ctx context.Context, id int64, fn func(*entity.Movimiento) (bool, error)) (*dto.MovimientoResponse, error) {
	var m *entity.Movimiento
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var err error
		m, err = r.Movimientos.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.NotFound("movimiento no encontrado")
		}
		cambio, err := fn(m)
		if err != nil || !cambio {
			return err
		}
		return r.Movimientos.ActualizarEstado(ctx, m.ID, m.Estado)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromMovimiento(m)
	return &out, nil
}

// Eliminar borra el movimiento sin revertir ningún efecto, cualquiera sea su estado.
func (uc *MovimientoUseCase) Eliminar(ctx context.Context, id int64) error {
	ok, err := uc.movRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("movimiento no encontrado")
	}
	return nil
}

// Obtener devuelve un movimiento por ID.
func (uc *MovimientoUseCase) Obtener(ctx context.Context, id int64) (*dto.MovimientoResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("movimiento no encontrado")
	}
	out := dto.FromMovimiento(m)
	return &out, nil
}

// Listar aplica los filtros opcionales; fecha_hasta incluye el día completo.
func (uc *MovimientoUseCase) Listar(ctx context.Context, in dto.MovimientoFiltroRequest) (*dto.MovimientoListResponse, error) {
	f, err := filtroMovimientos(in)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toListResponse(movs, f), nil
}

// Pendientes lista los movimientos en estado pendiente.
func (uc *MovimientoUseCase) Pendientes(ctx context.Context, page dto.PageRequest) (*dto.MovimientoListResponse, error) {
	return uc.Listar(ctx, dto.MovimientoFiltroRequest{Estado: string(entity.EstadoPendiente), PageRequest: page})
}

// RecepcionesStock lista las recepciones confirmadas, candidatas a origen de un ajuste.
func (uc *MovimientoUseCase) RecepcionesStock(ctx context.Context, page dto.PageRequest) (*dto.MovimientoListResponse, error) {
	return uc.Listar(ctx, dto.MovimientoFiltroRequest{
		Tipo:        entity.TipoRecepcion,
		Estado:      string(entity.EstadoConfirmado),
		PageRequest: page,
	})
}

// Tipos lista los tipos de movimiento.
func (uc *MovimientoUseCase) Tipos(ctx context.Context) ([]entity.TipoMovimiento, error) {
	return uc.tipoRepo.List(ctx)
}

// Origen resuelve la procedencia de un movimiento por referencias estructuradas:
// un ajuste apunta a su recepción de origen, una recepción es su propio origen y
// cualquier otro movimiento usa la última recepción confirmada del producto.
func (uc *MovimientoUseCase) Origen(ctx context.Context, id int64) (*dto.OrigenResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("movimiento no encontrado")
	}
	var origen *entity.Movimiento
	switch {
	case m.IDMovimientoOrigen != nil:
		origen, err = uc.movRepo.GetByID(ctx, *m.IDMovimientoOrigen)
	case m.Tipo == entity.TipoRecepcion:
		origen = m
	default:
		origen, err = uc.movRepo.UltimaRecepcionConfirmada(ctx, m.IDProducto)
	}
	if err != nil {
		return nil, err
	}
	if origen == nil {
		return nil, domain.NotFound("no se encontró el origen del movimiento")
	}
	return &dto.OrigenResponse{
		IDMovimiento:       m.ID,
		IDMovimientoOrigen: &origen.ID,
		IDProducto:         origen.IDProducto,
		IDCliente:          origen.IDCliente,
		IDConvenio:         origen.IDConvenio,
		IDAnexo:            origen.IDAnexo,
		Codigo:             origen.Codigo,
	}, nil
}

// Exportar genera la hoja de cálculo del listado filtrado (sin paginar, hasta exportLimit filas).
func (uc *MovimientoUseCase) Exportar(ctx context.Context, in dto.MovimientoFiltroRequest) ([]byte, error) {
	f, err := filtroMovimientos(in)
	if err != nil {
		return nil, err
	}
	f.Offset, f.Limit = 0, exportLimit
	movs, err := uc.movRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportarMovimientos(movs)
}

const exportLimit = 10000

func filtroMovimientos(in dto.MovimientoFiltroRequest) (repository.MovimientoFiltro, error) {
	in.Normalize()
	f := repository.MovimientoFiltro{
		Tipo:   in.Tipo,
		Estado: entity.EstadoMovimiento(in.Estado),
		Limit:  in.Limit,
		Offset: in.Skip,
	}
	if f.Estado != "" && !f.Estado.Valido() {
		return f, domain.NewValidationError("Estado de movimiento inválido: %s", in.Estado)
	}
	if in.IDProducto > 0 {
		f.IDProducto = &in.IDProducto
	}
	if in.IDDependencia > 0 {
		f.IDDependencia = &in.IDDependencia
	}
	desde, hasta, err := rangoFechas(in.FechaDesde, in.FechaHasta)
	if err != nil {
		return f, err
	}
	f.FechaDesde, f.FechaHasta = desde, hasta
	return f, nil
}

// rangoFechas convierte fechas YYYY-MM-DD; hasta se lleva al último instante del día.
func rangoFechas(desdeStr, hastaStr string) (*time.Time, *time.Time, error) {
	var desde, hasta *time.Time
	if desdeStr != "" {
		d, err := time.Parse(dto.DateLayout, desdeStr)
		if err != nil {
			return nil, nil, domain.NewValidationError("fecha_desde inválida: %s", desdeStr)
		}
		desde = &d
	}
	if hastaStr != "" {
		h, err := time.Parse(dto.DateLayout, hastaStr)
		if err != nil {
			return nil, nil, domain.NewValidationError("fecha_hasta inválida: %s", hastaStr)
		}
		h = h.Add(24*time.Hour - time.Nanosecond)
		hasta = &h
	}
	return desde, hasta, nil
}

func toListResponse(movs []*entity.Movimiento, f repository.MovimientoFiltro) *dto.MovimientoListResponse {
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, dto.FromMovimiento(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Skip: f.Offset, Limit: f.Limit},
	}
}
