package convenios

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

// AnexoUseCase casos de uso de anexos.
type AnexoUseCase struct {
	txRunner             ports.TxRunner
	repo                 repository.AnexoRepository
	dependenciaRecepcion int64
}

// NewAnexoUseCase construye el caso de uso. dependenciaRecepcion recibe los productos
// cuando el anexo no indica dependencia.
func NewAnexoUseCase(txRunner ports.TxRunner, repo repository.AnexoRepository, dependenciaRecepcion int64) *AnexoUseCase {
	return &AnexoUseCase{txRunner: txRunner, repo: repo, dependenciaRecepcion: dependenciaRecepcion}
}

// Create registra el anexo y, por cada producto, una RECEPCION pendiente en la dependencia
// del anexo con los vínculos de convenio, cliente, anexo y precio de compra.
// Se rechaza si el convenio está vencido. Todo ocurre en una transacción.
func (uc *AnexoUseCase) Create(ctx context.Context, in dto.CreateAnexoRequest) (*dto.AnexoResponse, error) {
	fecha, err := parseFecha("fecha", in.Fecha)
	if err != nil {
		return nil, err
	}
	a := &entity.Anexo{
		IDConvenio:    in.IDConvenio,
		NombreAnexo:   in.NombreAnexo,
		Fecha:         fecha,
		NumeroAnexo:   in.NumeroAnexo,
		IDDependencia: in.IDDependencia,
		Productos:     make([]entity.AnexoProducto, 0, len(in.Productos)),
	}
	if a.IDDependencia == 0 {
		a.IDDependencia = uc.dependenciaRecepcion
	}
	if in.Comision != nil {
		a.Comision = decimal.NewNullDecimal(*in.Comision)
	}
	for _, p := range in.Productos {
		if p.Cantidad <= 0 {
			return nil, domain.NewValidationError("La cantidad de cada producto debe ser mayor que cero")
		}
		if p.PrecioCompra.IsNegative() {
			return nil, domain.NewValidationError("El precio de compra no puede ser negativo")
		}
		a.Productos = append(a.Productos, entity.AnexoProducto{
			IDProducto:     p.IDProducto,
			Cantidad:       p.Cantidad,
			PrecioCompra:   p.PrecioCompra,
			IDMonedaCompra: p.IDMonedaCompra,
		})
	}

	var movimientos []int64
	err = uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		convenio, err := r.Convenios.GetByID(ctx, a.IDConvenio)
		if err != nil {
			return err
		}
		if convenio == nil {
			return domain.NotFound("convenio no encontrado")
		}
		now := time.Now()
		if !convenio.Vigente(now) {
			return domain.NewValidationError("El convenio no está vigente")
		}
		if err := r.Anexos.Create(ctx, a); err != nil {
			return err
		}
		if len(a.Productos) == 0 {
			return nil
		}
		recepcion, err := r.Tipos.GetByTipo(ctx, entity.TipoRecepcion)
		if err != nil {
			return err
		}
		if recepcion == nil {
			return fmt.Errorf("tipo de movimiento %s no registrado", entity.TipoRecepcion)
		}
		for _, p := range a.Productos {
			m := &entity.Movimiento{
				IDTipoMovimiento: recepcion.ID,
				Tipo:             recepcion.Tipo,
				Factor:           recepcion.Factor,
				IDDependencia:    a.IDDependencia,
				IDProducto:       p.IDProducto,
				Cantidad:         p.Cantidad,
				Fecha:            now,
				Observacion:      fmt.Sprintf("Recepción por anexo %s", a.NumeroAnexo),
				Estado:           entity.EstadoPendiente,
				IDConvenio:       &convenio.ID,
				IDAnexo:          &a.ID,
				IDCliente:        &convenio.IDCliente,
				IDMonedaCompra:   p.IDMonedaCompra,
				PrecioCompra:     decimal.NewNullDecimal(p.PrecioCompra),
			}
			if err := r.Movimientos.Create(ctx, m); err != nil {
				return err
			}
			if err := r.Movimientos.ActualizarCodigo(ctx, m.ID, m.GenerarCodigo()); err != nil {
				return fmt.Errorf("asignar código: %w", err)
			}
			movimientos = append(movimientos, m.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromAnexo(a)
	out.Movimientos = movimientos
	return &out, nil
}

// GetByID obtiene el anexo con sus productos.
func (uc *AnexoUseCase) GetByID(ctx context.Context, id int64) (*dto.AnexoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("anexo no encontrado")
	}
	out := dto.FromAnexo(a)
	return &out, nil
}

// List anexos, opcionalmente de un convenio.
func (uc *AnexoUseCase) List(ctx context.Context, idConvenio *int64) ([]dto.AnexoResponse, error) {
	list, err := uc.repo.List(ctx, idConvenio)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnexoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.FromAnexo(a))
	}
	return out, nil
}

// Update aplica los campos presentes de la cabecera. Los productos no se editan.
func (uc *AnexoUseCase) Update(ctx context.Context, id int64, in dto.UpdateAnexoRequest) (*dto.AnexoResponse, error) {
	var a *entity.Anexo
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var err error
		a, err = r.Anexos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.NotFound("anexo no encontrado")
		}
		if in.NombreAnexo != nil {
			a.NombreAnexo = *in.NombreAnexo
		}
		if in.Fecha != nil {
			if a.Fecha, err = parseFecha("fecha", *in.Fecha); err != nil {
				return err
			}
		}
		if in.NumeroAnexo != nil {
			a.NumeroAnexo = *in.NumeroAnexo
		}
		if in.IDDependencia != nil {
			a.IDDependencia = *in.IDDependencia
		}
		if in.Comision != nil {
			a.Comision = decimal.NewNullDecimal(*in.Comision)
		}
		return r.Anexos.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromAnexo(a)
	return &out, nil
}

// Delete elimina el anexo y sus productos. Si ya generó movimientos la base lo impide.
func (uc *AnexoUseCase) Delete(ctx context.Context, id int64) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.NotFound("anexo no encontrado")
	}
	return uc.repo.Delete(ctx, id)
}
