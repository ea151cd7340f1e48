package inventory

import (
	"context"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
)

// AjusteUseCase reparte una recepción confirmada entre otras dependencias.
type AjusteUseCase struct {
	txRunner ports.TxRunner
}

// NewAjusteUseCase construye el caso de uso.
func NewAjusteUseCase(txRunner ports.TxRunner) *AjusteUseCase {
	return &AjusteUseCase{txRunner: txRunner}
}

// CrearAjuste crea un AJUSTE_QUITAR en la dependencia de origen y un AJUSTE_AGREGAR por destino,
// todo en una transacción. El resumen respeta el orden: origen primero, destinos después.
func (uc *AjusteUseCase) CrearAjuste(ctx context.Context, in dto.AjusteRequest) ([]dto.AjusteMovimientoDTO, error) {
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	destinos := make([]inventory.Destino, 0, len(in.Destinos))
	for _, d := range in.Destinos {
		destinos = append(destinos, inventory.Destino{IDDependencia: d.IDDependencia, Cantidad: d.Cantidad})
	}

	var resumen []dto.AjusteMovimientoDTO
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		origen, err := r.Movimientos.GetForUpdate(ctx, in.IDMovimientoOrigen)
		if err != nil {
			return err
		}
		if origen == nil {
			return domain.NotFound("movimiento de origen no encontrado")
		}
		tipos, err := tiposAjuste(ctx, r)
		if err != nil {
			return err
		}
		movs, err := inventory.PlanificarAjuste(origen, destinos, tipos, fecha, in.Observacion)
		if err != nil {
			return err
		}

		nombres := map[int64]string{}
		resumen = make([]dto.AjusteMovimientoDTO, 0, len(movs))
		for _, m := range movs {
			if err := registrar(ctx, r.Movimientos, m); err != nil {
				return err
			}
			nombre, ok := nombres[m.IDDependencia]
			if !ok {
				dep, err := r.Dependencias.GetByID(ctx, m.IDDependencia)
				if err != nil {
					return err
				}
				if dep == nil {
					return domain.NewValidationError("Dependencia %d inexistente", m.IDDependencia)
				}
				nombre = dep.Nombre
				nombres[m.IDDependencia] = nombre
			}
			resumen = append(resumen, dto.AjusteMovimientoDTO{
				IDMovimiento:      m.ID,
				Tipo:              m.Tipo,
				Cantidad:          m.Cantidad,
				IDDependencia:     m.IDDependencia,
				NombreDependencia: nombre,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resumen, nil
}

func tiposAjuste(ctx context.Context, r ports.TxRepos) (inventory.TiposAjuste, error) {
	quitar, err := r.Tipos.GetByTipo(ctx, entity.TipoAjusteQuitar)
	if err != nil {
		return inventory.TiposAjuste{}, err
	}
	agregar, err := r.Tipos.GetByTipo(ctx, entity.TipoAjusteAgregar)
	if err != nil {
		return inventory.TiposAjuste{}, err
	}
	if quitar == nil || agregar == nil {
		return inventory.TiposAjuste{}, domain.NewValidationError("Faltan los tipos de movimiento de ajuste")
	}
	return inventory.TiposAjuste{Quitar: *quitar, Agregar: *agregar}, nil
}
