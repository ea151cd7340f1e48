package inventory

import (
	"time"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// Destino reparto de un ajuste hacia una dependencia.
type Destino struct {
	IDDependencia int64
	Cantidad      int
}

// TiposAjuste tipos AJUSTE_QUITAR y AJUSTE_AGREGAR tal como están registrados.
type TiposAjuste struct {
	Quitar  entity.TipoMovimiento
	Agregar entity.TipoMovimiento
}

// PlanificarAjuste valida el reparto de una recepción confirmada y arma los movimientos:
// primero un AJUSTE_QUITAR en la dependencia de origen por la suma de los destinos,
// luego un AJUSTE_AGREGAR por destino en el orden recibido. Todos quedan pendientes
// y copian producto, convenio, cliente, monedas y precios del origen.
func PlanificarAjuste(origen *entity.Movimiento, destinos []Destino, tipos TiposAjuste, fecha time.Time, observacion string) ([]*entity.Movimiento, error) {
	if origen.Estado != entity.EstadoConfirmado {
		return nil, domain.NewValidationError("El movimiento de origen debe estar confirmado")
	}
	if len(destinos) == 0 {
		return nil, domain.NewValidationError("Debe indicar al menos un destino")
	}
	total := 0
	for _, d := range destinos {
		if d.Cantidad <= 0 {
			return nil, domain.NewValidationError("La cantidad de cada destino debe ser mayor que cero")
		}
		total += d.Cantidad
	}
	if total > origen.Cantidad {
		return nil, domain.NewValidationError(
			"La cantidad total a ajustar (%d) excede la cantidad del movimiento de origen (%d)", total, origen.Cantidad)
	}

	nuevo := func(tipo entity.TipoMovimiento, dependencia int64, cantidad int) *entity.Movimiento {
		m := &entity.Movimiento{
			IDTipoMovimiento: tipo.ID,
			Tipo:             tipo.Tipo,
			Factor:           tipo.Factor,
			IDDependencia:    dependencia,
			Cantidad:         cantidad,
			Fecha:            fecha,
			Observacion:      observacion,
			Estado:           entity.EstadoPendiente,
		}
		m.CopiarOrigen(origen)
		return m
	}

	out := make([]*entity.Movimiento, 0, len(destinos)+1)
	out = append(out, nuevo(tipos.Quitar, origen.IDDependencia, total))
	for _, d := range destinos {
		out = append(out, nuevo(tipos.Agregar, d.IDDependencia, d.Cantidad))
	}
	return out, nil
}
