package entity

import (
	"time"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/shopspring/decimal"
)

// EstadoVenta ciclo de vida de una venta.
type EstadoVenta string

const (
	VentaPendiente  EstadoVenta = "PENDIENTE"
	VentaCompletada EstadoVenta = "COMPLETADA"
	VentaAnulada    EstadoVenta = "ANULADA"
)

// Valido indica si el estado es uno de los tres conocidos.
func (e EstadoVenta) Valido() bool {
	switch e {
	case VentaPendiente, VentaCompletada, VentaAnulada:
		return true
	}
	return false
}

// Venta cabecera de una venta con sus líneas.
type Venta struct {
	ID                 int64           `db:"id"`
	IDCliente          *int64          `db:"id_cliente"`
	Fecha              time.Time       `db:"fecha"`
	Total              decimal.Decimal `db:"total"`
	Estado             EstadoVenta     `db:"estado"`
	Observacion        string          `db:"observacion"`
	FechaRegistro      time.Time       `db:"fecha_registro"`
	FechaActualizacion time.Time       `db:"fecha_actualizacion"`
	Detalles           []DetalleVenta  `db:"-"`
}

// DetalleVenta línea de venta. Subtotal = Cantidad * PrecioUnitario.
type DetalleVenta struct {
	ID             int64           `db:"id"`
	IDVenta        int64           `db:"id_venta"`
	IDProducto     int64           `db:"id_producto"`
	Cantidad       int             `db:"cantidad"`
	PrecioUnitario decimal.Decimal `db:"precio_unitario"`
	Subtotal       decimal.Decimal `db:"subtotal"`
}

// CalcularTotales recalcula el subtotal de cada línea y el total de la venta.
// Cualquier subtotal previo se descarta.
func (v *Venta) CalcularTotales() {
	total := decimal.Zero
	for i := range v.Detalles {
		d := &v.Detalles[i]
		d.Subtotal = d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))).Round(2)
		total = total.Add(d.Subtotal)
	}
	v.Total = total.Round(2)
}

// Confirmar PENDIENTE -> COMPLETADA. El llamador descuenta el stock de cada línea.
func (v *Venta) Confirmar(now time.Time) error {
	if v.Estado != VentaPendiente {
		return domain.NewValidationError("Solo se pueden confirmar ventas en estado PENDIENTE")
	}
	v.Estado = VentaCompletada
	v.FechaActualizacion = now
	return nil
}

// Anular pasa la venta a ANULADA. Devuelve true si estaba COMPLETADA y el llamador
// debe reponer el stock de cada línea.
func (v *Venta) Anular(now time.Time) (bool, error) {
	if v.Estado == VentaAnulada {
		return false, domain.NewValidationError("La venta ya está anulada")
	}
	reponer := v.Estado == VentaCompletada
	v.Estado = VentaAnulada
	v.FechaActualizacion = now
	return reponer, nil
}

// VerificarEditable falla si la venta no está PENDIENTE.
func (v *Venta) VerificarEditable() error {
	if v.Estado != VentaPendiente {
		return domain.NewValidationError("Solo se pueden editar ventas en estado PENDIENTE")
	}
	return nil
}

// DebeReponerStock indica si eliminar la venta obliga a devolver el stock.
func (v *Venta) DebeReponerStock() bool {
	return v.Estado == VentaCompletada
}
