package entity

import (
	"fmt"
	"time"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Etiquetas de tipos de movimiento sembradas por las migraciones.
const (
	TipoRecepcion     = "RECEPCION"
	TipoMerma         = "MERMA"
	TipoDonacion      = "DONACION"
	TipoDevolucion    = "DEVOLUCION"
	TipoAjusteQuitar  = "AJUSTE_QUITAR"
	TipoAjusteAgregar = "AJUSTE_AGREGAR"
)

// TipoMovimiento clasifica un movimiento; Factor es +1 (entrada) o -1 (salida).
type TipoMovimiento struct {
	ID     int64  `db:"id" json:"id"`
	Tipo   string `db:"tipo" json:"tipo"`
	Factor int    `db:"factor" json:"factor"`
}

// EstadoMovimiento ciclo de vida de un movimiento.
type EstadoMovimiento string

const (
	EstadoPendiente  EstadoMovimiento = "pendiente"
	EstadoConfirmado EstadoMovimiento = "confirmado"
	EstadoCancelado  EstadoMovimiento = "cancelado"
)

// Valido indica si el estado es uno de los tres conocidos.
func (e EstadoMovimiento) Valido() bool {
	switch e {
	case EstadoPendiente, EstadoConfirmado, EstadoCancelado:
		return true
	}
	return false
}

// Movimiento registro de un cambio de inventario de un producto en una dependencia.
// Solo cuenta para la cantidad disponible mientras Estado == confirmado.
type Movimiento struct {
	ID                 int64               `db:"id"`
	IDTipoMovimiento   int64               `db:"id_tipo_movimiento"`
	Tipo               string              `db:"tipo"`   // etiqueta del tipo (solo lectura)
	Factor             int                 `db:"factor"` // factor del tipo (solo lectura)
	IDDependencia      int64               `db:"id_dependencia"`
	NombreDependencia  string              `db:"nombre_dependencia"`
	IDProducto         int64               `db:"id_producto"`
	Cantidad           int                 `db:"cantidad"`
	Fecha              time.Time           `db:"fecha"`
	Observacion        string              `db:"observacion"`
	Estado             EstadoMovimiento    `db:"estado"`
	Codigo             string              `db:"codigo"`
	IDConvenio         *int64              `db:"id_convenio"`
	IDAnexo            *int64              `db:"id_anexo"`
	IDCliente          *int64              `db:"id_cliente"`
	IDMonedaCompra     *int64              `db:"id_moneda_compra"`
	IDMonedaVenta      *int64              `db:"id_moneda_venta"`
	PrecioCompra       decimal.NullDecimal `db:"precio_compra"`
	PrecioVenta        decimal.NullDecimal `db:"precio_venta"`
	IDMovimientoOrigen *int64              `db:"id_movimiento_origen"`
	CreatedAt          time.Time           `db:"created_at"`
}

// Confirmar pasa el movimiento a confirmado. Devuelve false si ya lo estaba (no-op).
func (m *Movimiento) Confirmar() (bool, error) {
	switch m.Estado {
	case EstadoConfirmado:
		return false, nil
	case EstadoCancelado:
		return false, domain.NewValidationError("No se puede confirmar un movimiento cancelado")
	}
	m.Estado = EstadoConfirmado
	return true, nil
}

// Cancelar pasa el movimiento a cancelado. Devuelve false si ya lo estaba (no-op).
func (m *Movimiento) Cancelar() (bool, error) {
	switch m.Estado {
	case EstadoCancelado:
		return false, nil
	case EstadoConfirmado:
		return false, domain.NewValidationError("No se puede cancelar un movimiento confirmado")
	}
	m.Estado = EstadoCancelado
	return true, nil
}

// GenerarCodigo arma el código informativo {año}{id}{cliente}{convenio}{anexo}{producto}.
// Requiere que el movimiento ya tenga ID. No se interpreta en ninguna regla de negocio.
func (m *Movimiento) GenerarCodigo() string {
	m.Codigo = fmt.Sprintf("%d%d%d%d%d%d",
		m.Fecha.Year(), m.ID, valorOCero(m.IDCliente), valorOCero(m.IDConvenio),
		valorOCero(m.IDAnexo), m.IDProducto)
	return m.Codigo
}

// CopiarOrigen copia del movimiento origen los vínculos comerciales y de precio.
func (m *Movimiento) CopiarOrigen(origen *Movimiento) {
	m.IDProducto = origen.IDProducto
	m.IDConvenio = origen.IDConvenio
	m.IDAnexo = origen.IDAnexo
	m.IDCliente = origen.IDCliente
	m.IDMonedaCompra = origen.IDMonedaCompra
	m.IDMonedaVenta = origen.IDMonedaVenta
	m.PrecioCompra = origen.PrecioCompra
	m.PrecioVenta = origen.PrecioVenta
	id := origen.ID
	m.IDMovimientoOrigen = &id
}

func valorOCero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
