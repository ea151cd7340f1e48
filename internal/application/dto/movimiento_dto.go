package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest body de POST /movimientos. El estado inicial siempre es pendiente.
// Sin id_dependencia se usa la dependencia de recepción configurada.
type CreateMovimientoRequest struct {
	IDTipoMovimiento int64            `json:"id_tipo_movimiento" validate:"required,gt=0"`
	IDDependencia    int64            `json:"id_dependencia" validate:"omitempty,gt=0"`
	IDProducto       int64            `json:"id_producto" validate:"required,gt=0"`
	Cantidad         int              `json:"cantidad" validate:"required,gt=0"`
	Fecha            *time.Time       `json:"fecha"`
	Observacion      string           `json:"observacion" validate:"max=500"`
	IDConvenio       *int64           `json:"id_convenio" validate:"omitempty,gt=0"`
	IDAnexo          *int64           `json:"id_anexo" validate:"omitempty,gt=0"`
	IDCliente        *int64           `json:"id_cliente" validate:"omitempty,gt=0"`
	IDMonedaCompra   *int64           `json:"id_moneda_compra" validate:"omitempty,gt=0"`
	IDMonedaVenta    *int64           `json:"id_moneda_venta" validate:"omitempty,gt=0"`
	PrecioCompra     *decimal.Decimal `json:"precio_compra"`
	PrecioVenta      *decimal.Decimal `json:"precio_venta"`
}

// MovimientoResponse salida de un movimiento.
type MovimientoResponse struct {
	ID                 int64            `json:"id"`
	IDTipoMovimiento   int64            `json:"id_tipo_movimiento"`
	Tipo               string           `json:"tipo"`
	Factor             int              `json:"factor"`
	IDDependencia      int64            `json:"id_dependencia"`
	NombreDependencia  string           `json:"nombre_dependencia,omitempty"`
	IDProducto         int64            `json:"id_producto"`
	Cantidad           int              `json:"cantidad"`
	Fecha              time.Time        `json:"fecha"`
	Observacion        string           `json:"observacion"`
	Estado             string           `json:"estado"`
	Codigo             string           `json:"codigo"`
	IDConvenio         *int64           `json:"id_convenio"`
	IDAnexo            *int64           `json:"id_anexo"`
	IDCliente          *int64           `json:"id_cliente"`
	IDMonedaCompra     *int64           `json:"id_moneda_compra"`
	IDMonedaVenta      *int64           `json:"id_moneda_venta"`
	PrecioCompra       *decimal.Decimal `json:"precio_compra"`
	PrecioVenta        *decimal.Decimal `json:"precio_venta"`
	IDMovimientoOrigen *int64           `json:"id_movimiento_origen"`
}

// MovimientoListResponse lista paginada de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// MovimientoFiltroRequest query de GET /movimientos. Fechas en formato YYYY-MM-DD.
type MovimientoFiltroRequest struct {
	Tipo          string `query:"tipo"`
	Estado        string `query:"estado" validate:"omitempty,oneof=pendiente confirmado cancelado"`
	IDProducto    int64  `query:"id_producto"`
	IDDependencia int64  `query:"id_dependencia"`
	FechaDesde    string `query:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta    string `query:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	PageRequest
}

// DestinoAjusteRequest reparto hacia una dependencia.
type DestinoAjusteRequest struct {
	IDDependencia int64 `json:"id_dependencia" validate:"required,gt=0"`
	Cantidad      int   `json:"cantidad" validate:"required,gt=0"`
}

// AjusteRequest body de POST /movimientos/ajuste.
type AjusteRequest struct {
	IDMovimientoOrigen int64                  `json:"id_movimiento_origen" validate:"required,gt=0"`
	Destinos           []DestinoAjusteRequest `json:"destinos" validate:"required,min=1,dive"`
	Fecha              *time.Time             `json:"fecha"`
	Observacion        string                 `json:"observacion" validate:"max=500"`
}

// AjusteMovimientoDTO resumen de cada movimiento creado por un ajuste.
type AjusteMovimientoDTO struct {
	IDMovimiento      int64  `json:"id_movimiento"`
	Tipo              string `json:"tipo"`
	Cantidad          int    `json:"cantidad"`
	IDDependencia     int64  `json:"id_dependencia"`
	NombreDependencia string `json:"nombre_dependencia"`
}

// OrigenResponse procedencia de un movimiento a partir de referencias estructuradas.
type OrigenResponse struct {
	IDMovimiento       int64  `json:"id_movimiento"`
	IDMovimientoOrigen *int64 `json:"id_movimiento_origen"`
	IDProducto         int64  `json:"id_producto"`
	IDCliente          *int64 `json:"id_cliente"`
	IDConvenio         *int64 `json:"id_convenio"`
	IDAnexo            *int64 `json:"id_anexo"`
	Codigo             string `json:"codigo"`
}
