package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleVentaRequest línea de venta. Un subtotal enviado por el cliente se ignora.
type DetalleVentaRequest struct {
	IDProducto     int64            `json:"id_producto" validate:"required,gt=0"`
	Cantidad       int              `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
	Subtotal       *decimal.Decimal `json:"subtotal,omitempty"`
}

// CreateVentaRequest body de POST /ventas. El estado siempre inicia en PENDIENTE.
type CreateVentaRequest struct {
	IDCliente   *int64                `json:"id_cliente" validate:"omitempty,gt=0"`
	Fecha       *time.Time            `json:"fecha"`
	Observacion string                `json:"observacion" validate:"max=500"`
	Estado      string                `json:"estado,omitempty"`
	Detalles    []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
}

// UpdateVentaRequest edición parcial de una venta PENDIENTE.
type UpdateVentaRequest struct {
	IDCliente   *int64     `json:"id_cliente" validate:"omitempty,gt=0"`
	Fecha       *time.Time `json:"fecha"`
	Observacion *string    `json:"observacion" validate:"omitempty,max=500"`
	Estado      *string    `json:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADA ANULADA"`
}

// DetalleVentaResponse línea de venta en respuestas.
type DetalleVentaResponse struct {
	ID             int64           `json:"id"`
	IDProducto     int64           `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID                 int64                  `json:"id"`
	IDCliente          *int64                 `json:"id_cliente"`
	Fecha              time.Time              `json:"fecha"`
	Total              decimal.Decimal        `json:"total"`
	Estado             string                 `json:"estado"`
	Observacion        string                 `json:"observacion"`
	FechaRegistro      time.Time              `json:"fecha_registro"`
	FechaActualizacion time.Time              `json:"fecha_actualizacion"`
	Detalles           []DetalleVentaResponse `json:"detalles,omitempty"`
}

// VentaListResponse lista paginada de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// VentaFiltroRequest query de GET /ventas.
type VentaFiltroRequest struct {
	Estado     string `query:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADA ANULADA"`
	IDCliente  int64  `query:"id_cliente"`
	FechaDesde string `query:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta string `query:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	PageRequest
}
