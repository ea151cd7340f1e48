package dto

import "github.com/shopspring/decimal"

// CreateConvenioRequest body de POST /convenios. Fechas en formato YYYY-MM-DD.
type CreateConvenioRequest struct {
	IDCliente      int64  `json:"id_cliente" validate:"required,gt=0"`
	NombreConvenio string `json:"nombre_convenio" validate:"required,min=1,max=200"`
	Fecha          string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Vigencia       string `json:"vigencia" validate:"required,datetime=2006-01-02"`
	IDTipoConvenio *int64 `json:"id_tipo_convenio" validate:"omitempty,gt=0"`
}

// UpdateConvenioRequest actualización parcial de un convenio.
type UpdateConvenioRequest struct {
	IDCliente      *int64  `json:"id_cliente" validate:"omitempty,gt=0"`
	NombreConvenio *string `json:"nombre_convenio" validate:"omitempty,min=1,max=200"`
	Fecha          *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Vigencia       *string `json:"vigencia" validate:"omitempty,datetime=2006-01-02"`
	IDTipoConvenio *int64  `json:"id_tipo_convenio" validate:"omitempty,gt=0"`
}

// ConvenioResponse salida de un convenio.
type ConvenioResponse struct {
	ID             int64  `json:"id"`
	IDCliente      int64  `json:"id_cliente"`
	NombreConvenio string `json:"nombre_convenio"`
	Fecha          string `json:"fecha"`
	Vigencia       string `json:"vigencia"`
	IDTipoConvenio *int64 `json:"id_tipo_convenio"`
	Vigente        bool   `json:"vigente"`
}

// AnexoProductoRequest producto incluido en un anexo.
type AnexoProductoRequest struct {
	IDProducto     int64           `json:"id_producto" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	IDMonedaCompra *int64          `json:"id_moneda_compra" validate:"omitempty,gt=0"`
}

// CreateAnexoRequest body de POST /anexos.
type CreateAnexoRequest struct {
	IDConvenio    int64                  `json:"id_convenio" validate:"required,gt=0"`
	NombreAnexo   string                 `json:"nombre_anexo" validate:"required,min=1,max=200"`
	Fecha         string                 `json:"fecha" validate:"required,datetime=2006-01-02"`
	NumeroAnexo   string                 `json:"numero_anexo" validate:"required,max=50"`
	IDDependencia int64                  `json:"id_dependencia" validate:"omitempty,gt=0"`
	Comision      *decimal.Decimal       `json:"comision"`
	Productos     []AnexoProductoRequest `json:"productos" validate:"dive"`
}

// UpdateAnexoRequest actualización parcial de la cabecera de un anexo.
type UpdateAnexoRequest struct {
	NombreAnexo   *string          `json:"nombre_anexo" validate:"omitempty,min=1,max=200"`
	Fecha         *string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	NumeroAnexo   *string          `json:"numero_anexo" validate:"omitempty,max=50"`
	IDDependencia *int64           `json:"id_dependencia" validate:"omitempty,gt=0"`
	Comision      *decimal.Decimal `json:"comision"`
}

// AnexoProductoResponse producto de un anexo en respuestas.
type AnexoProductoResponse struct {
	ID             int64           `json:"id"`
	IDProducto     int64           `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	IDMonedaCompra *int64          `json:"id_moneda_compra"`
}

// AnexoResponse salida de un anexo. Movimientos solo se informa al crear.
type AnexoResponse struct {
	ID            int64                   `json:"id"`
	IDConvenio    int64                   `json:"id_convenio"`
	NombreAnexo   string                  `json:"nombre_anexo"`
	Fecha         string                  `json:"fecha"`
	NumeroAnexo   string                  `json:"numero_anexo"`
	IDDependencia int64                   `json:"id_dependencia"`
	Comision      *decimal.Decimal        `json:"comision"`
	Productos     []AnexoProductoResponse `json:"productos"`
	Movimientos   []int64                 `json:"movimientos,omitempty"`
}
