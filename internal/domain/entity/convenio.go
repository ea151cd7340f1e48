package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Convenio acuerdo comercial con un cliente, válido hasta Vigencia (inclusive).
type Convenio struct {
	ID             int64     `db:"id"`
	IDCliente      int64     `db:"id_cliente"`
	NombreConvenio string    `db:"nombre_convenio"`
	Fecha          time.Time `db:"fecha"`
	Vigencia       time.Time `db:"vigencia"`
	IDTipoConvenio *int64    `db:"id_tipo_convenio"`
}

// Vigente compara solo fechas de calendario: hoy > vigencia es vencido.
func (c *Convenio) Vigente(hoy time.Time) bool {
	y, m, d := hoy.Date()
	hoyDia := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	vy, vm, vd := c.Vigencia.Date()
	vigDia := time.Date(vy, vm, vd, 0, 0, 0, 0, time.UTC)
	return !hoyDia.After(vigDia)
}

// Anexo anexo numerado de un convenio. Cada AnexoProducto genera una recepción en IDDependencia.
type Anexo struct {
	ID            int64               `db:"id"`
	IDConvenio    int64               `db:"id_convenio"`
	NombreAnexo   string              `db:"nombre_anexo"`
	Fecha         time.Time           `db:"fecha"`
	NumeroAnexo   string              `db:"numero_anexo"`
	IDDependencia int64               `db:"id_dependencia"`
	Comision      decimal.NullDecimal `db:"comision"`
	Productos     []AnexoProducto     `db:"-"`
}

// AnexoProducto línea de un anexo.
type AnexoProducto struct {
	ID             int64           `db:"id"`
	IDAnexo        int64           `db:"id_anexo"`
	IDProducto     int64           `db:"id_producto"`
	Cantidad       int             `db:"cantidad"`
	PrecioCompra   decimal.Decimal `db:"precio_compra"`
	IDMonedaCompra *int64          `db:"id_moneda_compra"`
}
