package dto

import (
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FromProducto convierte la entidad en respuesta.
func FromProducto(p *entity.Producto) ProductoResponse {
	return ProductoResponse{
		ID:             p.ID,
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		IDSubcategoria: p.IDSubcategoria,
		IDMonedaCompra: p.IDMonedaCompra,
		PrecioCompra:   p.PrecioCompra,
		IDMonedaVenta:  p.IDMonedaVenta,
		PrecioVenta:    p.PrecioVenta,
		PrecioMinimo:   p.PrecioMinimo,
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromCantidad convierte una cantidad proyectada.
func FromCantidad(c entity.CantidadProducto) ProductoCantidadDTO {
	return ProductoCantidadDTO{
		IDProducto:   c.IDProducto,
		Nombre:       c.Nombre,
		Cantidad:     c.Cantidad,
		PrecioCompra: c.PrecioCompra,
		PrecioVenta:  c.PrecioVenta,
	}
}

// FromMovimiento convierte la entidad en respuesta.
func FromMovimiento(m *entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:                 m.ID,
		IDTipoMovimiento:   m.IDTipoMovimiento,
		Tipo:               m.Tipo,
		Factor:             m.Factor,
		IDDependencia:      m.IDDependencia,
		NombreDependencia:  m.NombreDependencia,
		IDProducto:         m.IDProducto,
		Cantidad:           m.Cantidad,
		Fecha:              m.Fecha,
		Observacion:        m.Observacion,
		Estado:             string(m.Estado),
		Codigo:             m.Codigo,
		IDConvenio:         m.IDConvenio,
		IDAnexo:            m.IDAnexo,
		IDCliente:          m.IDCliente,
		IDMonedaCompra:     m.IDMonedaCompra,
		IDMonedaVenta:      m.IDMonedaVenta,
		PrecioCompra:       nullDecimal(m.PrecioCompra),
		PrecioVenta:        nullDecimal(m.PrecioVenta),
		IDMovimientoOrigen: m.IDMovimientoOrigen,
	}
}

// FromVenta convierte la venta; incluye las líneas si están cargadas.
func FromVenta(v *entity.Venta) VentaResponse {
	out := VentaResponse{
		ID:                 v.ID,
		IDCliente:          v.IDCliente,
		Fecha:              v.Fecha,
		Total:              v.Total,
		Estado:             string(v.Estado),
		Observacion:        v.Observacion,
		FechaRegistro:      v.FechaRegistro,
		FechaActualizacion: v.FechaActualizacion,
	}
	for _, d := range v.Detalles {
		out.Detalles = append(out.Detalles, DetalleVentaResponse{
			ID:             d.ID,
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return out
}

// FromCliente convierte la entidad en respuesta.
func FromCliente(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
		CedulaRif:     c.CedulaRif,
		Direccion:     c.Direccion,
		Activo:        c.Activo,
		FechaRegistro: c.FechaRegistro,
	}
}

// FromDependencia convierte la entidad en respuesta.
func FromDependencia(d *entity.Dependencia) DependenciaResponse {
	return DependenciaResponse{
		ID:                d.ID,
		IDTipoDependencia: d.IDTipoDependencia,
		CodigoPadre:       d.CodigoPadre,
		Nombre:            d.Nombre,
		Direccion:         d.Direccion,
		Telefono:          d.Telefono,
		Email:             d.Email,
		Web:               d.Web,
		Descripcion:       d.Descripcion,
		IDProvincia:       d.IDProvincia,
		IDMunicipio:       d.IDMunicipio,
	}
}

// FromAnexo convierte el anexo con sus productos.
func FromAnexo(a *entity.Anexo) AnexoResponse {
	out := AnexoResponse{
		ID:            a.ID,
		IDConvenio:    a.IDConvenio,
		NombreAnexo:   a.NombreAnexo,
		Fecha:         a.Fecha.Format(DateLayout),
		NumeroAnexo:   a.NumeroAnexo,
		IDDependencia: a.IDDependencia,
		Comision:      nullDecimal(a.Comision),
		Productos:     make([]AnexoProductoResponse, 0, len(a.Productos)),
	}
	for _, p := range a.Productos {
		out.Productos = append(out.Productos, AnexoProductoResponse{
			ID:             p.ID,
			IDProducto:     p.IDProducto,
			Cantidad:       p.Cantidad,
			PrecioCompra:   p.PrecioCompra,
			IDMonedaCompra: p.IDMonedaCompra,
		})
	}
	return out
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
