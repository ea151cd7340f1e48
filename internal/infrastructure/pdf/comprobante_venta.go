// Package pdf genera el comprobante imprimible de una venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  COMPROBANTE DE VENTA           │  N° Venta + Fecha + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula/RIF + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  Observación                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	"github.com/caguayo/inventario-api/internal/application/ventas"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var _ ventas.ComprobanteGenerator = (*ComprobanteVentaGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ComprobanteVentaGenerator implementa ventas.ComprobanteGenerator con Maroto v2.
type ComprobanteVentaGenerator struct {
	empresa string
	printer *message.Printer
}

// NewComprobanteVentaGenerator construye el generador; empresa aparece como autor y encabezado.
func NewComprobanteVentaGenerator(empresa string) *ComprobanteVentaGenerator {
	return &ComprobanteVentaGenerator{
		empresa: empresa,
		printer: message.NewPrinter(language.Spanish),
	}
}

// GenerarComprobante arma el PDF de la venta. Los productos ausentes del mapa se muestran por ID.
func (g *ComprobanteVentaGenerator) GenerarComprobante(
	_ context.Context,
	venta *entity.Venta,
	cliente *entity.Cliente,
	productos map[int64]*entity.Producto,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprobante de venta %d", venta.ID), true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.encabezado(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(cabeceraTabla())
	m.AddRows(g.lineas(venta.Detalles, productos)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(venta.Total))
	if venta.Observacion != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Observación: "+venta.Observacion, props.Text{Size: 8, Top: 3, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ComprobanteVentaGenerator) encabezado(v *entity.Venta) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.empresa, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("COMPROBANTE DE VENTA", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Venta N° %d", v.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+v.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+string(v.Estado), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func clienteRow(c *entity.Cliente) core.Row {
	if c == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("CLIENTE: consumidor final", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		))
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(c.Nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(fmt.Sprintf("Cédula/RIF: %s   |   Tel: %s   |   Email: %s",
			nonEmpty(c.CedulaRif, "-"), nonEmpty(c.Telefono, "-"), nonEmpty(c.Email, "-"),
		), props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

func cabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func (g *ComprobanteVentaGenerator) lineas(detalles []entity.DetalleVenta, productos map[int64]*entity.Producto) []core.Row {
	rows := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		nombre := fmt.Sprintf("Producto %d", d.IDProducto)
		if p, ok := productos[d.IDProducto]; ok && p != nil {
			nombre = p.Nombre
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(d.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.monto(d.PrecioUnitario), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.monto(d.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *ComprobanteVentaGenerator) totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(g.monto(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// monto formatea con separadores del español y dos decimales: 1234567.5 -> "$1.234.567,50".
func (g *ComprobanteVentaGenerator) monto(d decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
