// Package export genera archivos descargables (XLSX) a partir de listados del inventario.
package export

import (
	"bytes"
	"fmt"

	"github.com/caguayo/inventario-api/internal/application/inventory"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

var _ inventory.MovimientoExporter = (*MovimientosXLSX)(nil)

const hojaMovimientos = "Movimientos"

var columnasMovimientos = []struct {
	titulo string
	ancho  float64
}{
	{"ID", 8},
	{"Código", 22},
	{"Fecha", 18},
	{"Tipo", 16},
	{"Estado", 12},
	{"Dependencia", 28},
	{"ID Producto", 12},
	{"Cantidad", 10},
	{"Cantidad con signo", 18},
	{"Precio compra", 14},
	{"Precio venta", 14},
	{"Convenio", 10},
	{"Anexo", 10},
	{"Cliente", 10},
	{"Observación", 40},
}

// MovimientosXLSX exporta movimientos a una hoja de cálculo con excelize.
type MovimientosXLSX struct{}

// NewMovimientosXLSX construye el exportador.
func NewMovimientosXLSX() *MovimientosXLSX { return &MovimientosXLSX{} }

// ExportarMovimientos una fila por movimiento, en el orden recibido.
func (e *MovimientosXLSX) ExportarMovimientos(movs []*entity.Movimiento) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaMovimientos); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, c := range columnasMovimientos {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		cell := colName + "1"
		_ = f.SetCellValue(hojaMovimientos, cell, c.titulo)
		_ = f.SetCellStyle(hojaMovimientos, cell, cell, headerStyle)
		_ = f.SetColWidth(hojaMovimientos, colName, colName, c.ancho)
	}

	for i, m := range movs {
		fila := []any{
			m.ID,
			m.Codigo,
			m.Fecha.Format("2006-01-02 15:04"),
			m.Tipo,
			string(m.Estado),
			m.NombreDependencia,
			m.IDProducto,
			m.Cantidad,
			m.Cantidad * m.Factor,
			nullDecimal(m.PrecioCompra.Valid, m.PrecioCompra.Decimal.InexactFloat64()),
			nullDecimal(m.PrecioVenta.Valid, m.PrecioVenta.Decimal.InexactFloat64()),
			valorOVacio(m.IDConvenio),
			valorOVacio(m.IDAnexo),
			valorOVacio(m.IDCliente),
			m.Observacion,
		}
		for j, v := range fila {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(hojaMovimientos, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(hojaMovimientos, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: fijar cabecera: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func nullDecimal(valid bool, v float64) any {
	if !valid {
		return ""
	}
	return v
}

func valorOVacio(v *int64) any {
	if v == nil {
		return ""
	}
	return *v
}
