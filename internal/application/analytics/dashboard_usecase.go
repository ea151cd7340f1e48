// Package analytics contiene los casos de uso de reportes de solo lectura del tablero:
// totales, ventas del día, proyección de inventario y tendencias.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	dashboardTopProductos = 5
	dashboardUltimas      = 5
	tendenciaMaxDias      = 365
)

var cien = decimal.NewFromInt(100)

// DashboardUseCase arma las estadísticas del tablero.
//
// Fuentes: DashboardRepository (agregados de ventas), MovimientoRepository (proyección
// de cantidades), VentaRepository y ClienteRepository (últimos registros).
type DashboardUseCase struct {
	dashRepo    repository.DashboardRepository
	movRepo     repository.MovimientoRepository
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	umbral      int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashRepo repository.DashboardRepository,
	movRepo repository.MovimientoRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	umbral int,
) *DashboardUseCase {
	if umbral <= 0 {
		umbral = inventory.UmbralStockBajoPorDefecto
	}
	return &DashboardUseCase{
		dashRepo:    dashRepo,
		movRepo:     movRepo,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		umbral:      umbral,
	}
}

// Stats construye DashboardStatsDTO.
//
// Consultas en paralelo:
//  1. Contadores            -> totales y ventas por estado
//  2. VentasEntre(hoy)      -> ventas_hoy
//  3. VentasEntre(ayer)     -> ventas_ayer
//  4. Cantidades            -> stock bajo, agotados, valor de inventario
//  5. TopProductos          -> top_productos
//  6. últimas ventas y clientes recientes
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	manana := hoy.AddDate(0, 0, 1)
	ayer := hoy.AddDate(0, 0, -1)

	type contadoresResult struct {
		c   entity.ContadoresDashboard
		err error
	}
	type resumenResult struct {
		r   entity.ResumenVentas
		err error
	}
	type cantidadesResult struct {
		c   []entity.CantidadProducto
		err error
	}
	type topResult struct {
		p   []entity.ProductoVendido
		err error
	}
	type ultimasResult struct {
		ventas   []*entity.Venta
		clientes []*entity.Cliente
		err      error
	}

	contCh := make(chan contadoresResult, 1)
	hoyCh := make(chan resumenResult, 1)
	ayerCh := make(chan resumenResult, 1)
	cantCh := make(chan cantidadesResult, 1)
	topCh := make(chan topResult, 1)
	ultCh := make(chan ultimasResult, 1)

	go func() {
		c, err := uc.dashRepo.Contadores(ctx)
		contCh <- contadoresResult{c, err}
	}()
	go func() {
		r, err := uc.dashRepo.VentasEntre(ctx, hoy, manana)
		hoyCh <- resumenResult{r, err}
	}()
	go func() {
		r, err := uc.dashRepo.VentasEntre(ctx, ayer, hoy)
		ayerCh <- resumenResult{r, err}
	}()
	go func() {
		c, err := uc.movRepo.Cantidades(ctx)
		cantCh <- cantidadesResult{c, err}
	}()
	go func() {
		p, err := uc.dashRepo.TopProductos(ctx, dashboardTopProductos)
		topCh <- topResult{p, err}
	}()
	go func() {
		ventas, err := uc.ventaRepo.List(ctx, repository.VentaFiltro{Limit: dashboardUltimas})
		if err != nil {
			ultCh <- ultimasResult{err: err}
			return
		}
		clientes, err := uc.clienteRepo.List(ctx, dashboardUltimas, 0)
		ultCh <- ultimasResult{ventas, clientes, err}
	}()

	cont := <-contCh
	vHoy := <-hoyCh
	vAyer := <-ayerCh
	cant := <-cantCh
	top := <-topCh
	ult := <-ultCh

	if cont.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", cont.err)
	}
	if vHoy.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", vHoy.err)
	}
	if vAyer.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de ayer: %w", vAyer.err)
	}
	if cant.err != nil {
		return nil, fmt.Errorf("dashboard: cantidades: %w", cant.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if ult.err != nil {
		return nil, fmt.Errorf("dashboard: últimos registros: %w", ult.err)
	}

	c := cont.c
	valorCompra, valorVenta := inventory.ValorInventario(cant.c)
	out := &dto.DashboardStatsDTO{
		TotalProductos:              c.TotalProductos,
		TotalVentas:                 c.TotalVentas,
		TotalClientes:               c.TotalClientes,
		TotalCategorias:             c.TotalCategorias,
		TotalMonedas:                c.TotalMonedas,
		TotalMovimientos:            c.TotalMovimientos,
		VentasHoy:                   vHoy.r.Monto.Round(2),
		VentasHoyCantidad:           vHoy.r.Cantidad,
		VentasAyer:                  vAyer.r.Monto.Round(2),
		VentasCrecimientoPorcentaje: Crecimiento(vHoy.r.Monto, vAyer.r.Monto),
		VentasPendientes:            c.VentasPendientes,
		VentasCompletadas:           c.VentasCompletadas,
		VentasAnuladas:              c.VentasAnuladas,
		TicketPromedio:              ticketPromedio(c),
		ProductosStockBajo:          make([]dto.ProductoCantidadDTO, 0),
		ProductosAgotados:           len(inventory.Agotados(cant.c)),
		ValorInventarioCompra:       valorCompra,
		ValorInventarioVenta:        valorVenta,
		UltimasVentas:               make([]dto.VentaResponse, 0, len(ult.ventas)),
		ClientesRecientes:           make([]dto.ClienteResponse, 0, len(ult.clientes)),
		TopProductos:                make([]dto.TopProductoDTO, 0, len(top.p)),
	}
	for _, p := range inventory.StockBajo(cant.c, uc.umbral) {
		out.ProductosStockBajo = append(out.ProductosStockBajo, dto.FromCantidad(p))
	}
	for _, v := range ult.ventas {
		out.UltimasVentas = append(out.UltimasVentas, dto.FromVenta(v))
	}
	for _, cl := range ult.clientes {
		out.ClientesRecientes = append(out.ClientesRecientes, dto.FromCliente(cl))
	}
	for _, p := range top.p {
		out.TopProductos = append(out.TopProductos, dto.TopProductoDTO{
			IDProducto:      p.IDProducto,
			Nombre:          p.Nombre,
			CantidadVendida: p.CantidadVendida,
			MontoTotal:      p.MontoTotal.Round(2),
			Porcentaje:      porcentaje(p.MontoTotal, c.MontoVendido),
		})
	}
	return out, nil
}

// VentasTendencia serie diaria de los últimos dias días (incluido hoy).
func (uc *DashboardUseCase) VentasTendencia(ctx context.Context, dias int) (*dto.VentasTendenciaDTO, error) {
	dias = acotarDias(dias)
	desde := inicioSerie(dias)
	puntos, err := uc.dashRepo.VentasPorDia(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tendencia de ventas: %w", err)
	}
	porDia := make(map[string]entity.VentasDia, len(puntos))
	for _, p := range puntos {
		porDia[p.Dia.Format(dto.DateLayout)] = p
	}
	out := &dto.VentasTendenciaDTO{
		Fechas:     make([]string, 0, dias),
		Montos:     make([]decimal.Decimal, 0, dias),
		Cantidades: make([]int, 0, dias),
	}
	for i := 0; i < dias; i++ {
		dia := desde.AddDate(0, 0, i).Format(dto.DateLayout)
		p := porDia[dia]
		out.Fechas = append(out.Fechas, dia)
		out.Montos = append(out.Montos, p.Monto.Round(2))
		out.Cantidades = append(out.Cantidades, p.Cantidad)
	}
	return out, nil
}

// MovimientosTendencia serie diaria de cantidades confirmadas por tipo.
func (uc *DashboardUseCase) MovimientosTendencia(ctx context.Context, dias int) (*dto.MovimientosTendenciaDTO, error) {
	dias = acotarDias(dias)
	desde := inicioSerie(dias)
	puntos, err := uc.dashRepo.MovimientosPorDia(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tendencia de movimientos: %w", err)
	}
	porDiaTipo := make(map[string]int, len(puntos))
	for _, p := range puntos {
		porDiaTipo[p.Dia.Format(dto.DateLayout)+"|"+p.Tipo] += p.Cantidad
	}
	out := &dto.MovimientosTendenciaDTO{}
	for i := 0; i < dias; i++ {
		dia := desde.AddDate(0, 0, i).Format(dto.DateLayout)
		out.Fechas = append(out.Fechas, dia)
		out.Recepciones = append(out.Recepciones, porDiaTipo[dia+"|"+entity.TipoRecepcion])
		out.Mermas = append(out.Mermas, porDiaTipo[dia+"|"+entity.TipoMerma])
		out.Donaciones = append(out.Donaciones, porDiaTipo[dia+"|"+entity.TipoDonacion])
		out.Devoluciones = append(out.Devoluciones, porDiaTipo[dia+"|"+entity.TipoDevolucion])
	}
	return out, nil
}

// Crecimiento porcentaje de variación de hoy respecto de ayer. Sin ventas ayer devuelve
// 100 si hoy hubo ventas y 0 si no.
func Crecimiento(hoy, ayer decimal.Decimal) decimal.Decimal {
	if ayer.IsZero() {
		if hoy.IsPositive() {
			return cien
		}
		return decimal.Zero
	}
	return hoy.Sub(ayer).Div(ayer).Mul(cien).Round(2)
}

func ticketPromedio(c entity.ContadoresDashboard) decimal.Decimal {
	n := c.VentasPendientes + c.VentasCompletadas
	if n == 0 {
		return decimal.Zero
	}
	return c.MontoVendido.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func porcentaje(parte, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return parte.Div(total).Mul(cien).Round(2)
}

func acotarDias(dias int) int {
	if dias <= 0 {
		return 7
	}
	if dias > tendenciaMaxDias {
		return tendenciaMaxDias
	}
	return dias
}

func inicioSerie(dias int) time.Time {
	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return hoy.AddDate(0, 0, -(dias - 1))
}
