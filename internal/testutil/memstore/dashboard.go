package memstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agregados del tablero calculados sobre el Store. No hay catálogo de
// categorías ni monedas en memoria: esos totales salen en 0.
type DashboardRepo struct{ s *Store }

func (r *DashboardRepo) Contadores(_ context.Context) (entity.ContadoresDashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := entity.ContadoresDashboard{
		TotalProductos:   len(r.s.t.productos),
		TotalVentas:      len(r.s.t.ventas),
		TotalClientes:    len(r.s.t.clientes),
		TotalMovimientos: len(r.s.t.movimientos),
		MontoVendido:     decimal.Zero,
	}
	for _, v := range r.s.t.ventas {
		switch v.Estado {
		case entity.VentaPendiente:
			c.VentasPendientes++
		case entity.VentaCompletada:
			c.VentasCompletadas++
		case entity.VentaAnulada:
			c.VentasAnuladas++
			continue
		}
		c.MontoVendido = c.MontoVendido.Add(v.Total)
	}
	return c, nil
}

func (r *DashboardRepo) VentasEntre(_ context.Context, desde, hasta time.Time) (entity.ResumenVentas, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := entity.ResumenVentas{Monto: decimal.Zero}
	for _, v := range r.s.t.ventas {
		if v.Estado == entity.VentaAnulada || v.Fecha.Before(desde) || !v.Fecha.Before(hasta) {
			continue
		}
		res.Monto = res.Monto.Add(v.Total)
		res.Cantidad++
	}
	return res, nil
}

func (r *DashboardRepo) TopProductos(_ context.Context, limite int) ([]entity.ProductoVendido, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	agg := map[int64]*entity.ProductoVendido{}
	for _, v := range r.s.t.ventas {
		if v.Estado == entity.VentaAnulada {
			continue
		}
		for _, d := range v.Detalles {
			p, ok := agg[d.IDProducto]
			if !ok {
				p = &entity.ProductoVendido{
					IDProducto: d.IDProducto,
					Nombre:     r.s.t.productos[d.IDProducto].Nombre,
					MontoTotal: decimal.Zero,
				}
				agg[d.IDProducto] = p
			}
			p.CantidadVendida += d.Cantidad
			p.MontoTotal = p.MontoTotal.Add(d.Subtotal)
		}
	}
	list := make([]entity.ProductoVendido, 0, len(agg))
	for _, p := range agg {
		list = append(list, *p)
	}
	slices.SortFunc(list, func(a, b entity.ProductoVendido) int {
		return cmp.Or(b.MontoTotal.Cmp(a.MontoTotal), cmp.Compare(a.IDProducto, b.IDProducto))
	})
	return pagina(list, limite, 0), nil
}

func dia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (r *DashboardRepo) VentasPorDia(_ context.Context, desde time.Time) ([]entity.VentasDia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	agg := map[time.Time]*entity.VentasDia{}
	for _, v := range r.s.t.ventas {
		if v.Estado == entity.VentaAnulada || v.Fecha.Before(desde) {
			continue
		}
		k := dia(v.Fecha)
		p, ok := agg[k]
		if !ok {
			p = &entity.VentasDia{Dia: k, Monto: decimal.Zero}
			agg[k] = p
		}
		p.Monto = p.Monto.Add(v.Total)
		p.Cantidad++
	}
	list := make([]entity.VentasDia, 0, len(agg))
	for _, p := range agg {
		list = append(list, *p)
	}
	slices.SortFunc(list, func(a, b entity.VentasDia) int { return a.Dia.Compare(b.Dia) })
	return list, nil
}

func (r *DashboardRepo) MovimientosPorDia(_ context.Context, desde time.Time) ([]entity.MovimientosDia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	type clave struct {
		dia  time.Time
		tipo string
	}
	agg := map[clave]int{}
	for _, m := range r.s.t.movimientos {
		if m.Estado != entity.EstadoConfirmado || m.Fecha.Before(desde) {
			continue
		}
		agg[clave{dia(m.Fecha), r.s.t.tipos[m.IDTipoMovimiento].Tipo}] += m.Cantidad
	}
	list := make([]entity.MovimientosDia, 0, len(agg))
	for k, n := range agg {
		list = append(list, entity.MovimientosDia{Dia: k.dia, Tipo: k.tipo, Cantidad: n})
	}
	slices.SortFunc(list, func(a, b entity.MovimientosDia) int {
		return cmp.Or(a.Dia.Compare(b.Dia), cmp.Compare(a.Tipo, b.Tipo))
	})
	return list, nil
}
