package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
	"github.com/caguayo/inventario-api/internal/domain/inventory"
	"github.com/caguayo/inventario-api/internal/domain/repository"
)

var (
	_ repository.ProductoRepository       = (*ProductoRepo)(nil)
	_ repository.MovimientoRepository     = (*MovimientoRepo)(nil)
	_ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)
	_ repository.VentaRepository          = (*VentaRepo)(nil)
	_ repository.ClienteRepository        = (*ClienteRepo)(nil)
	_ repository.DependenciaRepository    = (*DependenciaRepo)(nil)
	_ repository.ConvenioRepository       = (*ConvenioRepo)(nil)
	_ repository.AnexoRepository          = (*AnexoRepo)(nil)
)

func pagina[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return list[:0]
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func contiene(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ---- productos ----

// ProductoRepo productos en memoria.
type ProductoRepo struct{ s *Store }

func (r *ProductoRepo) codigoDuplicado(p *entity.Producto) bool {
	if p.Codigo == nil {
		return false
	}
	for _, o := range r.s.t.productos {
		if o.ID != p.ID && o.Codigo != nil && *o.Codigo == *p.Codigo {
			return true
		}
	}
	return false
}

func (r *ProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codigoDuplicado(p) {
		return domain.NewValidationError("Ya existe un producto con el código indicado")
	}
	now := time.Now()
	p.ID = r.s.next("productos")
	p.Stock = 0
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.t.productos[p.ID] = *p
	return nil
}

func (r *ProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.t.productos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	actual, ok := r.s.t.productos[p.ID]
	if !ok {
		return domain.NotFound("producto no encontrado")
	}
	if r.codigoDuplicado(p) {
		return domain.NewValidationError("Ya existe un producto con el código indicado")
	}
	p.Stock = actual.Stock
	p.CreatedAt = actual.CreatedAt
	p.UpdatedAt = time.Now()
	r.s.t.productos[p.ID] = *p
	return nil
}

func (r *ProductoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.t.movimientos {
		if m.IDProducto == id {
			return integridad("delete producto")
		}
	}
	for _, v := range r.s.t.ventas {
		for _, d := range v.Detalles {
			if d.IDProducto == id {
				return integridad("delete producto")
			}
		}
	}
	delete(r.s.t.productos, id)
	return nil
}

func (r *ProductoRepo) List(_ context.Context, f repository.ProductoFiltro) ([]*entity.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Producto
	for _, p := range r.s.t.productos {
		if f.Busqueda != "" && !contiene(p.Nombre, f.Busqueda) &&
			(p.Codigo == nil || !contiene(*p.Codigo, f.Busqueda)) {
			continue
		}
		list = append(list, ptr(p))
	}
	slices.SortFunc(list, func(a, b *entity.Producto) int {
		return cmp.Or(cmp.Compare(a.Nombre, b.Nombre), cmp.Compare(a.ID, b.ID))
	})
	return pagina(list, f.Limit, f.Offset), nil
}

func (r *ProductoRepo) AjustarStock(_ context.Context, id int64, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.t.productos[id]
	if !ok {
		return domain.NotFound(fmt.Sprintf("producto %d no encontrado", id))
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	r.s.t.productos[id] = p
	return nil
}

// ---- tipos de movimiento ----

// TipoMovimientoRepo tipos de movimiento sembrados por New.
type TipoMovimientoRepo struct{ s *Store }

func (r *TipoMovimientoRepo) List(_ context.Context) ([]entity.TipoMovimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]entity.TipoMovimiento, 0, len(r.s.t.tipos))
	for _, t := range r.s.t.tipos {
		list = append(list, t)
	}
	slices.SortFunc(list, func(a, b entity.TipoMovimiento) int { return cmp.Compare(a.ID, b.ID) })
	return list, nil
}

func (r *TipoMovimientoRepo) GetByID(_ context.Context, id int64) (*entity.TipoMovimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.t.tipos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TipoMovimientoRepo) GetByTipo(_ context.Context, tipo string) (*entity.TipoMovimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.t.tipos {
		if t.Tipo == tipo {
			return &t, nil
		}
	}
	return nil, nil
}

// ---- movimientos ----

// MovimientoRepo libro de movimientos en memoria.
type MovimientoRepo struct{ s *Store }

// resolver completa los campos de solo lectura que en la base vienen del JOIN.
func (r *MovimientoRepo) resolver(m entity.Movimiento) *entity.Movimiento {
	t := r.s.t.tipos[m.IDTipoMovimiento]
	m.Tipo, m.Factor = t.Tipo, t.Factor
	m.NombreDependencia = r.s.t.dependencias[m.IDDependencia].Nombre
	return &m
}

func (r *MovimientoRepo) Create(_ context.Context, m *entity.Movimiento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.tipos[m.IDTipoMovimiento]; !ok {
		return integridad("insert movimiento")
	}
	if _, ok := r.s.t.productos[m.IDProducto]; !ok {
		return integridad("insert movimiento")
	}
	if _, ok := r.s.t.dependencias[m.IDDependencia]; !ok {
		return integridad("insert movimiento")
	}
	if m.IDAnexo != nil {
		if _, ok := r.s.t.anexos[*m.IDAnexo]; !ok {
			return integridad("insert movimiento")
		}
	}
	m.ID = r.s.next("movimientos")
	m.CreatedAt = time.Now()
	r.s.t.movimientos[m.ID] = *m
	res := r.resolver(*m)
	m.Tipo, m.Factor, m.NombreDependencia = res.Tipo, res.Factor, res.NombreDependencia
	return nil
}

func (r *MovimientoRepo) GetByID(_ context.Context, id int64) (*entity.Movimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.t.movimientos[id]
	if !ok {
		return nil, nil
	}
	return r.resolver(m), nil
}

// GetForUpdate equivale a GetByID: TxRunner ya serializa las transacciones.
func (r *MovimientoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Movimiento, error) {
	return r.GetByID(ctx, id)
}

func (r *MovimientoRepo) ActualizarCodigo(_ context.Context, id int64, codigo string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.t.movimientos[id]; ok {
		m.Codigo = codigo
		r.s.t.movimientos[id] = m
	}
	return nil
}

func (r *MovimientoRepo) ActualizarEstado(_ context.Context, id int64, estado entity.EstadoMovimiento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !estado.Valido() {
		return integridad("update estado movimiento")
	}
	if m, ok := r.s.t.movimientos[id]; ok {
		m.Estado = estado
		r.s.t.movimientos[id] = m
	}
	return nil
}

func (r *MovimientoRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.movimientos[id]; !ok {
		return false, nil
	}
	delete(r.s.t.movimientos, id)
	for k, m := range r.s.t.movimientos {
		if m.IDMovimientoOrigen != nil && *m.IDMovimientoOrigen == id {
			m.IDMovimientoOrigen = nil
			r.s.t.movimientos[k] = m
		}
	}
	return true, nil
}

func (r *MovimientoRepo) filtrar(keep func(*entity.Movimiento) bool) []*entity.Movimiento {
	var list []*entity.Movimiento
	for _, m := range r.s.t.movimientos {
		res := r.resolver(m)
		if keep(res) {
			list = append(list, res)
		}
	}
	slices.SortFunc(list, func(a, b *entity.Movimiento) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return list
}

func (r *MovimientoRepo) List(_ context.Context, f repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filtrar(func(m *entity.Movimiento) bool {
		switch {
		case f.Tipo != "" && m.Tipo != f.Tipo:
			return false
		case f.Estado != "" && m.Estado != f.Estado:
			return false
		case f.IDProducto != nil && m.IDProducto != *f.IDProducto:
			return false
		case f.IDDependencia != nil && m.IDDependencia != *f.IDDependencia:
			return false
		case f.FechaDesde != nil && m.Fecha.Before(*f.FechaDesde):
			return false
		case f.FechaHasta != nil && !m.Fecha.Before(*f.FechaHasta):
			return false
		}
		return true
	})
	return pagina(list, f.Limit, f.Offset), nil
}

func (r *MovimientoRepo) CantidadDisponible(_ context.Context, idProducto int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return inventory.CantidadDisponible(r.filtrar(func(m *entity.Movimiento) bool {
		return m.IDProducto == idProducto
	})), nil
}

func (r *MovimientoRepo) Cantidades(_ context.Context) ([]entity.CantidadProducto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	porProducto := map[int64][]*entity.Movimiento{}
	for _, m := range r.filtrar(func(*entity.Movimiento) bool { return true }) {
		porProducto[m.IDProducto] = append(porProducto[m.IDProducto], m)
	}
	list := make([]entity.CantidadProducto, 0, len(r.s.t.productos))
	for _, p := range r.s.t.productos {
		list = append(list, entity.CantidadProducto{
			IDProducto:   p.ID,
			Nombre:       p.Nombre,
			Cantidad:     inventory.CantidadDisponible(porProducto[p.ID]),
			PrecioCompra: p.PrecioCompra,
			PrecioVenta:  p.PrecioVenta,
		})
	}
	slices.SortFunc(list, func(a, b entity.CantidadProducto) int {
		return cmp.Or(cmp.Compare(a.Nombre, b.Nombre), cmp.Compare(a.IDProducto, b.IDProducto))
	})
	return list, nil
}

func (r *MovimientoRepo) UltimaRecepcionConfirmada(_ context.Context, idProducto int64) (*entity.Movimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.filtrar(func(m *entity.Movimiento) bool {
		return m.IDProducto == idProducto && m.Tipo == entity.TipoRecepcion && m.Estado == entity.EstadoConfirmado
	})
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *MovimientoRepo) ContarPorDependencia(_ context.Context, idDependencia int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, m := range r.s.t.movimientos {
		if m.IDDependencia == idDependencia {
			n++
		}
	}
	return n, nil
}

// ---- ventas ----

// VentaRepo ventas con sus líneas.
type VentaRepo struct{ s *Store }

func copiarVenta(v entity.Venta) *entity.Venta {
	v.Detalles = slices.Clone(v.Detalles)
	return &v
}

func (r *VentaRepo) Create(_ context.Context, v *entity.Venta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v.IDCliente != nil {
		if _, ok := r.s.t.clientes[*v.IDCliente]; !ok {
			return integridad("insert venta")
		}
	}
	for _, d := range v.Detalles {
		if _, ok := r.s.t.productos[d.IDProducto]; !ok {
			return integridad("insert detalle venta")
		}
	}
	v.ID = r.s.next("ventas")
	for i := range v.Detalles {
		v.Detalles[i].ID = r.s.next("detalle_ventas")
		v.Detalles[i].IDVenta = v.ID
	}
	r.s.t.ventas[v.ID] = *copiarVenta(*v)
	return nil
}

func (r *VentaRepo) GetByID(_ context.Context, id int64) (*entity.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.t.ventas[id]
	if !ok {
		return nil, nil
	}
	return copiarVenta(v), nil
}

func (r *VentaRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Venta, error) {
	return r.GetByID(ctx, id)
}

func (r *VentaRepo) Update(_ context.Context, v *entity.Venta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	actual, ok := r.s.t.ventas[v.ID]
	if !ok {
		return domain.NotFound("venta no encontrada")
	}
	if v.IDCliente != nil {
		if _, ok := r.s.t.clientes[*v.IDCliente]; !ok {
			return integridad("update venta")
		}
	}
	actual.IDCliente = v.IDCliente
	actual.Fecha = v.Fecha
	actual.Observacion = v.Observacion
	actual.Estado = v.Estado
	actual.FechaActualizacion = v.FechaActualizacion
	r.s.t.ventas[v.ID] = actual
	return nil
}

func (r *VentaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.t.ventas, id)
	return nil
}

func (r *VentaRepo) List(_ context.Context, f repository.VentaFiltro) ([]*entity.Venta, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Venta
	for _, v := range r.s.t.ventas {
		switch {
		case f.Estado != "" && v.Estado != f.Estado:
			continue
		case f.IDCliente != nil && (v.IDCliente == nil || *v.IDCliente != *f.IDCliente):
			continue
		case f.FechaDesde != nil && v.Fecha.Before(*f.FechaDesde):
			continue
		case f.FechaHasta != nil && !v.Fecha.Before(*f.FechaHasta):
			continue
		}
		v.Detalles = nil
		list = append(list, ptr(v))
	}
	slices.SortFunc(list, func(a, b *entity.Venta) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return pagina(list, f.Limit, f.Offset), nil
}

func (r *VentaRepo) ContarPorCliente(_ context.Context, idCliente int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, v := range r.s.t.ventas {
		if v.IDCliente != nil && *v.IDCliente == idCliente {
			n++
		}
	}
	return n, nil
}

// ---- clientes ----

// ClienteRepo clientes en memoria.
type ClienteRepo struct{ s *Store }

func (r *ClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.next("clientes")
	if c.FechaRegistro.IsZero() {
		c.FechaRegistro = time.Now()
	}
	r.s.t.clientes[c.ID] = *c
	return nil
}

func (r *ClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.t.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClienteRepo) List(_ context.Context, limit, offset int) ([]*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Cliente
	for _, c := range r.s.t.clientes {
		list = append(list, ptr(c))
	}
	slices.SortFunc(list, func(a, b *entity.Cliente) int {
		return cmp.Or(b.FechaRegistro.Compare(a.FechaRegistro), cmp.Compare(b.ID, a.ID))
	})
	return pagina(list, limit, offset), nil
}

func (r *ClienteRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.t.ventas {
		if v.IDCliente != nil && *v.IDCliente == id {
			return integridad("delete cliente")
		}
	}
	for _, c := range r.s.t.convenios {
		if c.IDCliente == id {
			return integridad("delete cliente")
		}
	}
	delete(r.s.t.clientes, id)
	return nil
}

// ---- dependencias ----

// DependenciaRepo árbol de dependencias.
type DependenciaRepo struct{ s *Store }

func (r *DependenciaRepo) padreValido(d *entity.Dependencia) bool {
	if d.CodigoPadre == nil {
		return true
	}
	_, ok := r.s.t.dependencias[*d.CodigoPadre]
	return ok && *d.CodigoPadre != d.ID
}

func (r *DependenciaRepo) Create(_ context.Context, d *entity.Dependencia) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.padreValido(d) {
		return integridad("insert dependencia")
	}
	d.ID = r.s.next("dependencias")
	r.s.t.dependencias[d.ID] = *d
	return nil
}

func (r *DependenciaRepo) GetByID(_ context.Context, id int64) (*entity.Dependencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.t.dependencias[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *DependenciaRepo) Update(_ context.Context, d *entity.Dependencia) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.dependencias[d.ID]; !ok {
		return domain.NotFound("dependencia no encontrada")
	}
	if !r.padreValido(d) {
		return integridad("update dependencia")
	}
	r.s.t.dependencias[d.ID] = *d
	return nil
}

func (r *DependenciaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.t.dependencias {
		if d.CodigoPadre != nil && *d.CodigoPadre == id {
			return integridad("delete dependencia")
		}
	}
	for _, m := range r.s.t.movimientos {
		if m.IDDependencia == id {
			return integridad("delete dependencia")
		}
	}
	for _, a := range r.s.t.anexos {
		if a.IDDependencia == id {
			return integridad("delete dependencia")
		}
	}
	delete(r.s.t.dependencias, id)
	return nil
}

func (r *DependenciaRepo) ordenadas(keep func(entity.Dependencia) bool) []*entity.Dependencia {
	var list []*entity.Dependencia
	for _, d := range r.s.t.dependencias {
		if keep(d) {
			list = append(list, ptr(d))
		}
	}
	slices.SortFunc(list, func(a, b *entity.Dependencia) int {
		return cmp.Or(cmp.Compare(a.Nombre, b.Nombre), cmp.Compare(a.ID, b.ID))
	})
	return list
}

func (r *DependenciaRepo) List(_ context.Context, f repository.DependenciaFiltro) ([]*entity.Dependencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.ordenadas(func(d entity.Dependencia) bool {
		return f.Nombre == "" || contiene(d.Nombre, f.Nombre)
	})
	return pagina(list, f.Limit, f.Offset), nil
}

func (r *DependenciaRepo) Hijos(_ context.Context, padreID *int64) ([]*entity.Dependencia, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.ordenadas(func(d entity.Dependencia) bool {
		if padreID == nil {
			return d.CodigoPadre == nil
		}
		return d.CodigoPadre != nil && *d.CodigoPadre == *padreID
	}), nil
}

func (r *DependenciaRepo) Padres(_ context.Context) (inventory.Padres, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	padres := make(inventory.Padres, len(r.s.t.dependencias))
	for id, d := range r.s.t.dependencias {
		padres[id] = d.CodigoPadre
	}
	return padres, nil
}

// ---- convenios y anexos ----

// ConvenioRepo convenios en memoria.
type ConvenioRepo struct{ s *Store }

func (r *ConvenioRepo) Create(_ context.Context, c *entity.Convenio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.clientes[c.IDCliente]; !ok {
		return integridad("insert convenio")
	}
	c.ID = r.s.next("convenios")
	r.s.t.convenios[c.ID] = *c
	return nil
}

func (r *ConvenioRepo) GetByID(_ context.Context, id int64) (*entity.Convenio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.t.convenios[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ConvenioRepo) Update(_ context.Context, c *entity.Convenio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.convenios[c.ID]; !ok {
		return domain.NotFound("convenio no encontrado")
	}
	if _, ok := r.s.t.clientes[c.IDCliente]; !ok {
		return integridad("update convenio")
	}
	r.s.t.convenios[c.ID] = *c
	return nil
}

func (r *ConvenioRepo) List(_ context.Context, idCliente *int64) ([]*entity.Convenio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Convenio
	for _, c := range r.s.t.convenios {
		if idCliente == nil || c.IDCliente == *idCliente {
			list = append(list, ptr(c))
		}
	}
	slices.SortFunc(list, func(a, b *entity.Convenio) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return list, nil
}

// AnexoRepo anexos con sus productos.
type AnexoRepo struct{ s *Store }

func copiarAnexo(a entity.Anexo) *entity.Anexo {
	a.Productos = slices.Clone(a.Productos)
	return &a
}

func (r *AnexoRepo) Create(_ context.Context, a *entity.Anexo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.t.convenios[a.IDConvenio]; !ok {
		return integridad("insert anexo")
	}
	if _, ok := r.s.t.dependencias[a.IDDependencia]; !ok {
		return integridad("insert anexo")
	}
	for _, p := range a.Productos {
		if _, ok := r.s.t.productos[p.IDProducto]; !ok {
			return integridad("insert anexo producto")
		}
	}
	a.ID = r.s.next("anexos")
	for i := range a.Productos {
		a.Productos[i].ID = r.s.next("anexo_productos")
		a.Productos[i].IDAnexo = a.ID
	}
	r.s.t.anexos[a.ID] = *copiarAnexo(*a)
	return nil
}

func (r *AnexoRepo) GetByID(_ context.Context, id int64) (*entity.Anexo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.t.anexos[id]
	if !ok {
		return nil, nil
	}
	return copiarAnexo(a), nil
}

func (r *AnexoRepo) Update(_ context.Context, a *entity.Anexo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	actual, ok := r.s.t.anexos[a.ID]
	if !ok {
		return domain.NotFound("anexo no encontrado")
	}
	if _, ok := r.s.t.dependencias[a.IDDependencia]; !ok {
		return integridad("update anexo")
	}
	actual.NombreAnexo = a.NombreAnexo
	actual.Fecha = a.Fecha
	actual.NumeroAnexo = a.NumeroAnexo
	actual.IDDependencia = a.IDDependencia
	actual.Comision = a.Comision
	r.s.t.anexos[a.ID] = actual
	return nil
}

func (r *AnexoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.t.movimientos {
		if m.IDAnexo != nil && *m.IDAnexo == id {
			return integridad("delete anexo")
		}
	}
	delete(r.s.t.anexos, id)
	return nil
}

func (r *AnexoRepo) List(_ context.Context, idConvenio *int64) ([]*entity.Anexo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Anexo
	for _, a := range r.s.t.anexos {
		if idConvenio == nil || a.IDConvenio == *idConvenio {
			list = append(list, copiarAnexo(a))
		}
	}
	slices.SortFunc(list, func(a, b *entity.Anexo) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return list, nil
}
