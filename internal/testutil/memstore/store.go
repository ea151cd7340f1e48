// Package memstore implementa los repositorios del dominio en memoria para pruebas
// de casos de uso y handlers. Replica las restricciones de la base que los casos de
// uso observan: claves foráneas (ErrIntegrity), código de producto único y rollback
// de TxRunner.Run cuando el callback falla.
package memstore

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/caguayo/inventario-api/internal/application/ports"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/internal/domain/entity"
)

// DependenciaRecepcion dependencia sembrada por defecto (igual que la migración de referencia).
const DependenciaRecepcion int64 = 1

type tablas struct {
	productos    map[int64]entity.Producto
	tipos        map[int64]entity.TipoMovimiento
	movimientos  map[int64]entity.Movimiento
	ventas       map[int64]entity.Venta
	clientes     map[int64]entity.Cliente
	dependencias map[int64]entity.Dependencia
	convenios    map[int64]entity.Convenio
	anexos       map[int64]entity.Anexo
	seq          map[string]int64
}

func (t tablas) clone() tablas {
	return tablas{
		productos:    maps.Clone(t.productos),
		tipos:        maps.Clone(t.tipos),
		movimientos:  maps.Clone(t.movimientos),
		ventas:       maps.Clone(t.ventas),
		clientes:     maps.Clone(t.clientes),
		dependencias: maps.Clone(t.dependencias),
		convenios:    maps.Clone(t.convenios),
		anexos:       maps.Clone(t.anexos),
		seq:          maps.Clone(t.seq),
	}
}

// Store base de datos en memoria. Seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	t    tablas
}

// New crea un Store con los datos de referencia: los seis tipos de movimiento y la
// dependencia de recepción.
func New() *Store {
	s := &Store{t: tablas{
		productos:    map[int64]entity.Producto{},
		tipos:        map[int64]entity.TipoMovimiento{},
		movimientos:  map[int64]entity.Movimiento{},
		ventas:       map[int64]entity.Venta{},
		clientes:     map[int64]entity.Cliente{},
		dependencias: map[int64]entity.Dependencia{},
		convenios:    map[int64]entity.Convenio{},
		anexos:       map[int64]entity.Anexo{},
		seq:          map[string]int64{},
	}}
	for _, tm := range []entity.TipoMovimiento{
		{Tipo: entity.TipoRecepcion, Factor: 1},
		{Tipo: entity.TipoMerma, Factor: -1},
		{Tipo: entity.TipoDonacion, Factor: -1},
		{Tipo: entity.TipoDevolucion, Factor: -1},
		{Tipo: entity.TipoAjusteQuitar, Factor: -1},
		{Tipo: entity.TipoAjusteAgregar, Factor: 1},
	} {
		tm.ID = s.next("tipos")
		s.t.tipos[tm.ID] = tm
	}
	id := s.next("dependencias")
	s.t.dependencias[id] = entity.Dependencia{ID: id, Nombre: "Almacén central"}
	return s
}

func (s *Store) next(tabla string) int64 {
	s.t.seq[tabla]++
	return s.t.seq[tabla]
}

// Repos devuelve los repositorios sobre este Store.
func (s *Store) Repos() ports.TxRepos {
	return ports.TxRepos{
		Productos:    &ProductoRepo{s},
		Movimientos:  &MovimientoRepo{s},
		Tipos:        &TipoMovimientoRepo{s},
		Ventas:       &VentaRepo{s},
		Clientes:     &ClienteRepo{s},
		Dependencias: &DependenciaRepo{s},
		Convenios:    &ConvenioRepo{s},
		Anexos:       &AnexoRepo{s},
	}
}

// Productos repositorio de productos.
func (s *Store) Productos() *ProductoRepo { return &ProductoRepo{s} }

// Movimientos repositorio del libro de movimientos.
func (s *Store) Movimientos() *MovimientoRepo { return &MovimientoRepo{s} }

// Tipos repositorio de tipos de movimiento.
func (s *Store) Tipos() *TipoMovimientoRepo { return &TipoMovimientoRepo{s} }

// Ventas repositorio de ventas.
func (s *Store) Ventas() *VentaRepo { return &VentaRepo{s} }

// Clientes repositorio de clientes.
func (s *Store) Clientes() *ClienteRepo { return &ClienteRepo{s} }

// Dependencias repositorio de dependencias.
func (s *Store) Dependencias() *DependenciaRepo { return &DependenciaRepo{s} }

// Convenios repositorio de convenios.
func (s *Store) Convenios() *ConvenioRepo { return &ConvenioRepo{s} }

// Anexos repositorio de anexos.
func (s *Store) Anexos() *AnexoRepo { return &AnexoRepo{s} }

// Dashboard consultas del tablero sobre este Store.
func (s *Store) Dashboard() *DashboardRepo { return &DashboardRepo{s} }

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y restaura el estado previo si fn falla.
type TxRunner struct {
	s *Store
}

// TxRunner devuelve el runner transaccional del Store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s} }

// Run ejecuta fn; ante error descarta todas sus escrituras.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.Lock()
	snapshot := r.s.t.clone()
	r.s.mu.Unlock()

	if err := fn(r.s.Repos()); err != nil {
		r.s.mu.Lock()
		r.s.t = snapshot
		r.s.mu.Unlock()
		return err
	}
	return nil
}

func integridad(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrIntegrity)
}

func ptr[T any](v T) *T { return &v }
