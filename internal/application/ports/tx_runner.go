// Package ports define los puertos que la capa de aplicación exige a la infraestructura.
package ports

import (
	"context"

	"github.com/caguayo/inventario-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Productos    repository.ProductoRepository
	Movimientos  repository.MovimientoRepository
	Tipos        repository.TipoMovimientoRepository
	Ventas       repository.VentaRepository
	Clientes     repository.ClienteRepository
	Dependencias repository.DependenciaRepository
	Convenios    repository.ConvenioRepository
	Anexos       repository.AnexoRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
// Ninguna escritura de fn es visible fuera si la operación falla.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
